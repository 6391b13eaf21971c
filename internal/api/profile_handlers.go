package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/eac85/gava-wrapped/internal/domain"
	"github.com/eac85/gava-wrapped/internal/service"
)

func (s *Server) registerProfileRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "createProfile",
		Method:      http.MethodPost,
		Path:        "/api/v1/profiles",
		Summary:     "Create profile",
		Description: "Registers a new member profile",
		Tags:        []string{"Profiles"},
	}, s.handleCreateProfile)

	huma.Register(s.api, huma.Operation{
		OperationID: "getProfile",
		Method:      http.MethodGet,
		Path:        "/api/v1/profiles/{id}",
		Summary:     "Get profile",
		Description: "Returns a profile by ID",
		Tags:        []string{"Profiles"},
	}, s.handleGetProfile)
}

// === DTOs ===

type CreateProfileRequest struct {
	FirstName string `json:"first_name" doc:"Given name"`
	LastName  string `json:"last_name,omitempty" doc:"Family name"`
	Email     string `json:"email" doc:"Email address"`
}

type CreateProfileInput struct {
	Body CreateProfileRequest
}

type ProfileResponse struct {
	ID          string    `json:"id" doc:"Profile ID"`
	FirstName   string    `json:"first_name" doc:"Given name"`
	LastName    string    `json:"last_name,omitempty" doc:"Family name"`
	DisplayName string    `json:"display_name" doc:"Name shown on reports"`
	Email       string    `json:"email" doc:"Email address"`
	CreatedAt   time.Time `json:"created_at" doc:"Creation time"`
}

type ProfileOutput struct {
	Body ProfileResponse
}

type GetProfileInput struct {
	ID string `path:"id" doc:"Profile ID"`
}

func (s *Server) handleCreateProfile(ctx context.Context, input *CreateProfileInput) (*ProfileOutput, error) {
	profile, err := s.services.Profile.Create(ctx, service.CreateProfileRequest{
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
		Email:     input.Body.Email,
	})
	if err != nil {
		return nil, err
	}
	return &ProfileOutput{Body: toProfileResponse(profile)}, nil
}

func (s *Server) handleGetProfile(ctx context.Context, input *GetProfileInput) (*ProfileOutput, error) {
	profile, err := s.services.Profile.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &ProfileOutput{Body: toProfileResponse(profile)}, nil
}

func toProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DisplayName: p.DisplayName(),
		Email:       p.Email,
		CreatedAt:   p.CreatedAt,
	}
}
