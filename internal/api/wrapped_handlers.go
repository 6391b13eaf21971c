package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/eac85/gava-wrapped/internal/domain"
	"github.com/eac85/gava-wrapped/internal/service"
)

func (s *Server) registerWrappedRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getWrapped",
		Method:      http.MethodGet,
		Path:        "/api/v1/wrapped/{profileId}",
		Summary:     "Get wrapped report",
		Description: "Returns the year-in-review gifting report for a profile",
		Tags:        []string{"Wrapped"},
	}, s.handleGetWrapped)
}

// === DTOs ===

type GetWrappedInput struct {
	ProfileID string `path:"profileId" doc:"Profile ID"`
	Year      int    `query:"year" doc:"Report year, defaults to the current year"`
}

type WrappedOutput struct {
	Body domain.WrappedData
}

func (s *Server) handleGetWrapped(ctx context.Context, input *GetWrappedInput) (*WrappedOutput, error) {
	data, err := s.services.Wrapped.ComputeWrapped(ctx, service.WrappedRequest{
		ProfileID: input.ProfileID,
		Year:      input.Year,
	})
	if err != nil {
		s.logger.Error("wrapped computation failed",
			"profile_id", input.ProfileID,
			"year", input.Year,
			"error", err,
		)
		return nil, err
	}

	return &WrappedOutput{Body: *data}, nil
}
