package service

import (
	"context"
	"time"

	"github.com/eac85/gava-wrapped/internal/domain"
	"github.com/eac85/gava-wrapped/internal/errors"
	"github.com/eac85/gava-wrapped/internal/id"
	"github.com/eac85/gava-wrapped/internal/logger"
	"github.com/eac85/gava-wrapped/internal/store"
	"github.com/eac85/gava-wrapped/internal/validation"
)

// ProfileService manages platform member profiles.
type ProfileService struct {
	store     store.Store
	validator *validation.Validator
	log       *logger.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(store store.Store, validator *validation.Validator, log *logger.Logger) *ProfileService {
	return &ProfileService{
		store:     store,
		validator: validator,
		log:       log,
	}
}

// CreateProfileRequest holds the fields for registering a profile.
type CreateProfileRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"required,email"`
}

// Create registers a new profile.
func (s *ProfileService) Create(ctx context.Context, req CreateProfileRequest) (*domain.Profile, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		ID:        id.MustGenerate(id.PrefixProfile),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateProfile(ctx, profile); err != nil {
		s.log.WithError(err).Error("profile insert failed")
		return nil, errors.Wrapf(err, errors.CodeInternal, "creating profile")
	}

	s.log.WithField("profile_id", profile.ID).Info("profile created")
	return profile, nil
}

// Get returns a profile by id.
func (s *ProfileService) Get(ctx context.Context, profileID string) (*domain.Profile, error) {
	if profileID == "" {
		return nil, errors.Validation("profile id is required")
	}
	profile, err := s.store.GetProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFoundf("profile %s not found", profileID)
		}
		return nil, errors.Wrapf(err, errors.CodeFetchFailed, "fetching profile %s", profileID)
	}
	return profile, nil
}
