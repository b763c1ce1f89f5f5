package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	userrepo "github.com/trendforge/trendforge-backend/internal/data/repos/user"
	types "github.com/trendforge/trendforge-backend/internal/domain"
	"github.com/trendforge/trendforge-backend/internal/pkg/apperr"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

// ProfileInput carries a partial profile update; nil fields are left as-is.
type ProfileInput struct {
	Name               *string
	Avatar             *string
	Bio                *string
	PreferredNiches    []string
	ContentPreferences map[string]any
	Timezone           *string
	Language           *string
}

type UserService interface {
	// GetMe returns the user and their profile; the profile is nil when none
	// has been created yet.
	GetMe(ctx context.Context, userID uuid.UUID) (*types.User, *types.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (*types.User, *types.UserProfile, error)
	// PreferredNiches returns the user's preferred niches, or nil when the
	// profile has none.
	PreferredNiches(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type userService struct {
	log         *logger.Logger
	userRepo    userrepo.UserRepo
	profileRepo userrepo.UserProfileRepo
}

func NewUserService(log *logger.Logger, userRepo userrepo.UserRepo, profileRepo userrepo.UserProfileRepo) UserService {
	return &userService{
		log:         log.With("service", "UserService"),
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *userService) GetMe(ctx context.Context, userID uuid.UUID) (*types.User, *types.UserProfile, error) {
	users, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, nil, err
	}
	if len(users) == 0 {
		return nil, nil, apperr.ErrNotFound
	}

	profile, err := s.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, nil, err
	}
	return users[0], profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (*types.User, *types.UserProfile, error) {
	user, profile, err := s.GetMe(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if in.Name != nil {
		if err := s.userRepo.UpdateName(ctx, nil, userID, *in.Name); err != nil {
			return nil, nil, err
		}
		user.Name = *in.Name
	}

	if profile == nil {
		profile = &types.UserProfile{UserID: userID}
	}
	if in.Avatar != nil {
		profile.Avatar = *in.Avatar
	}
	if in.Bio != nil {
		profile.Bio = *in.Bio
	}
	if in.PreferredNiches != nil {
		raw, err := json.Marshal(in.PreferredNiches)
		if err != nil {
			return nil, nil, err
		}
		profile.PreferredNiches = datatypes.JSON(raw)
	}
	if in.ContentPreferences != nil {
		raw, err := json.Marshal(in.ContentPreferences)
		if err != nil {
			return nil, nil, err
		}
		profile.ContentPreferences = datatypes.JSON(raw)
	}
	if in.Timezone != nil {
		profile.Timezone = *in.Timezone
	}
	if in.Language != nil {
		profile.Language = *in.Language
	}

	updated, err := s.profileRepo.Upsert(ctx, nil, profile)
	if err != nil {
		return nil, nil, err
	}
	return user, updated, nil
}

func (s *userService) PreferredNiches(ctx context.Context, userID uuid.UUID) ([]string, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || len(profile.PreferredNiches) == 0 {
		return nil, nil
	}
	var niches []string
	if err := json.Unmarshal(profile.PreferredNiches, &niches); err != nil {
		return nil, nil
	}
	return niches, nil
}
