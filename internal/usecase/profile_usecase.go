package usecase

import (
	"context"
	"strings"
	"time"

	"acredge/internal/domain/entity"
	"acredge/internal/domain/repository"
	"acredge/internal/domain/service"
	"acredge/internal/domain/validation"
	"acredge/pkg/errors"
)

type ProfileUseCase struct {
	profiles     repository.UserProfileRepository
	gate         *service.FileGate
	orchestrator *service.UploadOrchestrator
	now          func() time.Time
}

func NewProfileUseCase(profiles repository.UserProfileRepository, rules service.MediaRules, orchestrator *service.UploadOrchestrator) *ProfileUseCase {
	return &ProfileUseCase{
		profiles:     profiles,
		gate:         service.NewFileGate(rules, false),
		orchestrator: orchestrator,
		now:          time.Now,
	}
}

func (uc *ProfileUseCase) Get(ctx context.Context, phone string) (*entity.UserProfile, error) {
	return uc.profiles.GetByPhone(ctx, phone)
}

func (uc *ProfileUseCase) Update(ctx context.Context, phone string, update entity.ProfileUpdate) (*entity.UserProfile, error) {
	if update.Empty() {
		return nil, errors.BadRequest("No fields to update", nil)
	}
	if update.Email != nil {
		trimmed := strings.TrimSpace(*update.Email)
		if trimmed != "" && !validation.IsEmail(trimmed) {
			return nil, errors.BadRequest("Invalid email format", nil)
		}
		update.Email = &trimmed
	}

	profile, err := uc.profiles.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	update.Apply(profile)
	now := uc.now()
	profile.UpdatedAt = &now

	if err := uc.profiles.Update(ctx, profile); err != nil {
		return nil, errors.Dependency("Failed to update profile", err)
	}
	return profile, nil
}

// UploadImage replaces the profile image. The old image is removed only
// after the profile points at the new one.
func (uc *ProfileUseCase) UploadImage(ctx context.Context, phone string, file service.IncomingFile) (*entity.UserProfile, error) {
	profile, err := uc.profiles.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	groups, err := uc.gate.Admit([]service.IncomingFile{file})
	if err != nil {
		return nil, err
	}

	uploaded, err := uc.orchestrator.Upload(ctx, uc.gate.Rules(), groups, phone)
	if err != nil {
		uc.orchestrator.Cleanup(ctx, uploaded.All())
		return nil, err
	}

	previous := profile.ProfileImage
	profile.ProfileImage = uploaded[file.Field][0]
	now := uc.now()
	profile.UpdatedAt = &now

	if err := uc.profiles.Update(ctx, profile); err != nil {
		uc.orchestrator.Cleanup(ctx, uploaded.All())
		return nil, errors.Dependency("Failed to update profile image", err)
	}

	if previous != "" {
		uc.orchestrator.Cleanup(ctx, []string{previous})
	}
	return profile, nil
}

func (uc *ProfileUseCase) DeleteImage(ctx context.Context, phone string) error {
	profile, err := uc.profiles.GetByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if profile.ProfileImage == "" {
		return errors.BadRequest("No profile image to delete", nil)
	}

	previous := profile.ProfileImage
	profile.ProfileImage = ""
	now := uc.now()
	profile.UpdatedAt = &now

	if err := uc.profiles.Update(ctx, profile); err != nil {
		return errors.Dependency("Failed to update profile", err)
	}

	uc.orchestrator.Cleanup(ctx, []string{previous})
	return nil
}
