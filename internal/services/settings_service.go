package services

import (
	"context"
	"fmt"
	"regexp"

	"optic-backend/internal/models"
	"optic-backend/internal/repositories"
)

var hexColorRe = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

type SettingsService struct {
	Repo *repositories.SettingsRepository
}

func NewSettingsService(repo *repositories.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

func (s *SettingsService) GetSettings(ctx context.Context) (models.ShopSettings, error) {
	return s.Repo.Get(ctx)
}

func (s *SettingsService) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (models.ShopSettings, error) {
	settings, err := s.Repo.Get(ctx)
	if err != nil {
		return settings, err
	}
	if req.Name != nil {
		settings.Name = *req.Name
	}
	if req.ICE != nil {
		settings.ICE = *req.ICE
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.Phone != nil {
		settings.Phone = *req.Phone
	}
	if req.TVA != nil {
		settings.TVA = *req.TVA
	}
	if req.PrimaryColor != nil {
		if !hexColorRe.MatchString(*req.PrimaryColor) {
			return settings, fmt.Errorf("%w: primary color must be a #rrggbb value", ErrValidation)
		}
		settings.PrimaryColor = *req.PrimaryColor
	}
	if req.LogoURL != nil {
		settings.LogoURL = *req.LogoURL
	}
	if err := s.Repo.Replace(ctx, settings); err != nil {
		return settings, err
	}
	return settings, nil
}
