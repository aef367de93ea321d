package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iwacu250/listings-client/internal/core/domain"
	"github.com/iwacu250/listings-client/internal/transport"
)

// SettingsService reads the public site settings and manages the full set
// from the admin back office.
type SettingsService struct {
	client *transport.Client
	log    zerolog.Logger
}

func NewSettingsService(client *transport.Client, log zerolog.Logger) *SettingsService {
	return &SettingsService{client: client, log: log}
}

func (s *SettingsService) Public(ctx context.Context) (*domain.Settings, error) {
	raw, err := s.client.Get(ctx, "/settings/public", nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Settings](raw)
}

func (s *SettingsService) All(ctx context.Context) (*domain.Settings, error) {
	raw, err := s.client.Get(ctx, "/admin/settings", nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Settings](raw)
}

func (s *SettingsService) Update(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
	if settings.WhatsAppNumber == "" {
		return nil, fmt.Errorf("%w: whatsapp number is required", domain.ErrValidation)
	}
	raw, err := s.client.Put(ctx, "/admin/settings", settings)
	if err != nil {
		return nil, err
	}
	s.log.Info().Msg("settings updated")
	return decodeOne[domain.Settings](raw)
}
