package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iwacu250/listings-client/internal/core/domain"
	"github.com/iwacu250/listings-client/internal/core/ports"
	"github.com/iwacu250/listings-client/internal/transport"
)

// DashboardService serves the admin dashboard summary and inquiry feed.
type DashboardService struct {
	client *transport.Client
	log    zerolog.Logger
}

func NewDashboardService(client *transport.Client, log zerolog.Logger) *DashboardService {
	return &DashboardService{client: client, log: log}
}

func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	raw, err := s.client.Get(ctx, "/admin/dashboard/stats", nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.DashboardStats](raw)
}

func (s *DashboardService) Inquiries(ctx context.Context, params ports.InquiryParams) (domain.Page[domain.Inquiry], error) {
	raw, err := s.client.Get(ctx, "/admin/dashboard/inquiries", inquiryQuery(params))
	if err != nil {
		return domain.Page[domain.Inquiry]{}, err
	}
	return domain.NormalizePage[domain.Inquiry](raw)
}
