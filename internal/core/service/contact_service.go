package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/iwacu250/listings-client/internal/core/domain"
	"github.com/iwacu250/listings-client/internal/core/ports"
	"github.com/iwacu250/listings-client/internal/transport"
)

// ContactService submits public inquiries and lists them for the admin back
// office.
type ContactService struct {
	client *transport.Client
	log    zerolog.Logger
}

func NewContactService(client *transport.Client, log zerolog.Logger) *ContactService {
	return &ContactService{client: client, log: log}
}

func (s *ContactService) SubmitInquiry(ctx context.Context, input ports.InquiryInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	if _, err := s.client.Post(ctx, "/contact", input); err != nil {
		return err
	}
	s.log.Info().Str("email", input.Email).Msg("inquiry submitted")
	return nil
}

func (s *ContactService) Inquiries(ctx context.Context, params ports.InquiryParams) (domain.Page[domain.Inquiry], error) {
	raw, err := s.client.Get(ctx, "/admin/dashboard/inquiries", inquiryQuery(params))
	if err != nil {
		return domain.Page[domain.Inquiry]{}, err
	}
	return domain.NormalizePage[domain.Inquiry](raw)
}

func inquiryQuery(params ports.InquiryParams) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	size := params.Size
	if size <= 0 {
		size = 20
	}
	query.Set("size", strconv.Itoa(size))
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	return query
}
