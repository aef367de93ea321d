package ports

import (
	"context"

	"github.com/iwacu250/listings-client/internal/core/domain"
)

// InquiryInput is the public contact-form payload.
type InquiryInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" validate:"required,min=10"`
}

// InquiryParams filters the admin inquiry listing.
type InquiryParams struct {
	Page   int
	Size   int
	Status string
}

// ContactService submits public inquiries and lists them for the admin
// back office.
type ContactService interface {
	SubmitInquiry(ctx context.Context, input InquiryInput) error
	Inquiries(ctx context.Context, params InquiryParams) (domain.Page[domain.Inquiry], error)
}

// SettingsService reads the public site settings and manages the full set
// from the admin back office.
type SettingsService interface {
	Public(ctx context.Context) (*domain.Settings, error)
	All(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings domain.Settings) (*domain.Settings, error)
}

// DashboardService serves the admin dashboard.
type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	Inquiries(ctx context.Context, params InquiryParams) (domain.Page[domain.Inquiry], error)
}
