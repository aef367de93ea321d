package ports

import (
	"context"
	"io"

	"github.com/iwacu250/listings-client/internal/core/domain"
)

// ListParams are the paging, sorting, and filter options for listing reads.
// Zero values fall back to the first page of 12, newest first.
type ListParams struct {
	Page     int
	Size     int
	SortBy   string
	SortDir  string
	Type     string
	Location string
	MinPrice float64
	MaxPrice float64
	MinSize  float64
	MaxSize  float64
}

// PlotInput is the create/update payload for a land plot.
type PlotInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description,omitempty"`
	Location    string  `json:"location" validate:"required"`
	Size        float64 `json:"size" validate:"gt=0"`
	SizeUnit    string  `json:"sizeUnit,omitempty"`
	Price       float64 `json:"price" validate:"gt=0"`
	Currency    string  `json:"currency,omitempty"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=AVAILABLE RESERVED SOLD"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	VideoURL    string  `json:"videoUrl,omitempty"`
	Featured    bool    `json:"featured,omitempty"`
}

// MediaUpload carries one binary asset towards an upload endpoint.
type MediaUpload struct {
	Filename string
	Reader   io.Reader
	Size     int64
}

// PlotService maps plot UI actions to backend calls. Reads are always fresh
// fetches; there is no client-side cache to invalidate.
type PlotService interface {
	List(ctx context.Context, params ListParams) (domain.Page[domain.Plot], error)
	Featured(ctx context.Context, limit int) ([]domain.Plot, error)
	Get(ctx context.Context, id int64) (*domain.Plot, error)

	AdminList(ctx context.Context, params ListParams) (domain.Page[domain.Plot], error)
	AdminGet(ctx context.Context, id int64) (*domain.Plot, error)
	Create(ctx context.Context, input PlotInput) (*domain.Plot, error)
	Update(ctx context.Context, id int64, input PlotInput) (*domain.Plot, error)
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.ListingStatus) error

	UploadImage(ctx context.Context, id int64, upload MediaUpload) (*domain.MediaFile, error)
	UploadVideo(ctx context.Context, id int64, upload MediaUpload) (*domain.MediaFile, error)
	DeleteImage(ctx context.Context, imageID int64) error
	ReorderImages(ctx context.Context, id int64, imageIDs []int64) error
}
