package ports

import (
	"context"

	"github.com/iwacu250/listings-client/internal/core/domain"
)

// HouseListParams extends the common listing filters with the house-only
// ones.
type HouseListParams struct {
	ListParams
	Bedrooms  int
	Bathrooms int
}

// HouseInput is the create/update payload for a house.
type HouseInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location" validate:"required"`
	Type        string   `json:"type,omitempty"`
	Size        float64  `json:"size" validate:"gt=0"`
	SizeUnit    string   `json:"sizeUnit,omitempty"`
	Price       float64  `json:"price" validate:"gt=0"`
	Currency    string   `json:"currency,omitempty"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=AVAILABLE RESERVED SOLD"`
	Bedrooms    int      `json:"bedrooms,omitempty" validate:"gte=0"`
	Bathrooms   int      `json:"bathrooms,omitempty" validate:"gte=0"`
	YearBuilt   int      `json:"yearBuilt,omitempty"`
	Features    []string `json:"features,omitempty"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

// HouseService maps house UI actions to backend calls.
type HouseService interface {
	List(ctx context.Context, params HouseListParams) (domain.Page[domain.House], error)
	Featured(ctx context.Context, limit int) ([]domain.House, error)
	Get(ctx context.Context, id int64) (*domain.House, error)
	Similar(ctx context.Context, id int64) ([]domain.House, error)
	Features(ctx context.Context) ([]string, error)

	AdminList(ctx context.Context, params HouseListParams) (domain.Page[domain.House], error)
	AdminGet(ctx context.Context, id int64) (*domain.House, error)
	Search(ctx context.Context, params HouseListParams) (domain.Page[domain.House], error)
	Create(ctx context.Context, input HouseInput) (*domain.House, error)
	Update(ctx context.Context, id int64, input HouseInput) (*domain.House, error)
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.ListingStatus) error

	UploadImage(ctx context.Context, id int64, upload MediaUpload) (*domain.MediaFile, error)
	UploadVideo(ctx context.Context, id int64, upload MediaUpload) (*domain.MediaFile, error)
	DeleteImage(ctx context.Context, imageID int64) error
	ReorderImages(ctx context.Context, id int64, imageIDs []int64) error
}
