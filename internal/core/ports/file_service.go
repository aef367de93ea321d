package ports

import (
	"context"

	"github.com/iwacu250/listings-client/internal/core/domain"
)

// FileService manages standalone media assets through the dedicated upload
// endpoints, independent of any particular listing.
type FileService interface {
	UploadImage(ctx context.Context, upload MediaUpload) (*domain.MediaFile, error)
	UploadVideo(ctx context.Context, upload MediaUpload) (*domain.MediaFile, error)
	List(ctx context.Context) ([]domain.MediaFile, error)
	Delete(ctx context.Context, filePath string) error
}
