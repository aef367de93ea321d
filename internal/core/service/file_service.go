package service

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/iwacu250/listings-client/internal/core/domain"
	"github.com/iwacu250/listings-client/internal/core/ports"
	"github.com/iwacu250/listings-client/internal/transport"
)

// FileService manages standalone media assets through the dedicated upload
// endpoints.
type FileService struct {
	client     *transport.Client
	log        zerolog.Logger
	imageLimit int64
	videoLimit int64
}

func NewFileService(client *transport.Client, log zerolog.Logger, imageLimit, videoLimit int64) *FileService {
	return &FileService{client: client, log: log, imageLimit: imageLimit, videoLimit: videoLimit}
}

func (s *FileService) UploadImage(ctx context.Context, upload ports.MediaUpload) (*domain.MediaFile, error) {
	raw, err := s.client.Upload(ctx, transport.UploadInput{
		Path:     "/admin/files/upload/image",
		Field:    "file",
		Filename: upload.Filename,
		Reader:   upload.Reader,
		Size:     upload.Size,
		Limit:    s.imageLimit,
		Kind:     "image",
	})
	if err != nil {
		return nil, err
	}
	return decodeMedia(raw)
}

func (s *FileService) UploadVideo(ctx context.Context, upload ports.MediaUpload) (*domain.MediaFile, error) {
	raw, err := s.client.Upload(ctx, transport.UploadInput{
		Path:     "/admin/files/upload/video",
		Field:    "file",
		Filename: upload.Filename,
		Reader:   upload.Reader,
		Size:     upload.Size,
		Limit:    s.videoLimit,
		Kind:     "video",
	})
	if err != nil {
		return nil, err
	}
	return decodeMedia(raw)
}

func (s *FileService) List(ctx context.Context) ([]domain.MediaFile, error) {
	raw, err := s.client.Get(ctx, "/files/list", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.MediaFile](raw)
}

func (s *FileService) Delete(ctx context.Context, filePath string) error {
	query := url.Values{"filePath": {filePath}}
	_, err := s.client.Delete(ctx, "/admin/files", query)
	return err
}
