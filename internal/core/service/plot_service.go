package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/iwacu250/listings-client/internal/core/domain"
	"github.com/iwacu250/listings-client/internal/core/ports"
	"github.com/iwacu250/listings-client/internal/transport"
)

// PlotService is the land-plot resource service. Every method is a single
// backend call; mutations are followed by fresh reads at the call site, not
// by cache invalidation here.
type PlotService struct {
	client     *transport.Client
	log        zerolog.Logger
	imageLimit int64
	videoLimit int64
}

func NewPlotService(client *transport.Client, log zerolog.Logger, imageLimit, videoLimit int64) *PlotService {
	return &PlotService{client: client, log: log, imageLimit: imageLimit, videoLimit: videoLimit}
}

func (s *PlotService) List(ctx context.Context, params ports.ListParams) (domain.Page[domain.Plot], error) {
	raw, err := s.client.Get(ctx, "/plots", listQuery(params))
	if err != nil {
		return domain.Page[domain.Plot]{}, err
	}
	return domain.NormalizePage[domain.Plot](raw)
}

func (s *PlotService) Featured(ctx context.Context, limit int) ([]domain.Plot, error) {
	if limit <= 0 {
		limit = 6
	}
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	raw, err := s.client.Get(ctx, "/plots/getFeaturedPlots", query)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Plot](raw)
}

func (s *PlotService) Get(ctx context.Context, id int64) (*domain.Plot, error) {
	raw, err := s.client.Get(ctx, fmt.Sprintf("/plots/getPlotById/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Plot](raw)
}

func (s *PlotService) AdminList(ctx context.Context, params ports.ListParams) (domain.Page[domain.Plot], error) {
	raw, err := s.client.Get(ctx, "/admin/plots/getAllPlots", listQuery(params))
	if err != nil {
		return domain.Page[domain.Plot]{}, err
	}
	return domain.NormalizePage[domain.Plot](raw)
}

func (s *PlotService) AdminGet(ctx context.Context, id int64) (*domain.Plot, error) {
	raw, err := s.client.Get(ctx, fmt.Sprintf("/admin/plots/getPlotById/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Plot](raw)
}

func (s *PlotService) Create(ctx context.Context, input ports.PlotInput) (*domain.Plot, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	raw, err := s.client.Post(ctx, "/admin/plots/createPlot", input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("title", input.Title).Msg("plot created")
	return decodeOne[domain.Plot](raw)
}

func (s *PlotService) Update(ctx context.Context, id int64, input ports.PlotInput) (*domain.Plot, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	raw, err := s.client.Put(ctx, fmt.Sprintf("/admin/plots/updatePlot/%d", id), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Plot](raw)
}

func (s *PlotService) Delete(ctx context.Context, id int64) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/admin/plots/deletePlot/%d", id), nil)
	return err
}

func (s *PlotService) UpdateStatus(ctx context.Context, id int64, status domain.ListingStatus) error {
	_, err := s.client.Patch(ctx, fmt.Sprintf("/admin/plots/updatePlotStatus/%d", id), map[string]string{
		"status": string(status),
	})
	return err
}

func (s *PlotService) UploadImage(ctx context.Context, id int64, upload ports.MediaUpload) (*domain.MediaFile, error) {
	raw, err := s.client.Upload(ctx, transport.UploadInput{
		Path:     fmt.Sprintf("/admin/plots/uploadImage/%d", id),
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

func (s *PlotService) UploadVideo(ctx context.Context, id int64, upload ports.MediaUpload) (*domain.MediaFile, error) {
	raw, err := s.client.Upload(ctx, transport.UploadInput{
		Path:     fmt.Sprintf("/admin/plots/uploadVideo/%d", id),
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

func (s *PlotService) DeleteImage(ctx context.Context, imageID int64) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/admin/plots/deleteImage/%d", imageID), nil)
	return err
}

func (s *PlotService) ReorderImages(ctx context.Context, id int64, imageIDs []int64) error {
	_, err := s.client.Put(ctx, fmt.Sprintf("/admin/plots/reorderImages/%d", id), imageIDs)
	return err
}

// listQuery renders ListParams as query values, applying the first-page
// defaults.
func listQuery(params ports.ListParams) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))

	size := params.Size
	if size <= 0 {
		size = 12
	}
	query.Set("size", strconv.Itoa(size))

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	query.Set("sortBy", sortBy)

	sortDir := params.SortDir
	if sortDir == "" {
		sortDir = "desc"
	}
	query.Set("sortDir", sortDir)

	if params.Type != "" {
		query.Set("type", params.Type)
	}
	if params.Location != "" {
		query.Set("location", params.Location)
	}
	if params.MinPrice > 0 {
		query.Set("minPrice", strconv.FormatFloat(params.MinPrice, 'f', -1, 64))
	}
	if params.MaxPrice > 0 {
		query.Set("maxPrice", strconv.FormatFloat(params.MaxPrice, 'f', -1, 64))
	}
	if params.MinSize > 0 {
		query.Set("minSize", strconv.FormatFloat(params.MinSize, 'f', -1, 64))
	}
	if params.MaxSize > 0 {
		query.Set("maxSize", strconv.FormatFloat(params.MaxSize, 'f', -1, 64))
	}
	return query
}
