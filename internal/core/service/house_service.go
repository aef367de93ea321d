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

// HouseService is the house resource service.
type HouseService struct {
	client     *transport.Client
	log        zerolog.Logger
	imageLimit int64
	videoLimit int64
}

func NewHouseService(client *transport.Client, log zerolog.Logger, imageLimit, videoLimit int64) *HouseService {
	return &HouseService{client: client, log: log, imageLimit: imageLimit, videoLimit: videoLimit}
}

func (s *HouseService) List(ctx context.Context, params ports.HouseListParams) (domain.Page[domain.House], error) {
	raw, err := s.client.Get(ctx, "/houses/getAllHouses", houseQuery(params))
	if err != nil {
		return domain.Page[domain.House]{}, err
	}
	return domain.NormalizePage[domain.House](raw)
}

func (s *HouseService) Featured(ctx context.Context, limit int) ([]domain.House, error) {
	if limit <= 0 {
		limit = 6
	}
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	raw, err := s.client.Get(ctx, "/houses/getFeaturedHouses", query)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.House](raw)
}

func (s *HouseService) Get(ctx context.Context, id int64) (*domain.House, error) {
	raw, err := s.client.Get(ctx, fmt.Sprintf("/houses/getHouseById/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.House](raw)
}

func (s *HouseService) Similar(ctx context.Context, id int64) ([]domain.House, error) {
	raw, err := s.client.Get(ctx, fmt.Sprintf("/houses/getSimilarHouses/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.House](raw)
}

func (s *HouseService) Features(ctx context.Context) ([]string, error) {
	raw, err := s.client.Get(ctx, "/houses/getHouseFeatures", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[string](raw)
}

func (s *HouseService) AdminList(ctx context.Context, params ports.HouseListParams) (domain.Page[domain.House], error) {
	raw, err := s.client.Get(ctx, "/admin/houses/getAllHouses", houseQuery(params))
	if err != nil {
		return domain.Page[domain.House]{}, err
	}
	return domain.NormalizePage[domain.House](raw)
}

func (s *HouseService) AdminGet(ctx context.Context, id int64) (*domain.House, error) {
	raw, err := s.client.Get(ctx, fmt.Sprintf("/admin/houses/getHouseById/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.House](raw)
}

func (s *HouseService) Search(ctx context.Context, params ports.HouseListParams) (domain.Page[domain.House], error) {
	raw, err := s.client.Get(ctx, "/admin/houses/searchHouses", houseQuery(params))
	if err != nil {
		return domain.Page[domain.House]{}, err
	}
	return domain.NormalizePage[domain.House](raw)
}

func (s *HouseService) Create(ctx context.Context, input ports.HouseInput) (*domain.House, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	raw, err := s.client.Post(ctx, "/admin/houses/createHouse", input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("title", input.Title).Msg("house created")
	return decodeOne[domain.House](raw)
}

func (s *HouseService) Update(ctx context.Context, id int64, input ports.HouseInput) (*domain.House, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	raw, err := s.client.Put(ctx, fmt.Sprintf("/admin/houses/updateHouse/%d", id), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.House](raw)
}

func (s *HouseService) Delete(ctx context.Context, id int64) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/admin/houses/deleteHouse/%d", id), nil)
	return err
}

func (s *HouseService) UpdateStatus(ctx context.Context, id int64, status domain.ListingStatus) error {
	_, err := s.client.Put(ctx, fmt.Sprintf("/admin/houses/updateHouseStatus/%d", id), map[string]string{
		"status": string(status),
	})
	return err
}

func (s *HouseService) UploadImage(ctx context.Context, id int64, upload ports.MediaUpload) (*domain.MediaFile, error) {
	raw, err := s.client.Upload(ctx, transport.UploadInput{
		Path:     fmt.Sprintf("/admin/houses/uploadImage/%d", id),
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

func (s *HouseService) UploadVideo(ctx context.Context, id int64, upload ports.MediaUpload) (*domain.MediaFile, error) {
	raw, err := s.client.Upload(ctx, transport.UploadInput{
		Path:     fmt.Sprintf("/admin/houses/uploadVideo/%d", id),
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

func (s *HouseService) DeleteImage(ctx context.Context, imageID int64) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/admin/houses/deleteImage/%d", imageID), nil)
	return err
}

func (s *HouseService) ReorderImages(ctx context.Context, id int64, imageIDs []int64) error {
	_, err := s.client.Put(ctx, fmt.Sprintf("/admin/houses/reorderImages/%d", id), imageIDs)
	return err
}

// houseQuery renders HouseListParams, adding the house-only filters on top
// of the shared ones.
func houseQuery(params ports.HouseListParams) url.Values {
	query := listQuery(params.ListParams)
	if params.Bedrooms > 0 {
		query.Set("bedrooms", strconv.Itoa(params.Bedrooms))
	}
	if params.Bathrooms > 0 {
		query.Set("bathrooms", strconv.Itoa(params.Bathrooms))
	}
	return query
}
