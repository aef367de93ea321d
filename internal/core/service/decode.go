package service

import (
	"encoding/json"
	"fmt"

	"github.com/iwacu250/listings-client/internal/core/domain"
)

// decodeOne unmarshals a single entity response. Anything that is not the
// expected object shape comes back as ErrUnexpectedShape.
func decodeOne[T any](raw json.RawMessage) (*T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnexpectedShape, err)
	}
	return &out, nil
}

// decodeList accepts the backend's list shapes (bare array, Spring page,
// data envelope) and returns the items.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	page, err := domain.NormalizePage[T](raw)
	if err != nil {
		return nil, err
	}
	return page.Content, nil
}

// mediaEnvelope covers the upload endpoints' response variants: a full
// media object, or just the stored asset reference.
type mediaEnvelope struct {
	ID   int64  `json:"id"`
	URL  string `json:"url"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// decodeMedia normalises an upload response into a MediaFile. A bare JSON
// string is accepted as the asset URL.
func decodeMedia(raw json.RawMessage) (*domain.MediaFile, error) {
	var ref string
	if err := json.Unmarshal(raw, &ref); err == nil {
		return &domain.MediaFile{URL: ref}, nil
	}

	var env mediaEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnexpectedShape, err)
	}
	url := env.URL
	if url == "" {
		url = env.Path
	}
	if url == "" {
		return nil, fmt.Errorf("%w: upload response missing asset reference", domain.ErrUnexpectedShape)
	}
	return &domain.MediaFile{ID: env.ID, URL: url, Type: env.Type}, nil
}
