package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Page is the fixed result shape for every paged listing read.
type Page[T any] struct {
	Content       []T `json:"content"`
	TotalPages    int `json:"totalPages"`
	TotalElements int `json:"totalElements"`
	Size          int `json:"size"`
	Number        int `json:"number"`
}

// pageEnvelope covers the response shapes the backend has been observed to
// emit: a Spring Data page ({"content": […]}) or a nested data envelope
// ({"data": […]}).
type pageEnvelope struct {
	Content       json.RawMessage `json:"content"`
	Data          json.RawMessage `json:"data"`
	TotalPages    int             `json:"totalPages"`
	TotalElements int             `json:"totalElements"`
	Size          int             `json:"size"`
	Number        int             `json:"number"`
}

// NormalizePage converts any of the recognised backend list shapes (Spring
// page, bare array, data envelope) into a Page. Unrecognised shapes return
// ErrUnexpectedShape rather than a silent best-effort coercion.
func NormalizePage[T any](raw json.RawMessage) (Page[T], error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Page[T]{}, fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Page[T]{}, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
		}
		return Page[T]{
			Content:       items,
			TotalPages:    1,
			TotalElements: len(items),
			Size:          len(items),
		}, nil
	}

	if trimmed[0] != '{' {
		return Page[T]{}, fmt.Errorf("%w: not an object or array", ErrUnexpectedShape)
	}

	var env pageEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return Page[T]{}, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	body := env.Content
	if body == nil {
		body = env.Data
	}
	if body == nil {
		return Page[T]{}, fmt.Errorf("%w: no content or data field", ErrUnexpectedShape)
	}

	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return Page[T]{}, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	page := Page[T]{
		Content:       items,
		TotalPages:    env.TotalPages,
		TotalElements: env.TotalElements,
		Size:          env.Size,
		Number:        env.Number,
	}
	if page.TotalPages == 0 {
		page.TotalPages = 1
	}
	if page.TotalElements == 0 {
		page.TotalElements = len(items)
	}
	if page.Size == 0 {
		page.Size = len(items)
	}
	return page, nil
}
