package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/iwacu250/listings-client/internal/core/domain"
	"github.com/iwacu250/listings-client/internal/metrics"
)

// UploadInput describes a single multipart media upload.
type UploadInput struct {
	// Path is the upload endpoint, e.g. "/admin/plots/uploadImage/42".
	Path string
	// Field is the multipart form field name, conventionally "file".
	Field string
	// Filename is sent as the part's file name.
	Filename string
	// Reader supplies the binary payload.
	Reader io.Reader
	// Size is the payload length in bytes, checked against Limit before any
	// bytes leave the process.
	Size int64
	// Limit is the size ceiling in bytes. Zero disables the check.
	Limit int64
	// Kind labels the media kind for metrics: "image" or "video".
	Kind string
}

// Upload submits a binary payload as multipart/form-data to a dedicated
// upload endpoint and returns the stored-asset reference from the response.
// Oversized payloads are rejected locally before the request is sent.
func (c *Client) Upload(ctx context.Context, in UploadInput) (json.RawMessage, error) {
	if in.Limit > 0 && in.Size > in.Limit {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrFileTooLarge, in.Size, in.Limit)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(in.Field, in.Filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}
	written, err := io.Copy(part, in.Reader)
	if err != nil {
		return nil, fmt.Errorf("read upload payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalise multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(in.Path, nil), &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.attachToken(req, in.Path)

	start := time.Now()
	raw, err := c.send(req, in.Path)

	outcome := outcomeOf(err)
	metrics.RequestsTotal.WithLabelValues(pathClass(in.Path), http.MethodPost, outcome).Inc()
	metrics.RequestDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	if err == nil && in.Kind != "" {
		metrics.UploadBytesTotal.WithLabelValues(in.Kind).Add(float64(written))
	}

	return raw, err
}
