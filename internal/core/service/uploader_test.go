package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/iwacu250/listings-client/internal/core/domain"
	"github.com/iwacu250/listings-client/internal/core/ports"
)

type stubFileService struct {
	mu     sync.Mutex
	images []string
	videos []string
	failOn string
}

func (s *stubFileService) UploadImage(ctx context.Context, upload ports.MediaUpload) (*domain.MediaFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if upload.Filename == s.failOn {
		return nil, errors.New("storage unavailable")
	}
	s.images = append(s.images, upload.Filename)
	return &domain.MediaFile{URL: "/uploads/" + upload.Filename}, nil
}

func (s *stubFileService) UploadVideo(ctx context.Context, upload ports.MediaUpload) (*domain.MediaFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if upload.Filename == s.failOn {
		return nil, errors.New("storage unavailable")
	}
	s.videos = append(s.videos, upload.Filename)
	return &domain.MediaFile{URL: "/uploads/" + upload.Filename}, nil
}

func (s *stubFileService) List(ctx context.Context) ([]domain.MediaFile, error) { return nil, nil }

func (s *stubFileService) Delete(ctx context.Context, filePath string) error { return nil }

func writeTempFiles(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		if err := os.WriteFile(paths[i], []byte("media-bytes"), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return paths
}

func TestBatchUploaderPreservesOrder(t *testing.T) {
	names := make([]string, 12)
	for i := range names {
		names[i] = fmt.Sprintf("photo-%02d.jpg", i)
	}
	paths := writeTempFiles(t, names...)

	stub := &stubFileService{}
	uploader := NewBatchUploader(stub, 3, zerolog.Nop())

	results := uploader.UploadAll(context.Background(), paths)
	if len(results) != len(paths) {
		t.Fatalf("got %d results for %d files", len(results), len(paths))
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Fatalf("result %d is for %q, want %q", i, res.Path, paths[i])
		}
		if res.Err != nil {
			t.Fatalf("result %d: %v", i, res.Err)
		}
		if res.Media == nil || res.Media.URL != "/uploads/"+names[i] {
			t.Fatalf("result %d media = %+v", i, res.Media)
		}
	}
}

func TestBatchUploaderRoutesByExtension(t *testing.T) {
	paths := writeTempFiles(t, "front.jpg", "tour.mp4", "aerial.PNG", "walkthrough.MOV")

	stub := &stubFileService{}
	uploader := NewBatchUploader(stub, 2, zerolog.Nop())

	for _, res := range uploader.UploadAll(context.Background(), paths) {
		if res.Err != nil {
			t.Fatalf("%s: %v", res.Path, res.Err)
		}
	}
	if len(stub.images) != 2 {
		t.Fatalf("expected 2 image uploads, got %v", stub.images)
	}
	if len(stub.videos) != 2 {
		t.Fatalf("expected 2 video uploads, got %v", stub.videos)
	}
}

func TestBatchUploaderReportsPerFileErrors(t *testing.T) {
	paths := writeTempFiles(t, "ok.jpg", "broken.jpg", "fine.jpg")

	stub := &stubFileService{failOn: "broken.jpg"}
	uploader := NewBatchUploader(stub, 2, zerolog.Nop())

	results := uploader.UploadAll(context.Background(), paths)
	if results[0].Err != nil || results[2].Err != nil {
		t.Fatalf("healthy files must succeed: %+v", results)
	}
	if results[1].Err == nil {
		t.Fatalf("expected error for broken.jpg")
	}
}

func TestBatchUploaderMissingFile(t *testing.T) {
	stub := &stubFileService{}
	uploader := NewBatchUploader(stub, 1, zerolog.Nop())

	results := uploader.UploadAll(context.Background(), []string{"/nonexistent/gone.jpg"})
	if len(results) != 1 || results[0].Err == nil {
		t.Fatalf("expected read error, got %+v", results)
	}
}

func TestBatchUploaderCancelledContext(t *testing.T) {
	paths := writeTempFiles(t, "a.jpg", "b.jpg")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stub := &stubFileService{}
	uploader := NewBatchUploader(stub, 1, zerolog.Nop())

	for _, res := range uploader.UploadAll(ctx, paths) {
		if !errors.Is(res.Err, context.Canceled) {
			t.Fatalf("%s: expected context.Canceled, got %v", res.Path, res.Err)
		}
	}
	if len(stub.images) != 0 {
		t.Fatalf("no uploads should run after cancellation, got %v", stub.images)
	}
}
