package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/iwacu250/listings-client/internal/core/domain"
	"github.com/iwacu250/listings-client/internal/core/ports"
)

const (
	defaultUploadWorkers = 4
	uploadQueueBuffer    = 16
)

// UploadResult is the outcome of one file in a batch upload.
type UploadResult struct {
	Path  string
	Media *domain.MediaFile
	Err   error
}

// BatchUploader pushes multiple media files through the upload endpoints
// with a fixed pool of workers, so a gallery upload is bounded rather than
// one goroutine per file. Result order matches the input order.
type BatchUploader struct {
	files   ports.FileService
	workers int
	log     zerolog.Logger
}

// NewBatchUploader creates a BatchUploader with numWorkers concurrent
// uploads. If numWorkers <= 0, defaultUploadWorkers is used.
func NewBatchUploader(files ports.FileService, numWorkers int, log zerolog.Logger) *BatchUploader {
	if numWorkers <= 0 {
		numWorkers = defaultUploadWorkers
	}
	return &BatchUploader{files: files, workers: numWorkers, log: log}
}

type uploadJob struct {
	index int
	path  string
}

// UploadAll uploads every named file, inferring image or video from the
// extension. Cancelling ctx stops new uploads; files not attempted report
// the context error.
func (u *BatchUploader) UploadAll(ctx context.Context, paths []string) []UploadResult {
	results := make([]UploadResult, len(paths))
	jobs := make(chan uploadJob, uploadQueueBuffer)

	var wg sync.WaitGroup
	for i := 0; i < u.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for job := range jobs {
				results[job.index] = u.uploadOne(ctx, job.path)
				if results[job.index].Err != nil {
					u.log.Error().Err(results[job.index].Err).
						Str("file", job.path).
						Int("worker_id", id).
						Msg("upload failed")
				}
			}
		}(i)
	}

	for i, path := range paths {
		select {
		case <-ctx.Done():
			results[i] = UploadResult{Path: path, Err: ctx.Err()}
		case jobs <- uploadJob{index: i, path: path}:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

func (u *BatchUploader) uploadOne(ctx context.Context, path string) UploadResult {
	if err := ctx.Err(); err != nil {
		return UploadResult{Path: path, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return UploadResult{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return UploadResult{Path: path, Err: err}
	}

	upload := ports.MediaUpload{
		Filename: filepath.Base(path),
		Reader:   f,
		Size:     info.Size(),
	}

	var media *domain.MediaFile
	if isVideoFile(path) {
		media, err = u.files.UploadVideo(ctx, upload)
	} else {
		media, err = u.files.UploadImage(ctx, upload)
	}
	return UploadResult{Path: path, Media: media, Err: err}
}

func isVideoFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mov", ".webm", ".mkv", ".avi":
		return true
	default:
		return false
	}
}
