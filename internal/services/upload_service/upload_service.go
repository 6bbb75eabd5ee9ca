package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/lib/imageproc"
	"nativeblog/internal/lib/logger/sl"
	"nativeblog/internal/metrics"
	"nativeblog/internal/storage/filestorage"

	"github.com/google/uuid"
)

type UploadService struct {
	log      *slog.Logger
	files    filestorage.FileStorage
	maxSize  int64
	maxWidth int
}

func NewUploadService(log *slog.Logger, files filestorage.FileStorage, maxSize int64, maxWidth int) *UploadService {
	return &UploadService{
		log:      log,
		files:    files,
		maxSize:  maxSize,
		maxWidth: maxWidth,
	}
}

// UploadImage validates and stores an image under a fresh uuid name.
// kind only labels the log line ("post", "avatar").
func (s *UploadService) UploadImage(ctx context.Context, kind string, src io.Reader) (*models.Upload, error) {
	const op = "upload_service.UploadImage"
	log := s.log.With(
		slog.String("op", op),
		slog.String("kind", kind),
	)

	img, err := imageproc.Process(src, s.maxSize, s.maxWidth)
	if err != nil {
		log.Warn("rejected upload", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	name := uuid.NewString() + img.Ext

	path, written, err := s.files.Save(ctx, name, bytes.NewReader(img.Data), int64(len(img.Data)), img.ContentType)
	if err != nil {
		log.Error("failed to save file", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	upload := &models.Upload{
		Path:        path,
		Size:        written,
		ContentType: img.ContentType,
		Width:       img.Width,
		Height:      img.Height,
		Resized:     img.Resized,
		CreatedAt:   time.Now().UTC(),
	}

	if err := upload.Validate(s.maxSize); err != nil {
		_ = s.files.Delete(ctx, path)
		log.Error("upload validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.UploadedBytes.Observe(float64(written))
	log.Info("image stored",
		slog.String("path", path),
		slog.Int64("size", written),
		slog.Bool("resized", img.Resized),
	)

	return upload, nil
}

// Remove deletes a previously stored image. Missing files are ignored.
func (s *UploadService) Remove(ctx context.Context, path string) {
	const op = "upload_service.Remove"

	if err := s.files.Delete(ctx, path); err != nil {
		s.log.Debug("failed to remove file", slog.String("op", op), slog.String("path", path), sl.Err(err))
	}
}
