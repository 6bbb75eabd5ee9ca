package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"nativeblog/internal/storage"
)

// FileStorage stores uploaded images and hands back the path clients use to
// fetch them.
type FileStorage interface {
	Save(ctx context.Context, name string, src io.Reader, size int64, contentType string) (publicPath string, written int64, err error)
	Delete(ctx context.Context, publicPath string) error
	BaseURL() string
}

// LocalFileStorage keeps files on disk under baseDir and serves them at baseURL.
type LocalFileStorage struct {
	baseDir string // e.g. "./nativeuploads"
	baseURL string // e.g. "/nativeuploads"
}

func NewLocalFileStorage(baseDir, baseURL string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *LocalFileStorage) Save(ctx context.Context, name string, src io.Reader, _ int64, _ string) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	name = filepath.Base(name)
	filePath := filepath.Join(s.baseDir, name)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	done := make(chan struct{})
	var size int64
	var copyErr error

	go func() {
		size, copyErr = io.Copy(dst, src)
		close(done)
	}()

	select {
	case <-done:
		if copyErr != nil {
			_ = os.Remove(filePath)
			return "", 0, fmt.Errorf("failed to copy file: %w", copyErr)
		}
	case <-ctx.Done():
		<-done
		_ = os.Remove(filePath)
		return "", 0, ctx.Err()
	}

	return s.baseURL + "/" + name, size, nil
}

// Delete removes a file previously returned by Save.
func (s *LocalFileStorage) Delete(_ context.Context, publicPath string) error {
	err := os.Remove(s.GetFullPath(publicPath))
	if errors.Is(err, os.ErrNotExist) {
		return storage.ErrFileNotFound
	}

	return err
}

// GetFullPath maps a public path (or a bare file name) to its location on disk.
func (s *LocalFileStorage) GetFullPath(publicPath string) string {
	return filepath.Join(s.baseDir, path.Base(publicPath))
}

func (s *LocalFileStorage) BaseURL() string {
	return s.baseURL
}

func (s *LocalFileStorage) GetBaseDir() string {
	return s.baseDir
}
