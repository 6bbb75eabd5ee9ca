package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nativeblog/internal/lib/logger/handlers/slogdiscard"
	"nativeblog/internal/storage"
	"nativeblog/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, name string, src io.Reader, size int64, contentType string) (string, int64, error) {
	args := m.Called(ctx, name, src, size, contentType)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockFileStorage) Delete(ctx context.Context, publicPath string) error {
	args := m.Called(ctx, publicPath)
	return args.Error(0)
}

func (m *MockFileStorage) BaseURL() string {
	return m.Called().String(0)
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestUploadService_LocalStorage(t *testing.T) {
	dir := t.TempDir()
	files, err := filestorage.NewLocalFileStorage(dir, "/nativeuploads")
	require.NoError(t, err)

	svc := NewUploadService(slogdiscard.NewDiscardLogger(), files, 1<<20, 64)

	upload, err := svc.UploadImage(context.Background(), "post", bytes.NewReader(pngImage(t, 128, 32)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(upload.Path, "/nativeuploads/"))
	assert.True(t, strings.HasSuffix(upload.Path, ".png"))
	assert.Equal(t, "image/png", upload.ContentType)
	assert.Equal(t, 64, upload.Width)
	assert.True(t, upload.Resized)

	_, err = os.Stat(filepath.Join(dir, filepath.Base(upload.Path)))
	assert.NoError(t, err)

	svc.Remove(context.Background(), upload.Path)
	_, err = os.Stat(filepath.Join(dir, filepath.Base(upload.Path)))
	assert.True(t, os.IsNotExist(err))
}

func TestUploadService_Rejects(t *testing.T) {
	files := new(MockFileStorage)
	svc := NewUploadService(slogdiscard.NewDiscardLogger(), files, 256, 64)

	_, err := svc.UploadImage(context.Background(), "avatar", strings.NewReader("plain text, not an image"))
	assert.ErrorIs(t, err, storage.ErrInvalidFileType)

	_, err = svc.UploadImage(context.Background(), "avatar", bytes.NewReader(make([]byte, 1024)))
	assert.ErrorIs(t, err, storage.ErrFileTooLarge)

	files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_StorageFailure(t *testing.T) {
	ctx := context.Background()
	files := new(MockFileStorage)
	files.On("Save", ctx, mock.AnythingOfType("string"), mock.Anything, mock.AnythingOfType("int64"), "image/png").
		Return("", int64(0), errors.New("bucket unavailable"))

	svc := NewUploadService(slogdiscard.NewDiscardLogger(), files, 1<<20, 64)

	_, err := svc.UploadImage(ctx, "post", bytes.NewReader(pngImage(t, 8, 8)))

	assert.ErrorContains(t, err, "bucket unavailable")
	files.AssertExpectations(t)
}
