// Package imageproc validates uploaded images and shrinks oversized ones.
package imageproc

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"nativeblog/internal/storage"
)

var encodable = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
	"image/gif":  imaging.GIF,
}

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type Result struct {
	Data        []byte
	ContentType string
	Ext         string
	Width       int
	Height      int
	Resized     bool
}

// Process reads at most maxSize bytes from src, checks that they hold an
// image and downsizes it to maxWidth when wider. WebP images are never
// re-encoded.
func Process(src io.Reader, maxSize int64, maxWidth int) (*Result, error) {
	const op = "imageproc.Process"

	data, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if int64(len(data)) > maxSize {
		return nil, storage.ErrFileTooLarge
	}

	contentType := http.DetectContentType(data)
	ext, ok := extensions[contentType]
	if !ok {
		return nil, fmt.Errorf("%s: %s: %w", op, contentType, storage.ErrInvalidFileType)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidFileType)
	}

	res := &Result{
		Data:        data,
		ContentType: contentType,
		Ext:         ext,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}

	format, canEncode := encodable[contentType]
	if maxWidth <= 0 || cfg.Width <= maxWidth || !canEncode {
		return res, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidFileType)
	}

	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bounds := resized.Bounds()
	res.Data = buf.Bytes()
	res.Width = bounds.Dx()
	res.Height = bounds.Dy()
	res.Resized = true

	return res, nil
}
