package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/webp"
)

const DefaultMaxDimension = 4096

var (
	ErrEmptyImage        = errors.New("media: empty image data")
	ErrTooLarge          = errors.New("media: image exceeds size limit")
	ErrUnsupportedFormat = errors.New("media: unsupported image format")
	ErrDimensions        = errors.New("media: image dimensions out of range")
)

type Upload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

type Result struct {
	Bytes       []byte
	ContentType string
	Extension   string
	Width       int
	Height      int
}

type Processor interface {
	Process(ctx context.Context, upload Upload, maxDimension int) (*Result, error)
}

var formats = map[string]struct {
	contentType string
	extension   string
}{
	"jpeg": {contentType: "image/jpeg", extension: ".jpg"},
	"png":  {contentType: "image/png", extension: ".png"},
	"webp": {contentType: "image/webp", extension: ".webp"},
}

// DecodeProcessor checks uploads by decoding their header. The stored content type comes
// from the decoded format, never from the client.
type DecodeProcessor struct {
	maxBytes int64
}

func NewDecodeProcessor(maxBytes int64) *DecodeProcessor {
	return &DecodeProcessor{maxBytes: maxBytes}
}

func (p *DecodeProcessor) Process(ctx context.Context, upload Upload, maxDimension int) (*Result, error) {
	if upload.Reader == nil {
		return nil, ErrEmptyImage
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.maxBytes > 0 && upload.Size > p.maxBytes {
		return nil, ErrTooLarge
	}

	reader := upload.Reader
	if p.maxBytes > 0 {
		reader = io.LimitReader(upload.Reader, p.maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("media: read image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if p.maxBytes > 0 && int64(len(data)) > p.maxBytes {
		return nil, ErrTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	info, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > maxDimension || cfg.Height > maxDimension {
		return nil, fmt.Errorf("%w: %dx%d (max %d)", ErrDimensions, cfg.Width, cfg.Height, maxDimension)
	}

	return &Result{
		Bytes:       data,
		ContentType: info.contentType,
		Extension:   info.extension,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}
