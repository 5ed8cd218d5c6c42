package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

const (
	maxImageBytes = 10 * 1024 * 1024
	fullMaxEdge   = 1600
	thumbMaxEdge  = 400
	jpegQuality   = 85
)

// ImageProcessor validates uploads and produces the stored variants: a
// size-capped full image and a thumbnail for admin grids.
type ImageProcessor struct {
	maxBytes int64
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{maxBytes: maxImageBytes}
}

// Validate checks that data is a JPEG/PNG/GIF within the size limit.
func (p *ImageProcessor) Validate(data []byte) error {
	if int64(len(data)) > p.maxBytes {
		return fmt.Errorf("image exceeds %dMB limit", p.maxBytes/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not a valid image: %w", err)
	}
	switch format {
	case "jpeg", "png", "gif":
		return nil
	default:
		return fmt.Errorf("image format %q not allowed", format)
	}
}

// Process decodes data and returns the full-size and thumbnail variants,
// both re-encoded as JPEG.
func (p *ImageProcessor) Process(data []byte) (full, thumb []byte, err error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("cannot decode image: %w", err)
	}

	full, err = encodeJPEG(imaging.Fit(img, fullMaxEdge, fullMaxEdge, imaging.Lanczos))
	if err != nil {
		return nil, nil, fmt.Errorf("cannot encode full variant: %w", err)
	}
	thumb, err = encodeJPEG(imaging.Fit(img, thumbMaxEdge, thumbMaxEdge, imaging.Lanczos))
	if err != nil {
		return nil, nil, fmt.Errorf("cannot encode thumbnail: %w", err)
	}
	return full, thumb, nil
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
