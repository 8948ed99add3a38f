// Package photo implements upload validation and downscaling for person
// attachments.
package photo

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"

	"rpromo/config"
	domainerrors "rpromo/internal/domain/errors"
	"rpromo/internal/domain/service"

	"golang.org/x/image/draw"
)

type processor struct {
	maxBytes     int64
	maxDimension int
}

// NewProcessor builds the attachment processor from the configured upload
// bounds.
func NewProcessor(cfg *config.Config) service.PhotoProcessor {
	return &processor{
		maxBytes:     cfg.Photo.MaxUploadBytes,
		maxDimension: cfg.Photo.MaxDimension,
	}
}

// Process validates the upload and downscales it so neither side exceeds
// the configured maximum, preserving aspect ratio. Both checks run before
// any decode work, so oversized or non-image payloads never reach the
// store.
func (p *processor) Process(name, mimeType string, data []byte) (*service.ProcessedPhoto, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, domainerrors.ErrPhotoNotImage.WithDetails(mimeType)
	}
	if int64(len(data)) > p.maxBytes {
		return nil, domainerrors.ErrPhotoTooLarge.WithDetails(
			fmt.Sprintf("%s: %d bytes", name, len(data)))
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domainerrors.ErrPhotoNotImage.WithDetails(name)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width <= p.maxDimension && height <= p.maxDimension {
		return &service.ProcessedPhoto{
			Data:     data,
			MIMEType: mimeType,
			Width:    width,
			Height:   height,
		}, nil
	}

	scaled := downscale(img, p.maxDimension)
	encoded, outMIME, err := encode(scaled, format)
	if err != nil {
		return nil, err
	}

	return &service.ProcessedPhoto{
		Data:     encoded,
		MIMEType: outMIME,
		Width:    scaled.Bounds().Dx(),
		Height:   scaled.Bounds().Dy(),
	}, nil
}

// downscale fits the image within max×max keeping the aspect ratio.
func downscale(img image.Image, max int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	ratio := float64(max) / float64(width)
	if height > width {
		ratio = float64(max) / float64(height)
	}

	newWidth := int(float64(width) * ratio)
	newHeight := int(float64(height) * ratio)
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}

// encode re-serializes the scaled image in its original format, falling
// back to JPEG for formats without an encoder.
func encode(img image.Image, format string) ([]byte, string, error) {
	var buf bytes.Buffer

	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", domainerrors.ErrInternalError.WrapMessage("failed to encode photo")
		}

		return buf.Bytes(), "image/png", nil
	case "gif":
		if err := gif.Encode(&buf, img, nil); err != nil {
			return nil, "", domainerrors.ErrInternalError.WrapMessage("failed to encode photo")
		}

		return buf.Bytes(), "image/gif", nil
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
			return nil, "", domainerrors.ErrInternalError.WrapMessage("failed to encode photo")
		}

		return buf.Bytes(), "image/jpeg", nil
	}
}
