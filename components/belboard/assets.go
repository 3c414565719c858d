package belboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
)

// MaxPictureBytes caps inline asset pictures at 5 MiB.
const MaxPictureBytes = 5 * 1024 * 1024

// Recommended pixel dimensions for asset pictures.
const (
	RecommendedPictureWidth  = 1200
	RecommendedPictureHeight = 740
)

var (
	errPictureNotImage = errors.New("belboard: picture must be an image file")
	errPictureTooLarge = errors.New("belboard: picture exceeds the 5MB limit")
)

// PictureReport describes an accepted upload. RecommendedSize is
// informational only; a mismatch never blocks the save.
type PictureReport struct {
	Picture         AssetPicture
	RecommendedSize bool
}

// InspectPicture validates an uploaded picture payload: the content must
// sniff as image/* and stay under the size cap. On success the decoded
// pixel dimensions are recorded with the payload.
func InspectPicture(name string, data []byte) (PictureReport, error) {
	if len(data) > MaxPictureBytes {
		return PictureReport{}, errPictureTooLarge
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return PictureReport{}, errPictureNotImage
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return PictureReport{}, fmt.Errorf("belboard: decode picture %s: %w", name, err)
	}
	return PictureReport{
		Picture: AssetPicture{
			Data:   data,
			Name:   name,
			Size:   len(data),
			MIME:   mime,
			Width:  cfg.Width,
			Height: cfg.Height,
		},
		RecommendedSize: cfg.Width == RecommendedPictureWidth && cfg.Height == RecommendedPictureHeight,
	}, nil
}

// ValidateAsset checks the required form fields before any mutation.
func ValidateAsset(asset Asset) error {
	if asset.Title == "" || asset.Subtitle == "" || asset.Category == "" || asset.PageLink == "" {
		return errors.New("belboard: title, subtitle, category and link are required")
	}
	return nil
}
