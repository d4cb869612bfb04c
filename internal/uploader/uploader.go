// Package uploader wraps the external media host behind a one-method
// capability so handlers can be tested without the network.
package uploader

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	cldupload "github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/lucianobritez019-dotcom/autos-clasicos/config"
)

// ErrNotConfigured is returned when the Cloudinary account identity or
// unsigned upload preset is missing. The admin UI must not offer upload
// actions in that state.
var ErrNotConfigured = errors.New("cloudinary no está configurado")

// Uploader accepts a raw file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}

// Cloudinary uploads through the Cloudinary API using an unsigned preset.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	preset string
	folder string
}

// NewCloudinary returns ErrNotConfigured when cloud name or preset is
// missing; API key/secret are optional (unsigned presets need neither).
func NewCloudinary(cfg config.CloudinaryConfig) (*Cloudinary, error) {
	if cfg.CloudName == "" || cfg.UploadPreset == "" {
		return nil, ErrNotConfigured
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	return &Cloudinary{cld: cld, preset: cfg.UploadPreset, folder: cfg.Folder}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	res, err := c.cld.Upload.Upload(ctx, file, cldupload.UploadParams{
		UploadPreset: c.preset,
		Folder:       c.folder,
	})
	if err != nil {
		return "", err
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	return res.SecureURL, nil
}
