// Package images sniffs uploaded bytes before they reach blob storage.
package images

import (
	"github.com/h2non/bimg"

	"intranet/internal/apperr"
)

var supported = map[bimg.ImageType]bool{
	bimg.JPEG: true,
	bimg.PNG:  true,
	bimg.WEBP: true,
	bimg.TIFF: true,
	bimg.GIF:  true,
}

// Validate rejects uploads whose content is not a supported image format.
func Validate(data []byte) error {
	if !supported[bimg.DetermineImageType(data)] {
		return apperr.E(apperr.Validation, "File is not a supported image")
	}
	return nil
}
