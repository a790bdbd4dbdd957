package image

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// SniffFormat decodes the header of raw image bytes and returns the format
// name ("png", "jpeg", ...) together with the pixel size.
func SniffFormat(data []byte) (format string, width int, height int, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", 0, 0, err
	}
	return format, cfg.Width, cfg.Height, nil
}

// IsImage reports whether the bytes look like a decodable image.
func IsImage(data []byte) bool {
	_, _, _, err := SniffFormat(data)
	return err == nil
}
