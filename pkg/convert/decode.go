package convert

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	// imaging registers jpeg/png/gif/bmp/tiff, webp only decodes.
	_ "golang.org/x/image/webp"
)

func decodeImage(bs []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("decode image failed: %w", err)
	}
	return img, nil
}
