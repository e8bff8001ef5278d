package blob

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

var supportedImageTypes = []string{"image/png", "image/jpeg", "image/gif"}

// Decoder decodes PNG, JPEG and GIF images after sniffing their MIME type
type Decoder struct{}

// NewDecoder creates a Decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode returns the decoded image and its detected MIME type
func (d *Decoder) Decode(data []byte) (image.Image, string, error) {
	mime := mimetype.Detect(data)
	if !isSupported(mime) {
		return nil, mime.String(), fmt.Errorf("%w: %s", ErrUnsupportedImage, mime.String())
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, mime.String(), fmt.Errorf("failed to decode %s: %w", mime.String(), err)
	}
	return img, mime.String(), nil
}

func isSupported(mime *mimetype.MIME) bool {
	for _, supported := range supportedImageTypes {
		if mime.Is(supported) {
			return true
		}
	}
	return false
}
