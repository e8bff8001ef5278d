package ports

import (
	"context"
	"image"
)

// BlobResolver turns backend stream identifiers into fetchable data
type BlobResolver interface {
	// ConvertFileSrc returns a locally fetchable URL for a streamed resource
	ConvertFileSrc(name, protocol string) string
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ImageDecoder decodes fetched binary data into a displayable image.
// The detected MIME type is returned alongside the image.
type ImageDecoder interface {
	Decode(data []byte) (image.Image, string, error)
}
