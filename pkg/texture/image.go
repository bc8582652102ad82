package texture

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// missingImageColor flags surfaces whose image data never loaded
var missingImageColor = core.NewColor(0, 1, 1)

// Image is a placeholder for an image-mapped texture. Decoding image files
// is not supported, so an Image only ever carries dimensions and raw bytes
// handed to it directly.
type Image struct {
	Path   string
	Width  int
	Height int
	Data   []byte // 3 bytes per pixel, row-major
}

// NewImage returns an image texture for the given path without decoding it
func NewImage(path string) *Image {
	return &Image{Path: path}
}

// Value returns cyan while the image is empty. Sampling real pixel data is
// not implemented and panics.
func (t *Image) Value(u, v float64, point core.Point3) core.Color {
	if len(t.Data) == 0 {
		return missingImageColor
	}
	panic("texture: image texture sampling is not implemented (" + t.Path + ")")
}
