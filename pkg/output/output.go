// Package output converts linear color buffers into image files.
package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"golang.org/x/xerrors"
)

// Format is an image file format
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names
var ErrUnknownFormat = xerrors.New("unknown image format")

// ParseFormat parses a format name such as "png" or "PPM"
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatPPM, FormatPNG:
		return f, nil
	}
	return "", xerrors.Errorf("while parsing %q: %w", name, ErrUnknownFormat)
}

// Quantize maps a linear channel value to 0-255 with gamma 2 correction.
// Values are clamped to [0, 0.999] before scaling by 256.
func Quantize(value float64) uint8 {
	// Also catches NaN
	if !(value > 0) {
		return 0
	}
	return uint8(256 * math.Min(math.Sqrt(value), 0.999))
}

// ToRGBA converts a linear color to a gamma corrected 8-bit color
func ToRGBA(c core.Color) color.RGBA {
	return color.RGBA{
		R: Quantize(c.X),
		G: Quantize(c.Y),
		B: Quantize(c.Z),
		A: 255,
	}
}

// ToImage converts rows of linear colors, top row first, to an image
func ToImage(pixels [][]core.Color) *image.RGBA {
	height := len(pixels)
	width := 0
	if height > 0 {
		width = len(pixels[0])
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y, row := range pixels {
		for x, c := range row {
			img.SetRGBA(x, y, ToRGBA(c))
		}
	}
	return img
}

// WritePPM writes the pixels as a plain text (P3) PPM image
func WritePPM(w io.Writer, pixels [][]core.Color) error {
	height := len(pixels)
	width := 0
	if height > 0 {
		width = len(pixels[0])
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return xerrors.Errorf("while writing PPM header: %w", err)
	}
	for y, row := range pixels {
		if len(row) != width {
			return xerrors.Errorf("row %d has %d pixels, want %d", y, len(row), width)
		}
		for _, c := range row {
			rgba := ToRGBA(c)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", rgba.R, rgba.G, rgba.B); err != nil {
				return xerrors.Errorf("while writing PPM row %d: %w", y, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return xerrors.Errorf("while flushing PPM: %w", err)
	}
	return nil
}

// WritePNG writes the pixels as a PNG image
func WritePNG(w io.Writer, pixels [][]core.Color) error {
	if err := png.Encode(w, ToImage(pixels)); err != nil {
		return xerrors.Errorf("while encoding PNG: %w", err)
	}
	return nil
}

// Write encodes the pixels in the given format
func Write(w io.Writer, format Format, pixels [][]core.Color) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, pixels)
	case FormatPNG:
		return WritePNG(w, pixels)
	}
	return xerrors.Errorf("while writing %q: %w", format, ErrUnknownFormat)
}
