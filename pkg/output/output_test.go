package output

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/xerrors"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  uint8
	}{
		{"black", 0, 0},
		{"negative", -1, 0},
		{"NaN", math.NaN(), 0},
		{"quarter is gamma corrected to half", 0.25, 128},
		{"white clamps below 256", 1, 255},
		{"overexposed", 16, 255},
		{"dim", 0.01, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.value); got != tt.want {
				t.Errorf("Quantize(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestWritePPM(t *testing.T) {
	pixels := [][]core.Color{
		{core.NewColor(1, 0, 0), core.NewColor(0, 1, 0)},
		{core.NewColor(0, 0, 1), core.NewColor(0.25, 0.25, 0.25)},
	}

	var buf bytes.Buffer
	if err := WritePPM(&buf, pixels); err != nil {
		t.Fatalf("WritePPM() error: %v", err)
	}

	want := "P3\n2 2\n255\n" +
		"255 0 0\n" +
		"0 255 0\n" +
		"0 0 255\n" +
		"128 128 128\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("PPM mismatch (-want +got):\n%s", diff)
	}
}

func TestWritePPM_RaggedRows(t *testing.T) {
	pixels := [][]core.Color{
		{core.NewColor(1, 0, 0), core.NewColor(0, 1, 0)},
		{core.NewColor(0, 0, 1)},
	}
	if err := WritePPM(&bytes.Buffer{}, pixels); err == nil {
		t.Error("expected an error for ragged rows")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePPM_PropagatesWriteErrors(t *testing.T) {
	pixels := [][]core.Color{{core.NewColor(1, 1, 1)}}
	if err := WritePPM(failingWriter{}, pixels); err == nil {
		t.Error("expected the writer error to be returned")
	}
}

func TestWritePNG_RoundTrip(t *testing.T) {
	pixels := [][]core.Color{
		{core.NewColor(1, 0, 0), core.NewColor(0, 0, 0), core.NewColor(0.25, 1, 4)},
		{core.NewColor(0, 1, 0), core.NewColor(0, 0, 1), core.NewColor(1, 1, 1)},
	}

	var buf bytes.Buffer
	if err := Write(&buf, FormatPNG, pixels); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if bounds := img.Bounds(); bounds.Dx() != 3 || bounds.Dy() != 2 {
		t.Fatalf("image is %dx%d, want 3x2", bounds.Dx(), bounds.Dy())
	}

	for y, row := range pixels {
		for x, c := range row {
			want := ToRGBA(c)
			r, g, b, _ := img.At(x, y).RGBA()
			if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
				t.Errorf("pixel (%d, %d) = (%d, %d, %d), want %v", x, y, r>>8, g>>8, b>>8, want)
			}
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"ppm", FormatPPM, false},
		{"PNG", FormatPNG, false},
		{"jpeg", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil && !xerrors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}

	if err := Write(&bytes.Buffer{}, Format("tiff"), nil); !xerrors.Is(err, ErrUnknownFormat) {
		t.Errorf("Write() with unknown format error = %v, want ErrUnknownFormat", err)
	}
}
