package heightmap

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func grayImage(w, h int, values []uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	copy(img.Pix, values)
	return img
}

func TestConstant(t *testing.T) {
	c := Constant(0.25)
	if got := c.Sample(0.1, 0.9); got != 0.25 {
		t.Errorf("Sample = %v, want 0.25", got)
	}
}

func TestImagePixelCenters(t *testing.T) {
	// 2x2 checker: sampling at pixel centers returns the raw values.
	img := grayImage(2, 2, []uint8{0, 255, 255, 0})
	m := New(img)

	tests := []struct {
		u, v float64
		want float64
	}{
		{0.25, 0.25, 0},
		{0.75, 0.25, 1},
		{0.25, 0.75, 1},
		{0.75, 0.75, 0},
	}
	for _, tt := range tests {
		got := m.Sample(tt.u, tt.v)
		if math.Abs(got-tt.want) > 0.01 {
			t.Errorf("Sample(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
		}
	}
}

func TestImageBilinearMidpoint(t *testing.T) {
	img := grayImage(2, 1, []uint8{0, 255})
	m := New(img)

	// Halfway between the two pixel centers.
	got := m.Sample(0.5, 0.5)
	if math.Abs(got-0.5) > 0.01 {
		t.Errorf("Sample(0.5, 0.5) = %v, want 0.5", got)
	}
}

func TestImageWrapsHorizontally(t *testing.T) {
	img := grayImage(4, 1, []uint8{0, 85, 170, 255})
	m := New(img)

	// u and u+1 address the same longitude.
	for _, u := range []float64{0, 0.2, 0.61, 0.99} {
		a := m.Sample(u, 0.5)
		b := m.Sample(u+1, 0.5)
		if math.Abs(a-b) > 1e-12 {
			t.Errorf("Sample(%v) = %v but Sample(%v) = %v", u, a, u+1, b)
		}
	}

	// u=0 sits on the seam between the last and first pixels.
	seam := m.Sample(0, 0.5)
	want := (0.0 + 1.0) / 2
	if math.Abs(seam-want) > 0.01 {
		t.Errorf("seam sample = %v, want %v", seam, want)
	}
}

func TestImageClampsVertically(t *testing.T) {
	img := grayImage(1, 2, []uint8{0, 255})
	m := New(img)

	if got := m.Sample(0.5, -1); math.Abs(got) > 0.01 {
		t.Errorf("Sample above north pole = %v, want 0", got)
	}
	if got := m.Sample(0.5, 2); math.Abs(got-1) > 0.01 {
		t.Errorf("Sample below south pole = %v, want 1", got)
	}
}

func TestImageRange(t *testing.T) {
	img := grayImage(3, 3, []uint8{0, 50, 100, 150, 200, 255, 30, 60, 90})
	m := New(img)

	for v := 0.0; v <= 1.0; v += 0.1 {
		for u := 0.0; u <= 1.0; u += 0.1 {
			h := m.Sample(u, v)
			if h < 0 || h > 1 {
				t.Fatalf("Sample(%v, %v) = %v out of [0, 1]", u, v, h)
			}
		}
	}
}

func TestImageLuminance(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	m := New(img)

	if got := m.Sample(0.5, 0.5); math.Abs(got-1) > 0.01 {
		t.Errorf("white pixel sample = %v, want 1", got)
	}
}
