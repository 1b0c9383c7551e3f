// Package heightmap samples elevation data from grayscale images.
//
// Samplers map normalized (u, v) coordinates to heights in [0, 1], so
// generators can displace vertices without knowing where the data came
// from. The u axis wraps (equirectangular longitude), the v axis clamps.
package heightmap

import (
	"fmt"
	"image"
	"math"
	"os"

	// Register decoders for the common heightmap interchange formats.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Constant is a sampler returning the same height everywhere. Constant(0)
// leaves a sphere undisplaced.
type Constant float64

// Sample implements the sampler contract.
func (c Constant) Sample(u, v float64) float64 {
	return float64(c)
}

// Image samples heights from a decoded grayscale image. Pixel luminance
// maps linearly to [0, 1].
type Image struct {
	heights []float64
	width   int
	height  int
}

// New converts an image into a sampler. Color images are reduced to
// luminance.
func New(img image.Image) *Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	heights := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			luma := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
			heights[y*w+x] = luma / 0xffff
		}
	}

	return &Image{heights: heights, width: w, height: h}
}

// Load decodes an image file into a sampler.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("heightmap: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("heightmap: decode %s: %w", path, err)
	}
	return New(img), nil
}

// Width returns the source image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the source image height in pixels.
func (m *Image) Height() int { return m.height }

// Sample returns the bilinearly interpolated height at (u, v). u wraps
// around the horizontal seam; v clamps at the poles.
func (m *Image) Sample(u, v float64) float64 {
	if m.width == 0 || m.height == 0 {
		return 0
	}

	// Pixel centers sit at half-texel offsets.
	fx := u*float64(m.width) - 0.5
	fy := v*float64(m.height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	fracX := fx - float64(x0)
	fracY := fy - float64(y0)

	h00 := m.texel(x0, y0)
	h10 := m.texel(x0+1, y0)
	h01 := m.texel(x0, y0+1)
	h11 := m.texel(x0+1, y0+1)

	top := h00*(1-fracX) + h10*fracX
	bottom := h01*(1-fracX) + h11*fracX
	return top*(1-fracY) + bottom*fracY
}

func (m *Image) texel(x, y int) float64 {
	// Wrap horizontally, clamp vertically.
	x %= m.width
	if x < 0 {
		x += m.width
	}
	if y < 0 {
		y = 0
	}
	if y >= m.height {
		y = m.height - 1
	}
	return m.heights[y*m.width+x]
}
