package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-family-mcp/internal/colorspace"
)

// Sample is one color read from an image.
type Sample struct {
	Hex string         `json:"hex"` // "#RRGGBB"
	RGB colorspace.RGB `json:"rgb"`
	LAB colorspace.LAB `json:"lab"`
}

func newSample(rgb colorspace.RGB) Sample {
	return Sample{
		Hex: colorspace.RGBToHex(rgb),
		RGB: rgb,
		LAB: colorspace.RGBToLAB(rgb),
	}
}

// toRGB converts any color.Color to straight (non-premultiplied) 8-bit sRGB.
// Fully transparent pixels read as black.
func toRGB(c color.Color) colorspace.RGB {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return colorspace.RGB{}
	}
	r, g, b := cf.Clamped().RGB255()
	return colorspace.RGB{R: r, G: g, B: b}
}

// Region is a rectangle within an image. (X1,Y1) is inclusive and (X2,Y2)
// exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect converts r to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// validateRegion checks that r is non-empty and lies inside bounds.
func validateRegion(r Region, bounds image.Rectangle) error {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return nil
}

// SampleColor reads the color at (x, y).
//
// With radius > 0 the pixel's neighbourhood is Gaussian-blurred first, which
// averages out weave texture and sensor noise around the sampling point.
// Coordinates outside the image and a non-finite radius are errors. A radius
// larger than the image diagonal is clamped to it.
func SampleColor(img image.Image, x, y int, radius float64) (*Sample, error) {
	bounds := img.Bounds()
	if !image.Pt(x, y).In(bounds) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	if math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("invalid blur radius %v", radius)
	}
	if radius <= 0 {
		s := newSample(toRGB(img.At(x, y)))
		return &s, nil
	}

	if diag := math.Hypot(float64(bounds.Dx()), float64(bounds.Dy())); radius > diag {
		radius = diag
	}

	// Crop a window of three standard deviations around the point so the
	// blur does not have to touch the whole image.
	reach := int(3*radius) + 1
	window := image.Rect(x-reach, y-reach, x+reach+1, y+reach+1).Intersect(bounds)
	blurred := blur.Gaussian(imaging.Crop(img, window), radius)

	s := newSample(toRGB(blurred.At(x-window.Min.X, y-window.Min.Y)))
	return &s, nil
}

// SwatchColor returns the mean color of a region, the usual way of reading
// a flat fabric swatch.
func SwatchColor(img image.Image, r Region) (*Sample, error) {
	if err := validateRegion(r, img.Bounds()); err != nil {
		return nil, err
	}

	// A box-filter downscale to a single pixel weights every source pixel
	// equally.
	mean := imaging.Resize(imaging.Crop(img, r.Rect()), 1, 1, imaging.Box)
	s := newSample(toRGB(mean.At(0, 0)))
	return &s, nil
}

// ColorFrequency is one palette entry of DominantColors.
type ColorFrequency struct {
	Sample
	Percentage float64 `json:"percentage"` // share of pixels, 0-100
}

// DominantColors returns up to count of the most frequent colors in img, or
// in region when it is non-nil, sorted by descending frequency.
//
// Channels are quantized to multiples of 16 before counting so that near
// identical shades fall into one bucket; the reported colors are the
// quantized values.
func DominantColors(img image.Image, count int, region *Region) ([]ColorFrequency, error) {
	bounds := img.Bounds()
	if region != nil {
		if err := validateRegion(*region, bounds); err != nil {
			return nil, err
		}
		bounds = region.Rect()
	}
	if count <= 0 {
		return []ColorFrequency{}, nil
	}

	counts := make(map[colorspace.RGB]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := toRGB(img.At(x, y))
			c.R, c.G, c.B = c.R/16*16, c.G/16*16, c.B/16*16
			counts[c]++
			total++
		}
	}

	palette := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		palette = append(palette, ColorFrequency{
			Sample:     newSample(c),
			Percentage: float64(n) / float64(total) * 100,
		})
	}

	// Ties break on hex so output is stable across runs.
	sort.Slice(palette, func(i, j int) bool {
		if palette[i].Percentage != palette[j].Percentage {
			return palette[i].Percentage > palette[j].Percentage
		}
		return palette[i].Hex < palette[j].Hex
	})

	if len(palette) > count {
		palette = palette[:count]
	}
	return palette, nil
}
