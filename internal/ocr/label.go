package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/color-family-mcp/internal/family"
)

// DefaultLanguage is the Tesseract language used when none is given.
const DefaultLanguage = "por"

// MinTextHeight is the label height in pixels below which a crop is
// upscaled before recognition.
const MinTextHeight = 64

// maxUpscale caps the upscale factor applied to tiny labels.
const maxUpscale = 4

// Bounds is a word's box in original image coordinates.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect converts b to an image.Rectangle.
func (b Bounds) Rect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2, b.Y2)
}

// Word is one recognized word.
type Word struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"` // 0.0 to 1.0
	Bounds     Bounds  `json:"bounds"`
}

// Label is the result of reading a swatch label.
type Label struct {
	// Text is the full recognized text, trimmed.
	Text string `json:"text"`

	// Name is the first non-empty line of Text, the product name by
	// catalog convention.
	Name string `json:"name"`

	// Family is the canonical family detected from Name, or empty.
	Family string `json:"family,omitempty"`

	Words []Word `json:"words"`
}

// ReadLabel runs OCR over region of img. A zero region reads the whole image.
func ReadLabel(img image.Image, region image.Rectangle, language string) (*Label, error) {
	if language == "" {
		language = DefaultLanguage
	}

	prepared, scale, origin, err := prepare(img, region)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, prepared); err != nil {
		return nil, fmt.Errorf("failed to encode label image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	label := parseLabel(text)

	// Word boxes are optional; the text alone is still useful.
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return label, nil
	}
	for _, box := range boxes {
		if strings.TrimSpace(box.Word) == "" {
			continue
		}
		label.Words = append(label.Words, Word{
			Text:       box.Word,
			Confidence: box.Confidence / 100.0,
			Bounds:     unscale(box.Box, scale, origin),
		})
	}
	return label, nil
}

// prepare crops region from img and returns a grayscale, contrast-stretched
// copy upscaled by the returned factor. origin is the region's top-left
// corner in img.
func prepare(img image.Image, region image.Rectangle) (*image.NRGBA, int, image.Point, error) {
	bounds := img.Bounds()
	if region.Empty() {
		region = bounds
	}
	if !region.In(bounds) {
		return nil, 0, image.Point{}, fmt.Errorf("label region %v outside image bounds %v", region, bounds)
	}
	if region.Empty() {
		return nil, 0, image.Point{}, fmt.Errorf("empty image")
	}

	gray := imaging.Grayscale(imaging.Crop(img, region))
	gray = imaging.AdjustContrast(gray, 30)

	scale := 1
	if h := region.Dy(); h < MinTextHeight {
		scale = (MinTextHeight + h - 1) / h
		if scale > maxUpscale {
			scale = maxUpscale
		}
	}
	if scale > 1 {
		gray = imaging.Resize(gray, region.Dx()*scale, region.Dy()*scale, imaging.Lanczos)
	}
	return gray, scale, region.Min, nil
}

// unscale maps a box from the prepared image back to original coordinates.
func unscale(r image.Rectangle, scale int, origin image.Point) Bounds {
	return Bounds{
		X1: r.Min.X/scale + origin.X,
		Y1: r.Min.Y/scale + origin.Y,
		X2: r.Max.X/scale + origin.X,
		Y2: r.Max.Y/scale + origin.Y,
	}
}

// parseLabel splits raw OCR output into text, name and family.
func parseLabel(raw string) *Label {
	label := &Label{Text: strings.TrimSpace(raw), Words: []Word{}}
	for _, line := range strings.Split(label.Text, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			label.Name = line
			break
		}
	}
	if f, ok := family.DetectFromName(label.Name); ok {
		label.Family = f
	}
	return label
}
