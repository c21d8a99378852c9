package colorspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is an sRGB color with 8-bit components.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// XYZ is a CIE XYZ tristimulus value normalized so that Y=1 is the D65 white.
type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LAB is a CIE L*a*b* color under D65.
//
// L ranges from 0 (black) to 100 (diffuse white). A and B are signed and
// unbounded, though real surface colors stay within roughly ±150.
type LAB struct {
	L float64 `json:"L"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Chroma returns the magnitude of the (a*, b*) vector.
func (c LAB) Chroma() float64 {
	return math.Sqrt(c.A*c.A + c.B*c.B)
}

// Round returns c with every channel rounded to the given number of decimals.
func (c LAB) Round(decimals int) LAB {
	return LAB{
		L: roundTo(c.L, decimals),
		A: roundTo(c.A, decimals),
		B: roundTo(c.B, decimals),
	}
}

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

const (
	labEpsilon = 6.0 / 29.0
	labDelta3  = labEpsilon * labEpsilon * labEpsilon
	labSlope   = 3 * labEpsilon * labEpsilon
	labOffset  = 4.0 / 29.0
)

// HexToRGB parses a color of the form "#RRGGBB" or "RRGGBB".
//
// Only a single leading '#' is stripped. Anything other than exactly six hex
// digits after that yields ok == false.
func HexToRGB(hex string) (RGB, bool) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return RGB{}, false
	}
	for i := 0; i < len(h); i++ {
		if !isHexDigit(h[i]) {
			return RGB{}, false
		}
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// RGBToHex formats c as an uppercase "#RRGGBB" string.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBToXYZ gamma-decodes the sRGB channels and applies the sRGB→XYZ (D65) matrix.
func RGBToXYZ(c RGB) XYZ {
	r := srgbToLinear(float64(c.R) / 255)
	g := srgbToLinear(float64(c.G) / 255)
	b := srgbToLinear(float64(c.B) / 255)
	return XYZ{
		X: r*0.4124564 + g*0.3575761 + b*0.1804375,
		Y: r*0.2126729 + g*0.7151522 + b*0.0721750,
		Z: r*0.0193339 + g*0.1191920 + b*0.9503041,
	}
}

// XYZToLAB converts a D65-normalized XYZ value to L*a*b*.
func XYZToLAB(c XYZ) LAB {
	fx := labF(c.X / whiteX)
	fy := labF(c.Y / whiteY)
	fz := labF(c.Z / whiteZ)
	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LABToXYZ is the algebraic inverse of XYZToLAB.
func LABToXYZ(c LAB) XYZ {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200
	return XYZ{
		X: whiteX * labFInv(fx),
		Y: whiteY * labFInv(fy),
		Z: whiteZ * labFInv(fz),
	}
}

// XYZToRGB applies the XYZ→sRGB matrix, gamma-encodes, and clamps each
// channel to [0,255] with rounding. Out-of-gamut values are clipped.
func XYZToRGB(c XYZ) RGB {
	r := 3.2404542*c.X - 1.5371385*c.Y - 0.4985314*c.Z
	g := -0.9692660*c.X + 1.8760108*c.Y + 0.0415560*c.Z
	b := 0.0556434*c.X - 0.2040259*c.Y + 1.0572252*c.Z
	return RGB{
		R: toByte(linearToSRGB(r)),
		G: toByte(linearToSRGB(g)),
		B: toByte(linearToSRGB(b)),
	}
}

// RGBToLAB is RGBToXYZ followed by XYZToLAB.
func RGBToLAB(c RGB) LAB {
	return XYZToLAB(RGBToXYZ(c))
}

// LABToRGB is LABToXYZ followed by XYZToRGB.
func LABToRGB(c LAB) RGB {
	return XYZToRGB(LABToXYZ(c))
}

// HexToLAB parses hex and converts it to L*a*b*.
func HexToLAB(hex string) (LAB, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return LAB{}, false
	}
	return RGBToLAB(rgb), true
}

// LABToHex converts c to the nearest in-gamut sRGB color and formats it.
func LABToHex(c LAB) string {
	return RGBToHex(LABToRGB(c))
}

// PartialColor is a color given either as hex or as an explicit LAB triple.
//
// Nil LAB fields mean "not supplied". A triple is only usable when all three
// fields are present.
type PartialColor struct {
	Hex  string   `json:"hex,omitempty"`
	LabL *float64 `json:"labL,omitempty"`
	LabA *float64 `json:"labA,omitempty"`
	LabB *float64 `json:"labB,omitempty"`
}

// FromLAB wraps an explicit LAB value as a PartialColor.
func FromLAB(c LAB) PartialColor {
	l, a, b := c.L, c.A, c.B
	return PartialColor{LabL: &l, LabA: &a, LabB: &b}
}

// LabFromPartial resolves a PartialColor to LAB. A complete LAB triple takes
// precedence over Hex; ok is false when neither is usable.
func LabFromPartial(p PartialColor) (LAB, bool) {
	if p.LabL != nil && p.LabA != nil && p.LabB != nil {
		return LAB{L: *p.LabL, A: *p.LabA, B: *p.LabB}, true
	}
	if p.Hex != "" {
		return HexToLAB(p.Hex)
	}
	return LAB{}, false
}

func srgbToLinear(u float64) float64 {
	if u <= 0.04045 {
		return u / 12.92
	}
	return math.Pow((u+0.055)/1.055, 2.4)
}

func linearToSRGB(u float64) float64 {
	if u <= 0.0031308 {
		return 12.92 * u
	}
	return 1.055*math.Pow(u, 1/2.4) - 0.055
}

func labF(t float64) float64 {
	if t > labDelta3 {
		return math.Cbrt(t)
	}
	return t/labSlope + labOffset
}

func labFInv(u float64) float64 {
	if u*u*u > labDelta3 {
		return u * u * u
	}
	return labSlope * (u - labOffset)
}

func toByte(u float64) uint8 {
	return uint8(math.Round(math.Min(1, math.Max(0, u)) * 255))
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
