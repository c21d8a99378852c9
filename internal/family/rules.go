package family

import (
	"math"

	"github.com/ironsheep/color-family-mcp/internal/colorspace"
)

// sample is a LAB color with the derived quantities every rule reads.
type sample struct {
	L, a, b float64
	hue     float64
	chroma  float64
	light   float64 // L/100
}

func newSample(lab colorspace.LAB) sample {
	return sample{
		L:      lab.L,
		a:      lab.A,
		b:      lab.B,
		hue:    colorspace.HueAngle(lab),
		chroma: lab.Chroma(),
		light:  lab.L / 100,
	}
}

// ratio is b*/a*, the relative yellowness of a reddish color.
func (s sample) ratio() float64 {
	return s.b / s.a
}

// rule is one carve-out of the ordered classification chain.
type rule struct {
	name   string
	family string
	match  func(s sample) bool
}

// carveOuts run top to bottom before the hue sectors; the first match wins.
// Thresholds were tuned against real swatch readings and must not be
// reordered or rounded.
var carveOuts = []rule{
	{"achromatic-white", Branco, func(s sample) bool {
		return s.chroma < 5 && s.light >= 0.91
	}},
	{"achromatic-black", Preto, func(s sample) bool {
		return s.chroma < 5 && s.light <= 0.10
	}},
	{"achromatic-gray", Cinza, func(s sample) bool {
		return s.chroma < 5
	}},

	// Purples and mauves with a blue component. Wines just past 347° with
	// b* barely negative and modest chroma stay out (e.g. #762F55).
	{"deep-purple", Roxo, func(s sample) bool {
		if !(s.hue >= 310 && s.hue < 350 && s.b < 0 && s.chroma >= 15) {
			return false
		}
		if s.hue > 347 && s.b > -8 && s.chroma < 37 {
			return false
		}
		return s.light < 0.55 || s.ratio() < -0.35
	}},

	// Deep fuchsia, e.g. #AF1E4A.
	{"vibrant-pink", Rosa, func(s sample) bool {
		return (s.hue > 345 || s.hue < 20) &&
			s.chroma >= 50 &&
			s.light >= 0.25 && s.light <= 0.50 &&
			s.a > 45 &&
			s.ratio() < 0.35
	}},

	{"bordo", Bordo, func(s sample) bool {
		return s.light < 0.40 &&
			(s.hue >= 345 || s.hue < 25) &&
			s.a > 18 && s.b >= 0 &&
			s.chroma >= 18 && s.chroma <= 60 &&
			math.Abs(s.b) < s.a*0.5
	}},

	// Very dark, muted wines, e.g. #483638.
	{"bordo-desaturated", Bordo, func(s sample) bool {
		return s.light < 0.35 &&
			(s.hue >= 350 || s.hue < 20) &&
			s.a > 7 && s.a < 20 &&
			s.b >= 0 && s.b <= 10 &&
			s.chroma >= 6 && s.chroma <= 20
	}},

	// Aged rose near the orange edge, e.g. #C29188.
	{"aged-rose", Rosa, func(s sample) bool {
		return lightRoseGuard(s) &&
			s.hue >= 33 && s.hue < 40 &&
			s.b <= 12.2 &&
			s.chroma > 18 && s.chroma < 26 &&
			s.light >= 0.58 && s.light <= 0.71
	}},

	{"light-rosa", Rosa, func(s sample) bool {
		if !lightRoseGuard(s) || s.ratio() >= 0.65 {
			return false
		}
		// Inside the orange band only pale tones read as pink.
		if s.hue >= 20 && s.hue < 40 {
			return s.light > 0.70
		}
		return s.b < 15 || s.chroma < 30
	}},

	// Saturated reds that land in the LAB orange band, e.g. #CC3227.
	{"warm-red", Vermelho, func(s sample) bool {
		return s.hue >= 20 && s.hue < 40 &&
			s.chroma >= 45 &&
			s.a >= 40 &&
			s.ratio() <= 0.80 &&
			s.light >= 0.20 && s.light <= 0.65
	}},

	// Terracotta and coral (30–40° above chroma 18) stay out.
	{"bege", Bege, func(s sample) bool {
		return s.chroma >= 5 && s.chroma < 25 &&
			s.light > 0.55 &&
			s.hue >= 30 && s.hue < 105 &&
			!(s.hue >= 30 && s.hue < 40 && s.chroma > 18)
	}},

	{"marrom", Marrom, func(s sample) bool {
		return s.light < 0.50 && s.hue >= 20 && s.hue < 65
	}},

	{"marrom-terracotta", Marrom, func(s sample) bool {
		return s.light >= 0.50 && s.light < 0.60 &&
			s.hue >= 55 && s.hue < 65 &&
			s.chroma < 32
	}},

	// Dark olive browns that hue alone would call yellow or green, e.g. #605739.
	{"marrom-olive", Marrom, func(s sample) bool {
		return s.light < 0.48 &&
			s.hue >= 65 && s.hue < 100 &&
			s.chroma >= 8 && s.chroma < 24 &&
			(math.Abs(s.a) <= 6 || (s.a <= 10 && s.b >= 12))
	}},

	// Near-black navy whose hue angle sits in the purple sector, e.g. #19192C.
	{"dark-blue", Azul, func(s sample) bool {
		return s.light < 0.20 && s.b < -5 && math.Abs(s.b) > math.Abs(s.a)
	}},
}

func lightRoseGuard(s sample) bool {
	return s.a > 12 && s.b >= 0 && (s.hue < 40 || s.hue > 340) && s.light > 0.45
}
