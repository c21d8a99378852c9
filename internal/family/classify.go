package family

import (
	"github.com/ironsheep/color-family-mcp/internal/colorspace"
)

// Match describes how a color was classified.
type Match struct {
	// Family is the resulting family name, or NoFamily.
	Family string `json:"family"`

	// Rule names the carve-out that fired ("bordo", "dark-blue", ...) or
	// "sector" when the hue-sector fallback decided. Empty for NoFamily.
	Rule string `json:"rule,omitempty"`

	// Hue and Chroma are the derived LAB quantities the rules saw.
	Hue    float64 `json:"hue"`
	Chroma float64 `json:"chroma"`
}

// RuleSector is the Match.Rule value for the hue-sector fallback.
const RuleSector = "sector"

// Classifier classifies colors against a fixed set of boundaries.
// The zero value has all sectors at 0° and classifies every chromatic color
// that escapes the carve-outs as NoFamily; use NewClassifier or Current.
type Classifier struct {
	Bounds HueBoundaries
}

// NewClassifier returns a Classifier bound to b.
func NewClassifier(b HueBoundaries) Classifier {
	return Classifier{Bounds: b}
}

// Current returns a Classifier bound to a snapshot of the process-wide
// boundaries.
func Current() Classifier {
	return Classifier{Bounds: CurrentBoundaries()}
}

// Classify runs the rule chain on lab.
func (c Classifier) Classify(lab colorspace.LAB) Match {
	s := newSample(lab)
	m := Match{Family: NoFamily, Hue: s.hue, Chroma: s.chroma}

	for _, r := range carveOuts {
		if r.match(s) {
			m.Family, m.Rule = r.family, r.name
			return m
		}
	}
	for _, sec := range c.Bounds.sectors() {
		if inArc(sec.start, sec.end, s.hue) {
			m.Family, m.Rule = sec.family, RuleSector
			return m
		}
	}
	return m
}

// Explain resolves p and classifies it, reporting which rule decided.
// ok is false when p carries neither a complete LAB triple nor valid hex.
func (c Classifier) Explain(p colorspace.PartialColor) (Match, bool) {
	lab, ok := colorspace.LabFromPartial(p)
	if !ok {
		return Match{Family: NoFamily}, false
	}
	return c.Classify(lab), true
}

// Infer returns the family of p, or NoFamily when p is unresolvable or no
// rule or sector matches.
func (c Classifier) Infer(p colorspace.PartialColor) string {
	m, _ := c.Explain(p)
	return m.Family
}

// InferFamily classifies p against the process-wide boundaries.
func InferFamily(p colorspace.PartialColor) string {
	return Current().Infer(p)
}

// InferFamilyHex is InferFamily for a hex string.
func InferFamilyHex(hex string) string {
	return InferFamily(colorspace.PartialColor{Hex: hex})
}

// LabHueAngle returns the hue of lab in degrees within [0,360).
func LabHueAngle(lab colorspace.LAB) float64 {
	return colorspace.HueAngle(lab)
}
