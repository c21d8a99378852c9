package catalog

import (
	"math"

	"github.com/ironsheep/color-family-mcp/internal/colorspace"
)

// DefaultDeltaEThreshold is the ΔE00 below which two catalog colors are
// reported as conflicting.
const DefaultDeltaEThreshold = 2.0

// Conflict identifies the catalog entry nearest to a candidate color.
type Conflict struct {
	Entry   Entry   `json:"entry"`
	DeltaE  float64 `json:"delta_e"`
	Similar bool    `json:"similar"` // DeltaE < threshold
}

// Nearest finds the entry closest to candidate by ΔE00. Entries whose ID
// equals excludeID (the entry being edited) and entries without usable color
// data are skipped. ok is false when the candidate is unresolvable or no
// entry could be compared.
func Nearest(candidate colorspace.PartialColor, entries []Entry, threshold float64, excludeID string) (Conflict, bool) {
	lab, ok := colorspace.LabFromPartial(candidate)
	if !ok {
		return Conflict{}, false
	}

	best := math.Inf(1)
	var hit *Entry
	for i := range entries {
		e := &entries[i]
		if excludeID != "" && e.ID == excludeID {
			continue
		}
		other, ok := colorspace.LabFromPartial(e.Color)
		if !ok {
			continue
		}
		if d := colorspace.CIEDE2000(lab, other); d < best {
			best, hit = d, e
		}
	}
	if hit == nil {
		return Conflict{}, false
	}
	return Conflict{Entry: *hit, DeltaE: best, Similar: best < threshold}, true
}

// NearestConflict is Nearest restricted to conflicting matches: ok is true
// only when the nearest entry lies strictly below threshold.
func NearestConflict(candidate colorspace.PartialColor, entries []Entry, threshold float64, excludeID string) (Conflict, bool) {
	c, ok := Nearest(candidate, entries, threshold, excludeID)
	if !ok || !c.Similar {
		return Conflict{}, false
	}
	return c, true
}
