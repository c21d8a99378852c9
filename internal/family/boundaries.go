package family

import "sync/atomic"

// HueBoundaries holds the start angle, in degrees, of each hue sector used
// by the fallback classification. Verde has its own end so that Verde and
// Azul need not be contiguous.
type HueBoundaries struct {
	VermelhoStart float64 `json:"vermelhoStart"`
	LaranjaStart  float64 `json:"laranjaStart"`
	AmareloStart  float64 `json:"amareloStart"`
	VerdeStart    float64 `json:"verdeStart"`
	VerdeEnd      float64 `json:"verdeEnd"`
	AzulStart     float64 `json:"azulStart"`
	RoxoStart     float64 `json:"roxoStart"`
	MagentaStart  float64 `json:"magentaStart"`
}

// DefaultHueBoundaries are the reference sectors:
//
//	Vermelho 345–20 | Laranja 20–65 | Amarelo 65–95 | Verde 95–170
//	Azul 170–270 | Roxo 270–310 | Rosa 310–345
var DefaultHueBoundaries = HueBoundaries{
	VermelhoStart: 345,
	LaranjaStart:  20,
	AmareloStart:  65,
	VerdeStart:    95,
	VerdeEnd:      170,
	AzulStart:     170,
	RoxoStart:     270,
	MagentaStart:  310,
}

// BoundaryUpdate is a partial HueBoundaries. Nil fields are left unchanged
// by Merge.
type BoundaryUpdate struct {
	VermelhoStart *float64 `json:"vermelhoStart,omitempty"`
	LaranjaStart  *float64 `json:"laranjaStart,omitempty"`
	AmareloStart  *float64 `json:"amareloStart,omitempty"`
	VerdeStart    *float64 `json:"verdeStart,omitempty"`
	VerdeEnd      *float64 `json:"verdeEnd,omitempty"`
	AzulStart     *float64 `json:"azulStart,omitempty"`
	RoxoStart     *float64 `json:"roxoStart,omitempty"`
	MagentaStart  *float64 `json:"magentaStart,omitempty"`
}

// IsEmpty reports whether u would leave every field unchanged.
func (u BoundaryUpdate) IsEmpty() bool {
	return u == BoundaryUpdate{}
}

// Merge returns b with every non-nil field of u applied.
func (b HueBoundaries) Merge(u BoundaryUpdate) HueBoundaries {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&b.VermelhoStart, u.VermelhoStart)
	set(&b.LaranjaStart, u.LaranjaStart)
	set(&b.AmareloStart, u.AmareloStart)
	set(&b.VerdeStart, u.VerdeStart)
	set(&b.VerdeEnd, u.VerdeEnd)
	set(&b.AzulStart, u.AzulStart)
	set(&b.RoxoStart, u.RoxoStart)
	set(&b.MagentaStart, u.MagentaStart)
	return b
}

// Update returns a BoundaryUpdate that sets every field to b's value.
func (b HueBoundaries) Update() BoundaryUpdate {
	return BoundaryUpdate{
		VermelhoStart: &b.VermelhoStart,
		LaranjaStart:  &b.LaranjaStart,
		AmareloStart:  &b.AmareloStart,
		VerdeStart:    &b.VerdeStart,
		VerdeEnd:      &b.VerdeEnd,
		AzulStart:     &b.AzulStart,
		RoxoStart:     &b.RoxoStart,
		MagentaStart:  &b.MagentaStart,
	}
}

var current atomic.Pointer[HueBoundaries]

func init() {
	b := DefaultHueBoundaries
	current.Store(&b)
}

// CurrentBoundaries returns a copy of the process-wide boundaries.
func CurrentBoundaries() HueBoundaries {
	return *current.Load()
}

// SetHueBoundaries merges u into the process-wide boundaries and returns the
// resulting set. Concurrent updates are serialized by compare-and-swap so no
// update is lost, and readers only ever observe complete snapshots.
func SetHueBoundaries(u BoundaryUpdate) HueBoundaries {
	for {
		old := current.Load()
		next := old.Merge(u)
		if current.CompareAndSwap(old, &next) {
			return next
		}
	}
}

// ResetHueBoundaries restores DefaultHueBoundaries.
func ResetHueBoundaries() {
	b := DefaultHueBoundaries
	current.Store(&b)
}

// inArc reports whether value lies in the half-open arc [start, end). When
// start > end the arc wraps through 0°.
func inArc(start, end, value float64) bool {
	if start <= end {
		return value >= start && value < end
	}
	return value >= start || value < end
}

type sector struct {
	family     string
	start, end float64
}

// sectors lists the fallback arcs in evaluation order.
func (b HueBoundaries) sectors() []sector {
	return []sector{
		{Vermelho, b.VermelhoStart, b.LaranjaStart},
		{Laranja, b.LaranjaStart, b.AmareloStart},
		{Amarelo, b.AmareloStart, b.VerdeStart},
		{Verde, b.VerdeStart, b.VerdeEnd},
		{Azul, b.AzulStart, b.RoxoStart},
		{Roxo, b.RoxoStart, b.MagentaStart},
		{Rosa, b.MagentaStart, b.VermelhoStart},
	}
}
