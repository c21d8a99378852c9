package family

import (
	"sync"
	"testing"

	"github.com/ironsheep/color-family-mcp/internal/colorspace"
)

func ptr(v float64) *float64 { return &v }

func TestSetHueBoundaries_Merges(t *testing.T) {
	t.Cleanup(ResetHueBoundaries)

	before := CurrentBoundaries()
	got := SetHueBoundaries(BoundaryUpdate{AzulStart: ptr(180)})

	want := before
	want.AzulStart = 180
	if got != want {
		t.Errorf("SetHueBoundaries returned %+v, want %+v", got, want)
	}
	if cur := CurrentBoundaries(); cur != want {
		t.Errorf("CurrentBoundaries = %+v, want %+v", cur, want)
	}

	SetHueBoundaries(BoundaryUpdate{RoxoStart: ptr(280)})
	if cur := CurrentBoundaries(); cur.AzulStart != 180 || cur.RoxoStart != 280 {
		t.Errorf("second update lost the first: %+v", cur)
	}
}

func TestSetHueBoundaries_EmptyUpdate(t *testing.T) {
	t.Cleanup(ResetHueBoundaries)

	if !(BoundaryUpdate{}).IsEmpty() {
		t.Error("zero BoundaryUpdate should be empty")
	}
	if got := SetHueBoundaries(BoundaryUpdate{}); got != DefaultHueBoundaries {
		t.Errorf("empty update changed boundaries: %+v", got)
	}
}

func TestResetHueBoundaries(t *testing.T) {
	SetHueBoundaries(BoundaryUpdate{VermelhoStart: ptr(340)})
	ResetHueBoundaries()
	if got := CurrentBoundaries(); got != DefaultHueBoundaries {
		t.Errorf("after reset: %+v, want defaults", got)
	}
}

func TestCurrentBoundaries_ReturnsCopy(t *testing.T) {
	t.Cleanup(ResetHueBoundaries)

	b := CurrentBoundaries()
	b.LaranjaStart = 99
	if CurrentBoundaries().LaranjaStart == 99 {
		t.Error("mutating the returned value changed the shared snapshot")
	}
}

func TestInferFamily_UsesProcessBoundaries(t *testing.T) {
	t.Cleanup(ResetHueBoundaries)

	cyan := colorspace.FromLAB(colorspace.LAB{L: 60, A: -40, B: -7}) // hue ≈189.9
	if got := InferFamily(cyan); got != Azul {
		t.Fatalf("default boundaries: got %s, want Azul", got)
	}
	SetHueBoundaries(BoundaryUpdate{VerdeEnd: ptr(200), AzulStart: ptr(200)})
	if got := InferFamily(cyan); got != Verde {
		t.Errorf("after update: got %s, want Verde", got)
	}
}

// Readers must only ever observe one of the two complete snapshots.
func TestHueBoundaries_ConcurrentSnapshots(t *testing.T) {
	t.Cleanup(ResetHueBoundaries)

	alt := DefaultHueBoundaries
	for _, f := range []*float64{
		&alt.VermelhoStart, &alt.LaranjaStart, &alt.AmareloStart, &alt.VerdeStart,
		&alt.VerdeEnd, &alt.AzulStart, &alt.RoxoStart, &alt.MagentaStart,
	} {
		*f += 1
	}
	toAlt := BoundaryUpdate{
		VermelhoStart: &alt.VermelhoStart, LaranjaStart: &alt.LaranjaStart,
		AmareloStart: &alt.AmareloStart, VerdeStart: &alt.VerdeStart,
		VerdeEnd: &alt.VerdeEnd, AzulStart: &alt.AzulStart,
		RoxoStart: &alt.RoxoStart, MagentaStart: &alt.MagentaStart,
	}
	def := DefaultHueBoundaries
	toDef := BoundaryUpdate{
		VermelhoStart: &def.VermelhoStart, LaranjaStart: &def.LaranjaStart,
		AmareloStart: &def.AmareloStart, VerdeStart: &def.VerdeStart,
		VerdeEnd: &def.VerdeEnd, AzulStart: &def.AzulStart,
		RoxoStart: &def.RoxoStart, MagentaStart: &def.MagentaStart,
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			if i%2 == 0 {
				SetHueBoundaries(toAlt)
			} else {
				SetHueBoundaries(toDef)
			}
		}
	}()

	for i := 0; i < 10000; i++ {
		b := CurrentBoundaries()
		if b != DefaultHueBoundaries && b != alt {
			close(stop)
			wg.Wait()
			t.Fatalf("observed torn boundaries: %+v", b)
		}
	}
	close(stop)
	wg.Wait()
}

func TestHueBoundaries_UpdateRoundTrip(t *testing.T) {
	custom := HueBoundaries{
		VermelhoStart: 350, LaranjaStart: 15, AmareloStart: 60, VerdeStart: 90,
		VerdeEnd: 165, AzulStart: 175, RoxoStart: 265, MagentaStart: 305,
	}
	if got := DefaultHueBoundaries.Merge(custom.Update()); got != custom {
		t.Errorf("Merge(Update()) = %+v, want %+v", got, custom)
	}

	u := custom.Update()
	*u.AzulStart = 0
	if custom.AzulStart != 175 {
		t.Error("Update must not alias the receiver")
	}
}
