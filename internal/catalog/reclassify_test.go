package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/ironsheep/color-family-mcp/internal/family"
)

func TestReclassify(t *testing.T) {
	c := family.NewClassifier(family.DefaultHueBoundaries)
	entries := []Entry{
		{ID: "1", Name: "Vinho", SKU: "VI001", Color: hex("#612B33")},
		{ID: "2", Name: "001", SKU: "VM001", Color: hex("#612B33")},
		{ID: "3", Name: "Magenta Neon", SKU: "MG004"},
		{ID: "4", Name: "", Color: hex("nope")},
	}

	got, err := Reclassify(context.Background(), c, entries, 3)
	if err != nil {
		t.Fatalf("Reclassify: %v", err)
	}

	want := []Reclassification{
		{ID: "1", Family: "Vinho", Source: SourceName, Code: "VI", PrefixChanged: false},
		{ID: "2", Family: family.Bordo, Source: SourceColor, Code: "BO", PrefixChanged: true},
		{ID: "3", Family: family.Rosa, Source: SourceName, Code: "MG", PrefixChanged: false},
		{ID: "4", Family: DefaultFamily, Source: SourceDefault, Code: "OU", PrefixChanged: false},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReclassify_PreservesOrderUnderLoad(t *testing.T) {
	c := family.NewClassifier(family.DefaultHueBoundaries)
	entries := make([]Entry, 500)
	for i := range entries {
		entries[i] = Entry{ID: fmt.Sprintf("e%03d", i), Color: hex("#00AAFF")}
	}

	got, err := Reclassify(context.Background(), c, entries, 8)
	if err != nil {
		t.Fatalf("Reclassify: %v", err)
	}
	for i, r := range got {
		if r.ID != entries[i].ID || r.Family != family.Azul {
			t.Fatalf("result %d = %+v", i, r)
		}
	}
}

func TestReclassify_Empty(t *testing.T) {
	got, err := Reclassify(context.Background(), family.Current(), nil, 4)
	if err != nil || len(got) != 0 {
		t.Errorf("got %v, %v; want empty, nil", got, err)
	}
}

func TestReclassify_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries := []Entry{{ID: "1", Color: hex("#FFFFFF")}}
	if _, err := Reclassify(ctx, family.Current(), entries, 0); err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
