package catalog

import (
	"testing"

	"github.com/ironsheep/color-family-mcp/internal/colorspace"
	"github.com/ironsheep/color-family-mcp/internal/family"
)

func hex(h string) colorspace.PartialColor { return colorspace.PartialColor{Hex: h} }

func TestResolveFamily(t *testing.T) {
	c := family.NewClassifier(family.DefaultHueBoundaries)
	tests := []struct {
		name       string
		entryName  string
		color      colorspace.PartialColor
		wantFamily string
		wantSource Source
	}{
		{"name wins over color", "Amarelo Sol", hex("#00AAFF"), family.Amarelo, SourceName},
		{"ad-hoc name family", "Salmão Claro", hex("#00AAFF"), "Salmão", SourceName},
		{"numeric name uses color", "123", hex("#612B33"), family.Bordo, SourceColor},
		{"empty name uses color", "", hex("#FFC400"), family.Amarelo, SourceColor},
		{"nothing usable", "42", colorspace.PartialColor{}, DefaultFamily, SourceDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fam, src := ResolveFamily(c, tt.entryName, tt.color)
			if fam != tt.wantFamily || src != tt.wantSource {
				t.Errorf("got (%s, %s), want (%s, %s)", fam, src, tt.wantFamily, tt.wantSource)
			}
		})
	}
}

func TestNextSKU(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		existing []string
		want     string
	}{
		{"first in family", "VM", nil, "VM001"},
		{"after highest", "VM", []string{"VM001", "VM007", "VM003"}, "VM008"},
		{"other prefixes ignored", "AZ", []string{"VM010", "AZ002", "MG099"}, "AZ003"},
		{"non-numeric suffix ignored", "BO", []string{"BOX", "BO004"}, "BO005"},
		{"trailing text after digits", "MR", []string{"MR012-old"}, "MR013"},
		{"beyond 999", "PT", []string{"PT999"}, "PT1000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextSKU(tt.code, tt.existing); got != tt.want {
				t.Errorf("NextSKU(%s, %v) = %s, want %s", tt.code, tt.existing, got, tt.want)
			}
		})
	}
}

func TestAssignSKU(t *testing.T) {
	c := family.NewClassifier(family.DefaultHueBoundaries)

	got := AssignSKU(c, "Ciano Piscina", hex("#FF0000"), []string{"AZ001", "AZ002"})
	want := Assignment{Family: family.Azul, Source: SourceName, Code: "AZ", SKU: "AZ003"}
	if got != want {
		t.Errorf("AssignSKU = %+v, want %+v", got, want)
	}

	got = AssignSKU(c, "", colorspace.PartialColor{}, nil)
	if got.Family != DefaultFamily || got.Code != "OU" || got.SKU != "OU001" {
		t.Errorf("default assignment = %+v", got)
	}
}
