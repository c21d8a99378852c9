package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ironsheep/color-family-mcp/internal/colorspace"
	"github.com/ironsheep/color-family-mcp/internal/family"
)

// DefaultFamily is used when neither the name nor the color yields a family.
const DefaultFamily = "Outros"

// Source records which step decided an entry's family.
type Source string

const (
	SourceName    Source = "name"    // first word of the entry name
	SourceColor   Source = "color"   // LAB classification
	SourceDefault Source = "default" // fallback to DefaultFamily
)

// Entry is a catalog color as the caller holds it.
type Entry struct {
	ID    string                  `json:"id"`
	Name  string                  `json:"name"`
	SKU   string                  `json:"sku,omitempty"`
	Color colorspace.PartialColor `json:"color"`
}

// ResolveFamily picks the family for a new entry: the name wins when its
// first word implies a family, then the color is classified, and finally
// DefaultFamily is used.
func ResolveFamily(classifier family.Classifier, name string, color colorspace.PartialColor) (string, Source) {
	if fam, ok := family.DetectFromName(name); ok {
		return fam, SourceName
	}
	if fam := classifier.Infer(color); fam != family.NoFamily {
		return fam, SourceColor
	}
	return DefaultFamily, SourceDefault
}

// NextSKU returns code followed by the next free three-digit sequence
// number among existing SKUs sharing that prefix. Sequences beyond 999
// simply grow wider.
func NextSKU(code string, existing []string) string {
	maxSeq := 0
	for _, sku := range existing {
		if !strings.HasPrefix(sku, code) {
			continue
		}
		seq, ok := leadingInt(sku[len(code):])
		if ok && seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("%s%03d", code, maxSeq+1)
}

// leadingInt parses the run of ASCII digits at the start of s.
func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Assignment is the family, code and SKU chosen for a new entry.
type Assignment struct {
	Family string `json:"family"`
	Source Source `json:"source"`
	Code   string `json:"code"`
	SKU    string `json:"sku"`
}

// AssignSKU resolves the family of a new entry and allocates its SKU.
func AssignSKU(classifier family.Classifier, name string, color colorspace.PartialColor, existing []string) Assignment {
	fam, src := ResolveFamily(classifier, name, color)
	code := family.CodeFor(fam)
	return Assignment{
		Family: fam,
		Source: src,
		Code:   code,
		SKU:    NextSKU(code, existing),
	}
}
