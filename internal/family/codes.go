package family

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCode is the code for an empty family name.
const DefaultCode = "OT"

// familyCodes is part of existing SKUs and must never change. Rosa keeps MG
// from its former "Magenta" label.
var familyCodes = map[string]string{
	Vermelho: "VM",
	Laranja:  "LJ",
	Amarelo:  "AM",
	Verde:    "VD",
	Azul:     "AZ",
	Roxo:     "RX",
	Rosa:     "MG",
	Bordo:    "BO",
	Marrom:   "MR",
	Bege:     "BG",
	Cinza:    "CZ",
	Preto:    "PT",
	Branco:   "BR",
}

// CodeFor returns the two-letter SKU prefix for a family name.
//
// Synonyms are collapsed first (Ciano→AZ, Magenta→MG). Canonical families
// use the fixed table; any other name uses its first two letters upper-cased,
// a single letter is padded with 'X', and an empty name yields DefaultCode.
func CodeFor(name string) string {
	if canon, ok := IsCanonical(name); ok {
		return familyCodes[canon]
	}

	runes := []rune(strings.TrimSpace(NormalizeName(name)))
	upper := cases.Upper(language.Und)
	switch len(runes) {
	case 0:
		return DefaultCode
	case 1:
		return upper.String(string(runes)) + "X"
	default:
		return upper.String(string(runes[:2]))
	}
}
