package family

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical family names.
const (
	Vermelho = "Vermelho"
	Laranja  = "Laranja"
	Amarelo  = "Amarelo"
	Verde    = "Verde"
	Azul     = "Azul"
	Roxo     = "Roxo"
	Rosa     = "Rosa"
	Bordo    = "Bordô"
	Marrom   = "Marrom"
	Bege     = "Bege"
	Cinza    = "Cinza"
	Preto    = "Preto"
	Branco   = "Branco"
)

// Synonyms accepted at the start of a color name.
const (
	Ciano   = "Ciano"   // collapses to Azul
	Magenta = "Magenta" // collapses to Rosa
)

// NoFamily is returned when a color cannot be classified.
const NoFamily = "—"

// Names lists the canonical families.
var Names = []string{
	Vermelho, Laranja, Amarelo, Verde, Azul, Roxo, Rosa,
	Bordo, Marrom, Bege, Cinza, Preto, Branco,
}

// Tokens lists every word recognized as a family at the start of a name:
// the canonical names followed by their synonyms.
var Tokens = append(append([]string{}, Names...), Ciano, Magenta)

// equalFold compares two family tokens case-insensitively with full Unicode
// folding, so "BORDÔ" matches "Bordô".
func equalFold(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}

// NormalizeName collapses synonyms onto their canonical family. Anything
// that is not a synonym is returned unchanged.
func NormalizeName(n string) string {
	s := strings.TrimSpace(n)
	switch {
	case equalFold(s, Ciano):
		return Azul
	case equalFold(s, Magenta):
		return Rosa
	case equalFold(s, Rosa):
		return Rosa
	}
	return n
}

// IsCanonical reports whether name, after synonym collapsing, is one of
// Names. It returns the canonical spelling when it is.
func IsCanonical(name string) (string, bool) {
	norm := strings.TrimSpace(NormalizeName(name))
	for _, f := range Names {
		if equalFold(f, norm) {
			return f, true
		}
	}
	return "", false
}

// DetectFromName derives a family from the first word of a human-supplied
// color name.
//
// A purely numeric first word implies no family (ok == false). A known token
// returns its canonical family. Any other word becomes an ad-hoc family with
// its first letter upper-cased and the rest lower-cased, so "salmão claro"
// yields "Salmão".
func DetectFromName(name string) (string, bool) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", false
	}
	first := fields[0]
	if isDigits(first) {
		return "", false
	}

	for _, tok := range Tokens {
		if equalFold(first, tok) {
			return NormalizeName(tok), true
		}
	}
	return capitalize(first), true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError && size <= 1 {
		return word
	}
	return cases.Upper(language.Und).String(word[:size]) +
		cases.Lower(language.Und).String(word[size:])
}
