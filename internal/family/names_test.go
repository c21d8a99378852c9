package family

import "testing"

func TestDetectFromName(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"canonical", "Amarelo Sol", Amarelo, true},
		{"lower case", "azul marinho", Azul, true},
		{"upper case with accent", "BORDÔ escuro", Bordo, true},
		{"synonym ciano", "Ciano Claro", Azul, true},
		{"synonym magenta", "magenta", Rosa, true},
		{"surrounding space", "   Verde   Musgo ", Verde, true},
		{"numeric", "123", "", false},
		{"numeric first word", "123 Azul", "", false},
		{"empty", "", "", false},
		{"blank", "   ", "", false},
		{"ad-hoc family", "Salmão Claro", "Salmão", true},
		{"ad-hoc lower", "terracota", "Terracota", true},
		{"ad-hoc mixed case", "tERRACOTA queimada", "Terracota", true},
		{"alphanumeric is not numeric", "2B Azul", "2b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectFromName(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("DetectFromName(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Ciano", Azul},
		{"CIANO", Azul},
		{" magenta ", Rosa},
		{"rosa", Rosa},
		{"Verde", "Verde"},
		{"custom", "custom"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokens(t *testing.T) {
	if len(Names) != 13 {
		t.Errorf("len(Names) = %d, want 13", len(Names))
	}
	if len(Tokens) != len(Names)+2 {
		t.Errorf("len(Tokens) = %d, want %d", len(Tokens), len(Names)+2)
	}
	if Tokens[len(Tokens)-2] != Ciano || Tokens[len(Tokens)-1] != Magenta {
		t.Errorf("synonyms should follow canonical names: %v", Tokens)
	}
}
