package token

import (
	"testing"
)

func TestFoldCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Lorem", "lorem"},
		{"W.", "w."},
		{"ÉTÉ", "été"},
		{"Straße", "strasse"},
		{"already-lower", "already-lower"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := FoldCase(tc.input); got != tc.want {
				t.Errorf("FoldCase(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestFoldDiacritics(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"é", "e"},
		{"naïve", "naive"},
		{"café", "cafe"},
		{"Société", "Societe"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := FoldDiacritics(tc.input); got != tc.want {
				t.Errorf("FoldDiacritics(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestFoldASCII(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"héllo", "hello"},
		{"Æon", "AEon"},
		{"plain", "plain"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := FoldASCII(tc.input); got != tc.want {
				t.Errorf("FoldASCII(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestStripPunctuation(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"W.", "W"},
		{"dolor:", "dolor"},
		{"Jean-Pierre", "Jean-Pierre"},
		{"(1950-2018)", "1950-2018"},
		{"$100", "100"},
		{"...", ""},
		{"--", ""},
		{"-edge-", "edge"},
		{"don't", "dont"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := StripPunctuation(tc.input); got != tc.want {
				t.Errorf("StripPunctuation(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"&amp;", "&"},
		{"&quot;", "\""},
		{"amp", "amp"},
		{"&unterminated", "&unterminated"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := DecodeEntities(tc.input); got != tc.want {
				t.Errorf("DecodeEntities(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("") || !IsBlank("   ") || !IsBlank("\t\n") {
		t.Error("empty and whitespace-only tokens should be blank")
	}
	if IsBlank("a") || IsBlank(" a ") {
		t.Error("tokens with content should not be blank")
	}
}

// --- Benchmarks ---

// BenchmarkStripPunctuation measures the hot path of the pipeline.
func BenchmarkStripPunctuation(b *testing.B) {
	tokens := []string{"Lorem", "ipsum,", "dolor:", "(1950-2018)", "Jean-Pierre"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tok := range tokens {
			_ = StripPunctuation(tok)
		}
	}
}

// BenchmarkFoldCase measures Unicode case folding on mixed input.
func BenchmarkFoldCase(b *testing.B) {
	tokens := []string{"Lorem", "IPSUM", "Société", "already-lower"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tok := range tokens {
			_ = FoldCase(tok)
		}
	}
}
