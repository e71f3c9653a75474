package domain

import (
	"strings"
	"testing"
)

func TestExtractSeeds_FiltersShortLines(t *testing.T) {
	opts := SeedOptions{MinLength: 10, MaxSeeds: 10, Default: "default"}
	got := ExtractSeeds("- a\n- this is a longer line\n", opts)
	if len(got) != 1 || got[0] != "this is a longer line" {
		t.Fatalf("ExtractSeeds() = %q, want [\"this is a longer line\"]", got)
	}
}

func TestExtractSeeds_StripsLeaders(t *testing.T) {
	notes := "• bullet point number one\n\t- tabbed and dashed line -\n   spaced out line here   \r\n"
	got := ExtractSeeds(notes, DiversifiedSeedOptions)
	want := []string{"bullet point number one", "tabbed and dashed line", "spaced out line here"}
	if len(got) != len(want) {
		t.Fatalf("ExtractSeeds() returned %d seeds, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("seed %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractSeeds_MinLengthCountsRunes(t *testing.T) {
	opts := SeedOptions{MinLength: 10, MaxSeeds: 5, Default: "default"}
	// 9 runes, more than 10 bytes.
	got := ExtractSeeds("ééééééééé", opts)
	if len(got) != 1 || got[0] != "default" {
		t.Errorf("ExtractSeeds() = %q, want default seed", got)
	}
	got = ExtractSeeds("éééééééééé", opts)
	if len(got) != 1 || got[0] != "éééééééééé" {
		t.Errorf("ExtractSeeds() = %q, want the 10-rune line", got)
	}
}

func TestExtractSeeds_MaxSeeds(t *testing.T) {
	var lines []string
	for i := 0; i < 30; i++ {
		lines = append(lines, strings.Repeat("x", 12)+string(rune('a'+i%26)))
	}
	got := ExtractSeeds(strings.Join(lines, "\n"), DiversifiedSeedOptions)
	if len(got) != 20 {
		t.Fatalf("ExtractSeeds() returned %d seeds, want 20", len(got))
	}
	if got[0] != lines[0] || got[19] != lines[19] {
		t.Errorf("ExtractSeeds() did not keep the first lines in order")
	}

	got = ExtractSeeds(strings.Join(lines, "\n"), SimpleSeedOptions)
	if len(got) != 10 {
		t.Errorf("ExtractSeeds() with simple options returned %d seeds, want 10", len(got))
	}
}

func TestExtractSeeds_DefaultSeed(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		opts  SeedOptions
		want  string
	}{
		{"empty diversified", "", DiversifiedSeedOptions, "the main idea of the notes"},
		{"only short lines", "Intro\n- a\n\nTOC", DiversifiedSeedOptions, "the main idea of the notes"},
		{"simple variant", "   \n--\n", SimpleSeedOptions, "Summarize the main idea."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSeeds(tt.notes, tt.opts)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("ExtractSeeds() = %q, want [%q]", got, tt.want)
			}
		})
	}
}

func TestExtractSeeds_DiversifiedThreshold(t *testing.T) {
	// 11 runes survives the simple threshold but not the diversified one.
	line := "abcdefghijk"
	if got := ExtractSeeds(line, SimpleSeedOptions); got[0] != line {
		t.Errorf("simple: got %q", got)
	}
	if got := ExtractSeeds(line, DiversifiedSeedOptions); got[0] != DiversifiedSeedOptions.Default {
		t.Errorf("diversified: got %q", got)
	}
}

func TestExtractSeeds_LineBreakVariants(t *testing.T) {
	want := []string{"first line of the notes", "second line of the notes", "third line of the notes"}
	cases := map[string]string{
		"bare CR":             "first line of the notes\rsecond line of the notes\rthird line of the notes",
		"CRLF":                "first line of the notes\r\nsecond line of the notes\r\nthird line of the notes\r\n",
		"line separator":      "first line of the notes\u2028second line of the notes\u2029third line of the notes",
		"next line and feeds": "first line of the notes\u0085second line of the notes\fthird line of the notes\v",
	}
	for name, notes := range cases {
		t.Run(name, func(t *testing.T) {
			got := ExtractSeeds(notes, DiversifiedSeedOptions)
			if len(got) != len(want) {
				t.Fatalf("ExtractSeeds() = %q, want %q", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("seed %d = %q, want %q", i, got[i], want[i])
				}
			}
		})
	}
}

func TestExtractSeeds_SkipsPunctuationOnlyLines(t *testing.T) {
	got := ExtractSeeds("x\n\n------------\n............\n;:;:;:;:;:;:?\n", DiversifiedSeedOptions)
	if len(got) != 1 || got[0] != DiversifiedSeedOptions.Default {
		t.Errorf("ExtractSeeds() = %q, want default seed", got)
	}

	got = ExtractSeeds("............\nA real sentence about cells.", DiversifiedSeedOptions)
	if len(got) != 1 || got[0] != "A real sentence about cells." {
		t.Errorf("ExtractSeeds() = %q, want only the sentence", got)
	}
}
