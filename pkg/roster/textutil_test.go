package roster

import "testing"

func TestNormalizeForMatch(t *testing.T) {
	cases := map[string]string{
		"  Cake Studio  ":   "cake studio",
		"CAKE-STUDIO!!":     "cake studio",
		"Mario’s Pizza":     "mario s pizza",
		"Soda   Brewery 42": "soda brewery 42",
		"":                  "",
	}
	for in, want := range cases {
		if got := NormalizeForMatch(in); got != want {
			t.Fatalf("NormalizeForMatch(%q): expected %q got %q", in, want, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Cake Studio", "  WEIRD--text 123 ", "Mario’s Pizza", "a"}
	for _, in := range inputs {
		once := NormalizeForMatch(in)
		if twice := NormalizeForMatch(once); twice != once {
			t.Fatalf("normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if s := Similarity("Cake Studio", "Cake Studio"); s != 1 {
		t.Fatalf("expected similarity 1 got %v", s)
	}
	if s := Similarity("", "Cake Studio"); s != 0 {
		t.Fatalf("expected similarity 0 for empty input got %v", s)
	}
	s := Similarity("Cake Studio", "Coke Studio")
	if s <= 0.8 || s >= 1 {
		t.Fatalf("expected one-edit similarity in (0.8,1) got %v", s)
	}
}

func TestCollapseImmediateDuplicateNoSpace(t *testing.T) {
	if got := CollapseImmediateDuplicateNoSpace("CAKE STUDIO CAKE STUDIO"); got != "cakestudio" {
		t.Fatalf("expected collapsed cakestudio got %q", got)
	}
	if got := CollapseImmediateDuplicateNoSpace("Cake Studio"); got != "" {
		t.Fatalf("expected no collapse for single name got %q", got)
	}
	if got := CollapseImmediateDuplicateNoSpace("abcabd"); got != "" {
		t.Fatalf("expected no collapse for unequal halves got %q", got)
	}
}

func TestIsUnemployedText(t *testing.T) {
	for _, s := range []string{"UNEMPLOYED", "unemployed", "Unemp1oyed", "nemployed", "UNEMPLOYEO"} {
		if !IsUnemployedText(s) {
			t.Fatalf("expected %q to read as unemployed", s)
		}
	}
	for _, s := range []string{"Cake Studio", "", "Alice Wonderland"} {
		if IsUnemployedText(s) {
			t.Fatalf("did not expect %q to read as unemployed", s)
		}
	}
}

func TestLooksLikeHeaderOrNoise(t *testing.T) {
	for _, s := range []string{"Dream Jobs", "dream job", "Job", "12345", "  ", "12 34"} {
		if !LooksLikeHeaderOrNoise(s) {
			t.Fatalf("expected %q to be noise", s)
		}
	}
	for _, s := range []string{"Alice Wonderland", "Cake Studio"} {
		if LooksLikeHeaderOrNoise(s) {
			t.Fatalf("did not expect %q to be noise", s)
		}
	}
}

func TestSanitizeResidentName(t *testing.T) {
	if got := SanitizeResidentName("Alice Wonderland 12345"); got != "Alice Wonderland" {
		t.Fatalf("expected trailing id stripped got %q", got)
	}
	if got := SanitizeResidentName("A!ice W@nderland"); got != "Aice Wnderland" {
		t.Fatalf("expected punctuation stripped got %q", got)
	}
	if got := SanitizeResidentName("Mario’s Pizza"); got != "Mario's Pizza" {
		t.Fatalf("expected curly apostrophe normalized got %q", got)
	}
}

func TestIsLikelyName(t *testing.T) {
	for _, s := range []string{"Alice Wonderland", "Marianne", "Bo Li"} {
		if !IsLikelyName(s) {
			t.Fatalf("expected %q to be a likely name", s)
		}
	}
	for _, s := range []string{"", "Al", "Bob7", "UNEMPLOYED", "Gym"} {
		if IsLikelyName(s) {
			t.Fatalf("did not expect %q to be a likely name", s)
		}
	}
}
