package roster

import (
	"regexp"
	"strings"
)

var (
	trailingIDRE  = regexp.MustCompile(`\s+\d{3,}\s*$`)
	nameCharsRE   = regexp.MustCompile(`[^a-zA-Z0-9\s'-]`)
	digitRE       = regexp.MustCompile(`\d`)
	numericOnlyRE = regexp.MustCompile(`^[0-9\s]+$`)
	spacesRE      = regexp.MustCompile(`\s+`)
)

// NormalizeForMatch lowercases, maps curly apostrophes to straight ones,
// collapses every non-alphanumeric run to a single space and trims.
func NormalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "’", "'")
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// NormalizeNoSpace is NormalizeForMatch with spaces removed, for OCR runs
// that lose inter-word spacing.
func NormalizeNoSpace(s string) string {
	return strings.ReplaceAll(NormalizeForMatch(s), " ", "")
}

// levenshtein computes the edit distance between two strings.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			m := prev[j] + 1
			if v := cur[j-1] + 1; v < m {
				m = v
			}
			if v := prev[j-1] + cost; v < m {
				m = v
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// Similarity returns 1 - editDistance/maxLen over normalized forms, in 0..1.
func Similarity(a, b string) float64 {
	return similarityOf(NormalizeForMatch(a), NormalizeForMatch(b))
}

// SimilarityNoSpace is Similarity over the no-space normalized forms.
func SimilarityNoSpace(a, b string) float64 {
	return similarityOf(NormalizeNoSpace(a), NormalizeNoSpace(b))
}

func similarityOf(aa, bb string) float64 {
	if aa == "" || bb == "" {
		return 0
	}
	denom := len(aa)
	if len(bb) > denom {
		denom = len(bb)
	}
	return 1 - float64(levenshtein(aa, bb))/float64(denom)
}

// CollapseImmediateDuplicateNoSpace detects a no-space text whose first half
// equals its second half (OCR doubles short store names on "working at your
// dream job" screens) and returns the single half. Returns "" when the text
// is not a doubled pair.
func CollapseImmediateDuplicateNoSpace(s string) string {
	noSpace := NormalizeNoSpace(s)
	if len(noSpace) < 8 || len(noSpace)%2 != 0 {
		return ""
	}
	half := len(noSpace) / 2
	if noSpace[:half] == noSpace[half:] {
		return noSpace[:half]
	}
	return ""
}

// IsUnemployedText reports whether text is the roster's "unemployed" marker.
// The matching is deliberately permissive: wrongly marking a real job as
// unemployed is less harmful than missing the marker on a corrupted read.
func IsUnemployedText(s string) bool {
	t := NormalizeNoSpace(s)
	if t == "" {
		return false
	}
	if t == "unemployed" {
		return true
	}
	if strings.Contains(t, "unemploy") || strings.Contains(t, "nemploy") || strings.Contains(t, "employ") {
		return true
	}
	return similarityOf(t, "unemployed") >= 0.6
}

// LooksLikeHeaderOrNoise rejects table headers and purely numeric fragments.
func LooksLikeHeaderOrNoise(s string) bool {
	t := NormalizeForMatch(s)
	if t == "" {
		return true
	}
	if strings.Contains(t, "dream job") || t == "job" {
		return true
	}
	return numericOnlyRE.MatchString(t)
}

// StripTrailingNumericID removes a trailing token of 3+ digits, which OCR
// appends when a resident id renders next to the name.
func StripTrailingNumericID(s string) string {
	return strings.TrimSpace(trailingIDRE.ReplaceAllString(s, ""))
}

// SanitizeResidentName strips a trailing numeric id, drops characters outside
// [a-zA-Z0-9 '-] and collapses whitespace.
func SanitizeResidentName(s string) string {
	s = strings.ReplaceAll(s, "’", "'")
	s = nameCharsRE.ReplaceAllString(s, "")
	s = spacesRE.ReplaceAllString(s, " ")
	return StripTrailingNumericID(strings.TrimSpace(s))
}

// IsLikelyName reports whether text could be a resident name. Single-token
// names must be at least 6 chars to tolerate a missing inter-word space.
func IsLikelyName(s string) bool {
	cleaned := SanitizeResidentName(s)
	if cleaned == "" {
		return false
	}
	if IsUnemployedText(cleaned) || IsUnemployedText(s) {
		return false
	}
	if len(cleaned) < 3 {
		return false
	}
	if digitRE.MatchString(cleaned) {
		return false
	}
	if !strings.Contains(cleaned, " ") && len(cleaned) < 6 {
		return false
	}
	return true
}

// IsLikelyStoreName rejects empty, very short, purely numeric, or
// unemployed-like text.
func IsLikelyStoreName(s string) bool {
	t := NormalizeForMatch(s)
	if t == "" || len(t) < 3 {
		return false
	}
	if IsUnemployedText(t) || IsUnemployedText(s) {
		return false
	}
	return !numericOnlyRE.MatchString(t)
}
