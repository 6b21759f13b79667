package roster

import (
	"regexp"
	"strings"
)

var (
	unemployedWordRE = regexp.MustCompile(`(?i)\bunemployed\b`)
	letterDigitsRE   = regexp.MustCompile(`\b[a-zA-Z]\d{2,}\b`)
	firstDigitRE     = regexp.MustCompile(`\d`)
)

// ExtractResidentNameFromLine recovers a resident name from a row where OCR
// collapsed name and job into one string. It truncates at the earliest of:
// the word "unemployed", the start of any known store name, the first digit,
// or a letter+digits token (a trailing resident id). Returns "" when the
// remainder is unemployed-like.
func ExtractResidentNameFromLine(raw string, stores []Store) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	collapsed := spacesRE.ReplaceAllString(trimmed, " ")

	cut := -1
	takeEarlier := func(idx int) {
		if idx > 0 && (cut == -1 || idx < cut) {
			cut = idx
		}
	}

	if loc := unemployedWordRE.FindStringIndex(trimmed); loc != nil {
		takeEarlier(loc[0])
	}

	for _, store := range stores {
		words := strings.Fields(store.Name)
		if len(words) == 0 {
			continue
		}
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		re, err := regexp.Compile(`(?i)\b` + strings.Join(words, `\s+`) + `\b`)
		if err == nil {
			if loc := re.FindStringIndex(trimmed); loc != nil {
				takeEarlier(loc[0])
			}
		}

		// Plain substring fallbacks for OCR oddities where word boundaries
		// or spacing break the regex.
		takeEarlier(indexIgnoreCase(trimmed, store.Name))
		storeCollapsed := spacesRE.ReplaceAllString(strings.TrimSpace(store.Name), " ")
		takeEarlier(indexIgnoreCase(collapsed, storeCollapsed))
	}

	if loc := firstDigitRE.FindStringIndex(trimmed); loc != nil {
		takeEarlier(loc[0])
	}
	if loc := letterDigitsRE.FindStringIndex(trimmed); loc != nil {
		takeEarlier(loc[0])
	}

	candidate := trimmed
	if cut > 0 {
		candidate = strings.TrimSpace(trimmed[:cut])
	}
	name := SanitizeResidentName(candidate)
	if IsUnemployedText(name) {
		return ""
	}
	return name
}

func indexIgnoreCase(haystack, needle string) int {
	if needle == "" {
		return -1
	}
	return strings.Index(strings.ToLower(haystack), strings.ToLower(needle))
}
