package roster

import "strings"

// NamePick is a resident name recovered from a set of texts, with the raw
// fragment it came from.
type NamePick struct {
	Raw  string
	Name string
}

// PickBestName derives a resident name from each text, drops texts that are
// store names or unemployed markers, and prefers the longest surviving name
// (longer names are assumed more completely OCR'd).
func (idx *StoreIndex) PickBestName(texts []string, cfg Config) (NamePick, bool) {
	var best NamePick
	found := false
	for _, raw := range texts {
		trimmed := strings.TrimSpace(raw)
		name := ExtractResidentNameFromLine(trimmed, idx.stores)
		if name == "" {
			name = SanitizeResidentName(trimmed)
		}
		if !IsLikelyName(name) {
			continue
		}
		if IsUnemployedText(trimmed) || IsUnemployedText(name) {
			continue
		}
		// A column text that itself matches a store confidently is a job
		// field, not a name.
		if m := idx.MatchStore(name, cfg); m.StoreID != "" && m.Confidence >= 0.85 {
			continue
		}
		if !found || len(name) > len(best.Name) {
			best = NamePick{Raw: trimmed, Name: name}
			found = true
		}
	}
	return best, found
}
