package roster

import "strings"

// StoreIndex is the per-call lookup structure over the store catalog. The
// catalog is small (hundreds of entries), so rebuilding it per pipeline
// invocation keeps the pipeline a pure function of its inputs.
type StoreIndex struct {
	stores       []Store
	byNormalized map[string]*Store
	byNoSpace    map[string]*Store
}

// NewStoreIndex builds the exact-lookup maps over the catalog.
func NewStoreIndex(stores []Store) *StoreIndex {
	idx := &StoreIndex{
		stores:       stores,
		byNormalized: make(map[string]*Store, len(stores)),
		byNoSpace:    make(map[string]*Store, len(stores)),
	}
	for i := range stores {
		s := &stores[i]
		if k := NormalizeForMatch(s.Name); k != "" {
			if _, ok := idx.byNormalized[k]; !ok {
				idx.byNormalized[k] = s
			}
		}
		if k := NormalizeNoSpace(s.Name); k != "" {
			if _, ok := idx.byNoSpace[k]; !ok {
				idx.byNoSpace[k] = s
			}
		}
	}
	return idx
}

// Stores returns the underlying catalog slice.
func (idx *StoreIndex) Stores() []Store { return idx.stores }

// StoreMatch is the result of matching a text fragment against the catalog.
// A zero StoreID with a non-zero Confidence means the best score fell below
// the acceptance threshold or was ambiguous.
type StoreMatch struct {
	StoreID    string  `json:"storeId,omitempty"`
	StoreName  string  `json:"storeName,omitempty"`
	Confidence float64 `json:"confidence"`
	Raw        string  `json:"raw,omitempty"`
}

// MatchStore matches an arbitrary text fragment against the catalog through
// the tiers: exact, normalized exact, no-space exact, duplicate-halves
// collapse, truncated-suffix, then Levenshtein fuzzy with an ambiguity guard
// and a relaxed floor for very short store names.
func (idx *StoreIndex) MatchStore(text string, cfg Config) StoreMatch {
	raw := strings.TrimSpace(text)
	if raw == "" || IsUnemployedText(raw) {
		return StoreMatch{}
	}

	for i := range idx.stores {
		if strings.EqualFold(idx.stores[i].Name, raw) {
			return StoreMatch{StoreID: idx.stores[i].ID, StoreName: idx.stores[i].Name, Confidence: 1}
		}
	}

	normalized := NormalizeForMatch(raw)
	if s, ok := idx.byNormalized[normalized]; ok {
		return StoreMatch{StoreID: s.ID, StoreName: s.Name, Confidence: 0.98}
	}

	noSpace := NormalizeNoSpace(raw)
	if s, ok := idx.byNoSpace[noSpace]; ok {
		return StoreMatch{StoreID: s.ID, StoreName: s.Name, Confidence: 0.98}
	}

	collapsed := CollapseImmediateDuplicateNoSpace(raw)
	if collapsed != "" {
		if s, ok := idx.byNoSpace[collapsed]; ok {
			return StoreMatch{StoreID: s.ID, StoreName: s.Name, Confidence: 0.98}
		}
	}

	// Truncated-suffix tier: OCR chops 1-3 leading characters off a store
	// name ("EDDING CHAPEL" for "WEDDING CHAPEL").
	if m := idx.matchSuffix(noSpace); m.StoreID != "" {
		return m
	}

	var best, second *scoredStore
	for i := range idx.stores {
		s := &idx.stores[i]
		score := similarityOf(normalized, NormalizeForMatch(s.Name))
		if ns := similarityOf(noSpace, NormalizeNoSpace(s.Name)); ns > score {
			score = ns
		}
		if collapsed != "" {
			if cs := similarityOf(collapsed, NormalizeNoSpace(s.Name)); cs > score {
				score = cs
			}
		}
		if best == nil || score > best.score {
			second = best
			best = &scoredStore{store: s, score: score}
			continue
		}
		if second == nil || score > second.score {
			second = &scoredStore{store: s, score: score}
		}
	}
	if best == nil {
		return StoreMatch{}
	}

	if best.score < cfg.AcceptConfidence {
		// Very short store names OCR poorly; accept a low score when the
		// runner-up is clearly worse.
		if len(normalized) == 0 || len(normalized) > 4 {
			return StoreMatch{Confidence: best.score}
		}
		if best.score >= 0.33 && (second == nil || best.score-second.score >= 0.12) {
			return StoreMatch{StoreID: best.store.ID, StoreName: best.store.Name, Confidence: best.score}
		}
		return StoreMatch{Confidence: best.score}
	}

	if second != nil && second.score >= cfg.AcceptConfidence && best.score-second.score < 0.05 {
		// Two equally plausible stores: require manual resolution.
		return StoreMatch{Confidence: best.score}
	}

	return StoreMatch{StoreID: best.store.ID, StoreName: best.store.Name, Confidence: best.score}
}

type scoredStore struct {
	store *Store
	score float64
}

func (idx *StoreIndex) matchSuffix(noSpace string) StoreMatch {
	if noSpace == "" {
		return StoreMatch{}
	}
	for i := range idx.stores {
		storeNoSpace := NormalizeNoSpace(idx.stores[i].Name)
		if len(storeNoSpace) <= len(noSpace) {
			continue
		}
		truncated := len(storeNoSpace) - len(noSpace)
		if truncated <= 3 && strings.HasSuffix(storeNoSpace, noSpace) {
			conf := 0.9 - float64(truncated)*0.03
			return StoreMatch{StoreID: idx.stores[i].ID, StoreName: idx.stores[i].Name, Confidence: conf}
		}
	}
	return StoreMatch{}
}

// PickBestStoreMatch runs MatchStore over several raw texts and keeps the
// highest-confidence result, skipping texts that cannot be store names.
func (idx *StoreIndex) PickBestStoreMatch(rawTexts []string, cfg Config) StoreMatch {
	var best StoreMatch
	for _, raw := range rawTexts {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || !IsLikelyStoreName(trimmed) {
			continue
		}
		m := idx.MatchStore(trimmed, cfg)
		if m.Confidence > best.Confidence {
			m.Raw = trimmed
			best = m
		}
	}
	return best
}
