package roster

import (
	"sort"
	"strings"
)

// EmbeddedStore is a catalog store located inside a larger un-segmented text
// blob, with its position in the no-space normalized haystack.
type EmbeddedStore struct {
	Store      Store
	Index      int
	Confidence float64
	// Occurrences counts how many times this store appeared in the text. A
	// doubled mention ("CAKE STUDIO CAKE STUDIO") means the same store is
	// both the current and the dream job.
	Occurrences int
}

// FindEmbeddedStores scans the no-space form of text for every occurrence of
// every store name of at least 4 normalized characters. One row can mention
// two stores (current and dream), so all occurrences are collected, then
// deduplicated by store id keeping the first occurrence, in textual order.
func (idx *StoreIndex) FindEmbeddedStores(text string) []EmbeddedStore {
	hay := NormalizeNoSpace(text)
	if hay == "" {
		return nil
	}

	var hits []EmbeddedStore
	for i := range idx.stores {
		needle := NormalizeNoSpace(idx.stores[i].Name)
		if len(needle) < 4 {
			continue
		}
		from := 0
		for from < len(hay) {
			at := strings.Index(hay[from:], needle)
			if at < 0 {
				break
			}
			hits = append(hits, EmbeddedStore{Store: idx.stores[i], Index: from + at, Confidence: 0.95})
			from += at + len(needle)
		}
	}
	if len(hits) == 0 {
		return nil
	}

	sort.SliceStable(hits, func(a, b int) bool { return hits[a].Index < hits[b].Index })

	// Trailing residue after the last hit may be a store with its head
	// chopped off ("...EDDING CHAPEL"). Try a suffix match on it.
	last := hits[len(hits)-1]
	after := hay[last.Index+len(NormalizeNoSpace(last.Store.Name)):]
	if len(after) >= 5 {
		for i := range idx.stores {
			storeNoSpace := NormalizeNoSpace(idx.stores[i].Name)
			if len(storeNoSpace) <= len(after) {
				continue
			}
			truncated := len(storeNoSpace) - len(after)
			if truncated <= 3 && strings.HasSuffix(storeNoSpace, after) {
				hits = append(hits, EmbeddedStore{
					Store:      idx.stores[i],
					Index:      last.Index + len(NormalizeNoSpace(last.Store.Name)),
					Confidence: 0.88 - float64(truncated)*0.03,
				})
				break
			}
		}
	}

	at := make(map[string]int, len(hits))
	var out []EmbeddedStore
	for _, h := range hits {
		if i, ok := at[h.Store.ID]; ok {
			out[i].Occurrences++
			continue
		}
		h.Occurrences = 1
		at[h.Store.ID] = len(out)
		out = append(out, h)
	}
	return out
}
