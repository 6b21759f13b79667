package roster

import "strings"

// extractPlainText re-derives candidates from line-sequential text when the
// engine returned one undifferentiated blob with no usable bounding boxes.
// It mirrors the vertical-pair pairing, minus geometry: a name line is held
// pending until a store-like line follows it, and a name line that itself
// contains embedded stores is a merged row.
func extractPlainText(text string, idx *StoreIndex, sourceFileName string, cfg Config) []Candidate {
	var out []Candidate
	pendingName := ""

	for _, rawLine := range strings.Split(text, "\n") {
		raw := strings.TrimSpace(strings.TrimSuffix(rawLine, "\r"))
		if raw == "" || LooksLikeHeaderOrNoise(raw) {
			continue
		}

		pick, picked := idx.PickBestName([]string{raw}, cfg)
		if picked && IsLikelyName(pick.Name) {
			embedded := idx.FindEmbeddedStores(raw)
			if len(embedded) > 0 {
				dream := embedded[len(embedded)-1]
				var current *EmbeddedStore
				if len(embedded) > 1 || embedded[0].Occurrences >= 2 {
					current = &embedded[0]
				}
				hasUnemployed := unemployedWordRE.MatchString(raw)

				cand := Candidate{
					NameRaw:          raw,
					Name:             pick.Name,
					DreamJobRaw:      dream.Store.Name,
					DreamJobStoreID:  dream.Store.ID,
					MatchedStoreName: dream.Store.Name,
					MatchConfidence:  0.9,
					Selected:         pick.Name != "" && 0.9 >= cfg.AutoSelectConfidence,
					Issues:           nil,
					SourceFileName:   sourceFileName,
				}
				if hasUnemployed {
					cand.CurrentJobRaw = unemployedJobLiteral
				} else if current != nil {
					cand.CurrentJobRaw = current.Store.Name
					cand.CurrentJobStoreID = current.Store.ID
					cand.MatchedCurrentStoreName = current.Store.Name
					cand.CurrentMatchConfidence = 0.9
				}
				out = append(out, cand)
				pendingName = ""
				continue
			}

			pendingName = pick.Name
			continue
		}

		if pendingName == "" || !IsLikelyStoreName(raw) {
			continue
		}

		name := SanitizeResidentName(pendingName)
		match := idx.MatchStore(raw, cfg)

		var issues []string
		if name == "" {
			issues = append(issues, issueNameUnparsed)
		}
		if match.StoreID == "" {
			issues = append(issues, issueDreamUnmatched)
		}

		out = append(out, Candidate{
			NameRaw:          pendingName,
			Name:             name,
			DreamJobRaw:      raw,
			DreamJobStoreID:  match.StoreID,
			MatchedStoreName: match.StoreName,
			MatchConfidence:  match.Confidence,
			Selected:         name != "" && match.StoreID != "" && match.Confidence >= cfg.AutoSelectConfidence,
			Issues:           issues,
			SourceFileName:   sourceFileName,
		})
		pendingName = ""
	}
	return out
}
