package roster

import (
	"sort"
	"strings"
)

// extractVerticalPair recovers residents from layouts where the current job
// is absent or not geometrically distinguishable: a name line followed by a
// store line directly beneath it in the left portion of the image. A vertical
// gap over 80px or a non-store-like line resets the pending name.
func extractVerticalPair(lines []Line, inferredWidth int, idx *StoreIndex, sourceFileName string, cfg Config) []Candidate {
	leftThreshold := float64(inferredWidth) * 0.6

	leftLines := make([]Line, 0, len(lines))
	for _, l := range lines {
		if LooksLikeHeaderOrNoise(l.Text) {
			continue
		}
		if float64(l.BBox.X0) < leftThreshold {
			leftLines = append(leftLines, l)
		}
	}
	sort.SliceStable(leftLines, func(a, b int) bool { return leftLines[a].BBox.Y0 < leftLines[b].BBox.Y0 })

	var out []Candidate
	var pendingName string
	pendingY := 0
	havePending := false

	for _, line := range leftLines {
		raw := strings.TrimSpace(line.Text)
		if raw == "" {
			continue
		}

		if !havePending {
			extracted := ExtractResidentNameFromLine(raw, idx.stores)
			if extracted != "" && IsLikelyName(extracted) {
				// Guard against a store name rendered on the left.
				if m := idx.MatchStore(extracted, cfg); m.StoreID != "" && m.Confidence >= 0.92 {
					continue
				}
				pendingName = extracted
				pendingY = line.BBox.Y0
				havePending = true
			}
			continue
		}

		verticalGap := line.BBox.Y0 - pendingY
		if verticalGap < 0 {
			havePending = false
			continue
		}
		if verticalGap > 80 {
			extracted := ExtractResidentNameFromLine(raw, idx.stores)
			if extracted != "" && IsLikelyName(extracted) {
				pendingName = extracted
				pendingY = line.BBox.Y0
			} else {
				havePending = false
			}
			continue
		}

		if !IsLikelyStoreName(raw) {
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
		havePending = false
	}
	return out
}
