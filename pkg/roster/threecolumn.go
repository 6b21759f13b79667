package roster

import "strings"

// extractThreeColumn is the primary extractor: it rebuilds the roster table
// from row/column geometry. Names are not assumed to sit in the leftmost
// column; the name column is whichever column yields the best name, current
// job candidates come from the name column (and the middle column in
// three-column layouts), and the rightmost remaining column holds the dream
// job.
func extractThreeColumn(lines []Line, inferredWidth int, idx *StoreIndex, sourceFileName string, cfg Config) []Candidate {
	relevant := make([]Line, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l.Text) == "" || LooksLikeHeaderOrNoise(l.Text) {
			continue
		}
		relevant = append(relevant, l)
	}
	rows := GroupLinesIntoRows(relevant)

	var out []Candidate
	for _, row := range rows {
		cols := SplitRowIntoColumns(row.Lines, inferredWidth)
		if len(cols) < 2 {
			continue
		}

		colTexts := make([][]string, len(cols))
		for i, col := range cols {
			for _, l := range col {
				colTexts[i] = append(colTexts[i], l.Text)
			}
		}

		nameColIndex := 0
		namePick, ok := idx.PickBestName(colTexts[0], cfg)
		for i := 1; i < len(colTexts); i++ {
			pick, found := idx.PickBestName(colTexts[i], cfg)
			if found && (!ok || len(pick.Name) > len(namePick.Name)) {
				namePick = pick
				nameColIndex = i
				ok = true
			}
		}
		if !ok {
			continue
		}

		var nonNameInNameCol []string
		for _, t := range colTexts[nameColIndex] {
			if NormalizeForMatch(t) != NormalizeForMatch(namePick.Raw) {
				nonNameInNameCol = append(nonNameInNameCol, t)
			}
		}

		dreamColIndex := -1
		for i := len(cols) - 1; i >= 0; i-- {
			if i != nameColIndex {
				dreamColIndex = i
				break
			}
		}
		var dreamColTexts []string
		if dreamColIndex >= 0 {
			dreamColTexts = colTexts[dreamColIndex]
		}

		var nonNameTrimmed []string
		for _, t := range nonNameInNameCol {
			if tt := strings.TrimSpace(t); tt != "" {
				nonNameTrimmed = append(nonNameTrimmed, tt)
			}
		}
		hasUnemployed := false
		for _, t := range nonNameTrimmed {
			if IsUnemployedText(t) {
				hasUnemployed = true
				break
			}
		}
		currentJobRaw := ""
		if hasUnemployed {
			currentJobRaw = unemployedJobLiteral
		} else {
			for _, t := range nonNameTrimmed {
				if len(t) > len(currentJobRaw) {
					currentJobRaw = t
				}
			}
		}

		currentFromNameCol := idx.PickBestStoreMatch(nonNameInNameCol, cfg)
		dreamFromDreamCol := idx.PickBestStoreMatch(dreamColTexts, cfg)

		var currentFromMiddle, dreamFromRight StoreMatch
		if len(colTexts) == 3 {
			currentFromMiddle = idx.PickBestStoreMatch(colTexts[1], cfg)
			dreamFromRight = idx.PickBestStoreMatch(colTexts[2], cfg)
		}

		currentMatch := currentFromNameCol
		if currentFromNameCol.Confidence < cfg.AcceptConfidence {
			if currentFromMiddle.Confidence >= cfg.AcceptConfidence {
				currentMatch = currentFromMiddle
			}
		}

		dream := dreamFromDreamCol
		if dream.Confidence <= 0 {
			dream = dreamFromRight
		}

		rowTexts := make([]string, 0, len(row.Lines))
		for _, l := range row.Lines {
			rowTexts = append(rowTexts, l.Text)
		}
		rowText := strings.Join(rowTexts, " ")
		embedded := idx.FindEmbeddedStores(rowText)

		// When OCR merges both job fields into one run, left-to-right
		// order still reflects the UI's current -> dream ordering.
		if len(embedded) > 0 && (dream.StoreID == "" || dream.Confidence < cfg.AcceptConfidence) {
			last := embedded[len(embedded)-1]
			dream = StoreMatch{
				Raw:        last.Store.Name,
				StoreID:    last.Store.ID,
				StoreName:  last.Store.Name,
				Confidence: 0.9,
			}
		}
		if (len(embedded) >= 2 || (len(embedded) == 1 && embedded[0].Occurrences >= 2)) && !hasUnemployed &&
			(currentMatch.StoreID == "" || currentMatch.Confidence < cfg.AcceptConfidence) {
			first := embedded[0]
			currentMatch = StoreMatch{
				Raw:        first.Store.Name,
				StoreID:    first.Store.ID,
				StoreName:  first.Store.Name,
				Confidence: 0.9,
			}
		}

		var issues []string
		if dream.Raw == "" && dream.StoreID == "" {
			issues = append(issues, issueDreamUnparsed)
		} else if dream.StoreID == "" {
			issues = append(issues, issueDreamUnmatched)
		}
		currentRawForIssue := currentJobRaw
		if currentRawForIssue == "" {
			currentRawForIssue = currentMatch.Raw
		}
		if currentRawForIssue != "" && currentMatch.StoreID == "" && !IsUnemployedText(currentRawForIssue) {
			issues = append(issues, issueCurrentUnmatch)
		}

		cand := Candidate{
			NameRaw:                 namePick.Raw,
			Name:                    namePick.Name,
			CurrentJobRaw:           currentJobRaw,
			CurrentJobStoreID:       currentMatch.StoreID,
			MatchedCurrentStoreName: currentMatch.StoreName,
			CurrentMatchConfidence:  currentMatch.Confidence,
			DreamJobRaw:             dream.Raw,
			DreamJobStoreID:         dream.StoreID,
			MatchedStoreName:        dream.StoreName,
			MatchConfidence:         dream.Confidence,
			Selected:                namePick.Name != "" && dream.StoreID != "" && dream.Confidence >= cfg.AutoSelectConfidence,
			Issues:                  issues,
			SourceFileName:          sourceFileName,
		}
		if cand.CurrentJobRaw == "" {
			cand.CurrentJobRaw = currentMatch.Raw
		}
		// UNEMPLOYED is an expected state, not a store match.
		if hasUnemployed {
			cand.CurrentJobStoreID = ""
			cand.MatchedCurrentStoreName = ""
			cand.CurrentMatchConfidence = 0
		}
		out = append(out, cand)
	}
	return out
}
