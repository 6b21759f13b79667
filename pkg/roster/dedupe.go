package roster

// Dedupe merges candidates that represent the same resident. Residents are
// grouped by exact normalized name (no fuzzy name merging, so two residents
// with similar names never collapse); within a group, partial observations
// merge when their job fields are compatible, including the recurring
// failure mode where current and dream were assigned to the wrong field.
func Dedupe(candidates []Candidate) []Candidate {
	type group struct {
		key     string
		records []Candidate
	}
	var order []string
	groups := make(map[string]*group)

	for _, c := range candidates {
		key := NormalizeForMatch(c.Name)
		g, ok := groups[key]
		if !ok {
			g = &group{key: key}
			groups[key] = g
			order = append(order, key)
		}

		merged := false
		for i := range g.records {
			if shouldMerge(g.records[i], c) {
				g.records[i] = mergeCandidates(g.records[i], c)
				merged = true
				break
			}
		}
		if !merged {
			g.records = append(g.records, c)
		}
	}

	var out []Candidate
	for _, key := range order {
		out = append(out, groups[key].records...)
	}
	return out
}

func dreamKeyFor(c Candidate) string {
	if c.DreamJobStoreID != "" {
		return c.DreamJobStoreID
	}
	if c.MatchedStoreName != "" {
		return NormalizeForMatch(c.MatchedStoreName)
	}
	return NormalizeForMatch(c.DreamJobRaw)
}

func currentKeyFor(c Candidate) string {
	if c.CurrentJobStoreID != "" {
		return c.CurrentJobStoreID
	}
	if c.CurrentJobRaw != "" && !IsUnemployedText(c.CurrentJobRaw) {
		return NormalizeForMatch(c.CurrentJobRaw)
	}
	return ""
}

func hasJobInfo(c Candidate) bool {
	return c.DreamJobStoreID != "" || c.DreamJobRaw != "" || c.CurrentJobStoreID != "" || c.CurrentJobRaw != ""
}

func hasDream(c Candidate) bool {
	return c.DreamJobStoreID != "" || c.DreamJobRaw != ""
}

func hasCurrent(c Candidate) bool {
	return c.CurrentJobStoreID != "" || c.CurrentJobRaw != ""
}

// shouldMerge decides whether two same-name candidates are observations of
// one resident. Conflicting complete records stay separate rather than being
// collapsed.
func shouldMerge(a, b Candidate) bool {
	// A record with no job fields at all is a degenerate partial read of
	// the same row.
	if !hasJobInfo(a) || !hasJobInfo(b) {
		return true
	}

	ad, bd := dreamKeyFor(a), dreamKeyFor(b)
	ac, bc := currentKeyFor(a), currentKeyFor(b)

	if ad != "" && ad == bd {
		return true
	}
	if ac != "" && ac == bc {
		return true
	}
	// Cross-swap: the extractor sometimes assigns current and dream to the
	// wrong field; such pairs still describe one resident.
	if ad != "" && ad == bc {
		return true
	}
	if ac != "" && ac == bd {
		return true
	}

	// Complementary partials: both saw a dream job but at least one missed
	// the current job.
	if hasDream(a) && hasDream(b) && (!hasCurrent(a) || !hasCurrent(b)) {
		return true
	}

	return false
}

// isBetterCandidate ranks two records: store-id dream match, then fewer
// issues, then higher dream confidence, then presence of current-job info.
func isBetterCandidate(a, b Candidate) bool {
	aHasID := a.DreamJobStoreID != ""
	bHasID := b.DreamJobStoreID != ""
	if aHasID != bHasID {
		return aHasID
	}
	if len(a.Issues) != len(b.Issues) {
		return len(a.Issues) < len(b.Issues)
	}
	if a.MatchConfidence != b.MatchConfidence {
		return a.MatchConfidence > b.MatchConfidence
	}
	aHasCurrent := hasCurrent(a)
	bHasCurrent := hasCurrent(b)
	if aHasCurrent != bHasCurrent {
		return aHasCurrent
	}
	return false
}

func mergeCandidates(keep, incoming Candidate) Candidate {
	base, other := keep, incoming
	if isBetterCandidate(incoming, keep) {
		base, other = incoming, keep
	}

	base.Selected = base.Selected || other.Selected

	if base.DreamJobStoreID == "" && other.DreamJobStoreID != "" {
		base.DreamJobStoreID = other.DreamJobStoreID
		base.MatchedStoreName = other.MatchedStoreName
		base.MatchConfidence = other.MatchConfidence
	}
	if base.DreamJobRaw == "" && other.DreamJobRaw != "" {
		base.DreamJobRaw = other.DreamJobRaw
	}
	if base.CurrentJobStoreID == "" && other.CurrentJobStoreID != "" {
		base.CurrentJobStoreID = other.CurrentJobStoreID
		base.MatchedCurrentStoreName = other.MatchedCurrentStoreName
		base.CurrentMatchConfidence = other.CurrentMatchConfidence
	}
	if base.CurrentJobRaw == "" && other.CurrentJobRaw != "" {
		base.CurrentJobRaw = other.CurrentJobRaw
	}

	// A real detected job must never be overridden by an "unemployed"
	// false read merging in later.
	if IsUnemployedText(base.CurrentJobRaw) && other.CurrentJobRaw != "" && !IsUnemployedText(other.CurrentJobRaw) {
		base.CurrentJobRaw = other.CurrentJobRaw
		base.CurrentJobStoreID = other.CurrentJobStoreID
		base.MatchedCurrentStoreName = other.MatchedCurrentStoreName
		base.CurrentMatchConfidence = other.CurrentMatchConfidence
	}

	// Repair the current/dream field swap at merge time: when the two
	// sides disagree on the dream store but the base's dream equals the
	// other's current (and not the other way around), the other side has
	// the fields the right way round.
	if base.DreamJobStoreID != "" && other.DreamJobStoreID != "" && base.DreamJobStoreID != other.DreamJobStoreID {
		if base.DreamJobStoreID == other.CurrentJobStoreID && other.DreamJobStoreID != base.CurrentJobStoreID {
			base.DreamJobRaw = other.DreamJobRaw
			base.DreamJobStoreID = other.DreamJobStoreID
			base.MatchedStoreName = other.MatchedStoreName
			base.MatchConfidence = other.MatchConfidence
		}
	}

	// A clean match should not regain noise from a noisier duplicate.
	if len(base.Issues) > 0 && len(other.Issues) > 0 {
		base.Issues = unionIssues(base.Issues, other.Issues)
	}

	return base
}

func unionIssues(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for _, s := range b {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
