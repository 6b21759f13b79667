package roster

import "testing"

func TestDedupeIdenticalRecords(t *testing.T) {
	c := Candidate{
		Name:            "Alice Wonderland",
		DreamJobRaw:     "Cake Studio",
		DreamJobStoreID: "cake-studio",
		MatchConfidence: 0.98,
		Selected:        true,
	}
	out := Dedupe([]Candidate{c, c})
	if len(out) != 1 {
		t.Fatalf("expected 1 record got %d", len(out))
	}
	if !out[0].Selected {
		t.Fatalf("expected selection preserved")
	}
}

func TestDedupeAbsorbsPartialRead(t *testing.T) {
	full := Candidate{
		Name:            "Alice Wonderland",
		DreamJobRaw:     "Cake Studio",
		DreamJobStoreID: "cake-studio",
		MatchConfidence: 0.98,
	}
	partial := Candidate{Name: "Alice Wonderland"}
	out := Dedupe([]Candidate{partial, full})
	if len(out) != 1 {
		t.Fatalf("expected partial read absorbed got %d records", len(out))
	}
	if out[0].DreamJobStoreID != "cake-studio" {
		t.Fatalf("expected dream store kept got %q", out[0].DreamJobStoreID)
	}
}

func TestDedupeSwapRepair(t *testing.T) {
	a := Candidate{
		Name:                    "Alice Wonderland",
		DreamJobRaw:             "Soda Brewery",
		DreamJobStoreID:         "soda-brewery",
		MatchConfidence:         0.9,
		CurrentJobRaw:           "Cake Studio",
		CurrentJobStoreID:       "cake-studio",
		MatchedCurrentStoreName: "Cake Studio",
		CurrentMatchConfidence:  0.9,
	}
	b := Candidate{
		Name:            "Alice Wonderland",
		DreamJobRaw:     "Cake Studio",
		DreamJobStoreID: "cake-studio",
		MatchConfidence: 0.95,
	}
	out := Dedupe([]Candidate{a, b})
	if len(out) != 1 {
		t.Fatalf("expected swap pair merged got %d records", len(out))
	}
	if out[0].DreamJobStoreID != "soda-brewery" {
		t.Fatalf("expected dream store soda-brewery got %q", out[0].DreamJobStoreID)
	}
	if out[0].CurrentJobStoreID != "cake-studio" {
		t.Fatalf("expected current store cake-studio got %q", out[0].CurrentJobStoreID)
	}
}

func TestDedupeUnemployedDoesNotOverride(t *testing.T) {
	unemployed := Candidate{
		Name:            "Bob Marley",
		CurrentJobRaw:   "UNEMPLOYED",
		DreamJobRaw:     "Cake Studio",
		DreamJobStoreID: "cake-studio",
		MatchConfidence: 0.9,
	}
	employed := Candidate{
		Name:                    "Bob Marley",
		CurrentJobRaw:           "Soda Brewery",
		CurrentJobStoreID:       "soda-brewery",
		MatchedCurrentStoreName: "Soda Brewery",
		CurrentMatchConfidence:  0.9,
		DreamJobRaw:             "Cake Studio",
		DreamJobStoreID:         "cake-studio",
		MatchConfidence:         0.9,
	}
	out := Dedupe([]Candidate{unemployed, employed})
	if len(out) != 1 {
		t.Fatalf("expected 1 record got %d", len(out))
	}
	if out[0].CurrentJobStoreID != "soda-brewery" {
		t.Fatalf("expected detected current job to win got %q (raw %q)", out[0].CurrentJobStoreID, out[0].CurrentJobRaw)
	}
}

func TestDedupeCleanRecordStaysClean(t *testing.T) {
	clean := Candidate{
		Name:            "Alice Wonderland",
		DreamJobRaw:     "Cake Studio",
		DreamJobStoreID: "cake-studio",
		MatchConfidence: 0.98,
	}
	noisy := Candidate{
		Name:            "Alice Wonderland",
		DreamJobRaw:     "Cake Studio",
		DreamJobStoreID: "cake-studio",
		MatchConfidence: 0.8,
		Issues:          []string{"Could not confidently match current job to a known store"},
	}
	out := Dedupe([]Candidate{clean, noisy})
	if len(out) != 1 {
		t.Fatalf("expected 1 record got %d", len(out))
	}
	if len(out[0].Issues) != 0 {
		t.Fatalf("expected no issues on merged record got %v", out[0].Issues)
	}
}

func TestDedupeConflictingRecordsStaySeparate(t *testing.T) {
	a := Candidate{
		Name:              "Alice Wonderland",
		DreamJobRaw:       "Cake Studio",
		DreamJobStoreID:   "cake-studio",
		CurrentJobRaw:     "Gym",
		CurrentJobStoreID: "gym",
	}
	b := Candidate{
		Name:              "Alice Wonderland",
		DreamJobRaw:       "Soda Brewery",
		DreamJobStoreID:   "soda-brewery",
		CurrentJobRaw:     "Flower Shop",
		CurrentJobStoreID: "flower-shop",
	}
	out := Dedupe([]Candidate{a, b})
	if len(out) != 2 {
		t.Fatalf("expected conflicting records kept separate got %d", len(out))
	}
}

func TestDedupeDifferentNamesNeverMerge(t *testing.T) {
	a := Candidate{Name: "Alice Wonderland", DreamJobStoreID: "cake-studio", DreamJobRaw: "Cake Studio"}
	b := Candidate{Name: "Alice Wanderland", DreamJobStoreID: "cake-studio", DreamJobRaw: "Cake Studio"}
	out := Dedupe([]Candidate{a, b})
	if len(out) != 2 {
		t.Fatalf("expected 2 records for distinct names got %d", len(out))
	}
}

func TestDedupeIdempotent(t *testing.T) {
	in := []Candidate{
		{Name: "Alice Wonderland", DreamJobStoreID: "cake-studio", DreamJobRaw: "Cake Studio"},
		{Name: "Alice Wonderland"},
		{Name: "Bob Marley", DreamJobStoreID: "soda-brewery", DreamJobRaw: "Soda Brewery"},
	}
	once := Dedupe(in)
	twice := Dedupe(once)
	if len(once) != len(twice) {
		t.Fatalf("dedupe not idempotent: %d vs %d", len(once), len(twice))
	}
}
