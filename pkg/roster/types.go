package roster

// BBox is a pixel-space bounding box as reported by the OCR engine.
type BBox struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// Line is one fragment of recognized text. Lines carry no ordering
// guarantee; X0/Y0 are the authoritative position signals.
type Line struct {
	Text string `json:"text"`
	BBox BBox   `json:"bbox"`
}

// Page holds all OCR fragments from one screenshot plus the engine's full
// document text, used by the plain-text fallback when the line boxes are
// unusable.
type Page struct {
	FileName string `json:"fileName"`
	Lines    []Line `json:"lines"`
	Text     string `json:"text,omitempty"`
}

// Store is a catalog entry. The catalog is read-only; matching is performed
// against Name only.
type Store struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Products []string `json:"products"`
}

// Row is a vertical cluster of lines believed to belong to one resident's
// table entry. Rebuilt per page, never persisted.
type Row struct {
	Y0    int
	Lines []Line
}

// Candidate is one extracted, possibly imperfect resident record proposed
// for import. Empty strings and zero confidences encode absent fields.
type Candidate struct {
	NameRaw                 string   `json:"nameRaw"`
	Name                    string   `json:"name"`
	CurrentJobRaw           string   `json:"currentJobRaw,omitempty"`
	CurrentJobStoreID       string   `json:"currentJobStoreId,omitempty"`
	MatchedCurrentStoreName string   `json:"matchedCurrentStoreName,omitempty"`
	CurrentMatchConfidence  float64  `json:"currentMatchConfidence,omitempty"`
	DreamJobRaw             string   `json:"dreamJobRaw"`
	DreamJobStoreID         string   `json:"dreamJobStoreId,omitempty"`
	MatchedStoreName        string   `json:"matchedStoreName,omitempty"`
	MatchConfidence         float64  `json:"matchConfidence"`
	Selected                bool     `json:"selected"`
	Issues                  []string `json:"issues"`
	SourceFileName          string   `json:"sourceFileName"`
}

// Config carries the tunable confidence thresholds. AcceptConfidence gates
// fuzzy store matches; AutoSelectConfidence gates the Selected flag and is
// deliberately stricter so low-confidence matches default to manual review.
type Config struct {
	AcceptConfidence     float64
	AutoSelectConfidence float64
}

// DefaultConfig returns the thresholds the reference behavior uses.
func DefaultConfig() Config {
	return Config{
		AcceptConfidence:     0.75,
		AutoSelectConfidence: 0.85,
	}
}

// issue strings reused across extractors so dedupe can union them reliably.
const (
	issueDreamUnparsed   = "Dream job could not be parsed"
	issueDreamUnmatched  = "Could not confidently match dream job to a known store"
	issueCurrentUnmatch  = "Could not confidently match current job to a known store"
	issueNameUnparsed    = "Name could not be parsed"
	unemployedJobLiteral = "UNEMPLOYED"
)
