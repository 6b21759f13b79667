package roster

import (
	"context"
	"fmt"
	"path/filepath"
)

// Engine turns a screenshot file into an OCR page. Implementations live
// outside this package; the pipeline only depends on this shape.
type Engine interface {
	Recognize(ctx context.Context, path string) (Page, error)
}

// FallbackRecognizer is implemented by engines that can re-run recognition
// with alternative settings. The pipeline asks for fallback passes when the
// primary pass yields too few candidates.
type FallbackRecognizer interface {
	RecognizeFallback(ctx context.Context, path string) ([]Page, error)
}

// Progress phases reported while processing screenshots.
const (
	PhaseLoading     = "loading"
	PhaseRecognizing = "recognizing"
)

// Progress is a snapshot of pipeline progress for UI reporting.
type Progress struct {
	Phase     string
	FileName  string
	FileIndex int
	FileCount int
	Fraction  float64
}

// ProgressFunc receives progress snapshots. May be nil.
type ProgressFunc func(Progress)

// A primary pass that found fewer candidates than this triggers the
// fallback recognition passes.
const lowCandidateCount = 10

func extractPage(page Page, idx *StoreIndex, cfg Config) []Candidate {
	width := 1
	for _, l := range page.Lines {
		if l.BBox.X1 > width {
			width = l.BBox.X1
		}
	}

	three := extractThreeColumn(page.Lines, width, idx, page.FileName, cfg)
	pairs := extractVerticalPair(page.Lines, width, idx, page.FileName, cfg)

	if len(three) == 0 && len(pairs) == 0 {
		if page.Text == "" {
			return nil
		}
		return extractPlainText(page.Text, idx, page.FileName, cfg)
	}
	return append(three, pairs...)
}

// ExtractFromPages runs the extractor chain over already-recognized pages and
// deduplicates the combined result. A resident appearing identically on two
// screenshots of the same roster collapses to one record.
func ExtractFromPages(pages []Page, stores []Store, cfg Config) []Candidate {
	idx := NewStoreIndex(stores)
	var all []Candidate
	for _, page := range pages {
		all = append(all, extractPage(page, idx, cfg)...)
	}
	return Dedupe(all)
}

// ExtractFromScreenshots recognizes each file with the engine and extracts
// resident candidates. Files are processed one at a time so progress is
// deterministic and a failing file does not race the next one's results;
// an engine error aborts the batch and propagates with the file name.
func ExtractFromScreenshots(ctx context.Context, files []string, stores []Store, engine Engine, cfg Config, onProgress ProgressFunc) ([]Candidate, error) {
	if len(files) == 0 {
		return nil, nil
	}
	report := func(p Progress) {
		if onProgress != nil {
			onProgress(p)
		}
	}
	report(Progress{Phase: PhaseLoading, FileCount: len(files)})

	idx := NewStoreIndex(stores)
	var all []Candidate

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := filepath.Base(file)
		report(Progress{Phase: PhaseRecognizing, FileName: name, FileIndex: i, FileCount: len(files)})

		page, err := engine.Recognize(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("recognize %s: %w", name, err)
		}
		if page.FileName == "" {
			page.FileName = name
		}
		candidates := extractPage(page, idx, cfg)

		// Dense roster screenshots carry well over ten residents; a thin
		// result usually means the preprocessing profile misfired.
		if len(candidates) < lowCandidateCount {
			if fb, ok := engine.(FallbackRecognizer); ok {
				pages, err := fb.RecognizeFallback(ctx, file)
				if err != nil {
					return nil, fmt.Errorf("recognize %s (fallback): %w", name, err)
				}
				for _, p := range pages {
					if p.FileName == "" {
						p.FileName = name
					}
					candidates = append(candidates, extractPage(p, idx, cfg)...)
				}
			}
		}

		report(Progress{Phase: PhaseRecognizing, FileName: name, FileIndex: i, FileCount: len(files), Fraction: 1})
		all = append(all, Dedupe(candidates)...)
	}

	return Dedupe(all), nil
}
