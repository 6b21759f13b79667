package roster

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func threeColumnPage(name string) Page {
	return Page{
		FileName: name,
		Lines: []Line{
			line("Alice Wonderland", 60, 100, 350, 120),
			line("Soda Brewery", 480, 102, 680, 122),
			line("Cake Studio", 820, 101, 980, 121),
		},
	}
}

func TestExtractFromPagesThreeColumnRow(t *testing.T) {
	out := ExtractFromPages([]Page{threeColumnPage("roster.png")}, testStores(), DefaultConfig())
	if len(out) != 1 {
		t.Fatalf("expected 1 candidate got %d: %+v", len(out), out)
	}
	c := out[0]
	if c.Name != "Alice Wonderland" {
		t.Fatalf("expected name Alice Wonderland got %q", c.Name)
	}
	if c.CurrentJobStoreID != "soda-brewery" {
		t.Fatalf("expected current store soda-brewery got %q", c.CurrentJobStoreID)
	}
	if c.DreamJobStoreID != "cake-studio" {
		t.Fatalf("expected dream store cake-studio got %q", c.DreamJobStoreID)
	}
	if !c.Selected {
		t.Fatalf("expected confident candidate selected: %+v", c)
	}
	if len(c.Issues) != 0 {
		t.Fatalf("expected no issues got %v", c.Issues)
	}
	if c.SourceFileName != "roster.png" {
		t.Fatalf("expected source file recorded got %q", c.SourceFileName)
	}
}

func TestExtractFromPagesDoubledStoreName(t *testing.T) {
	// "Working at your dream job" rows render the same store twice and OCR
	// merges both mentions into one fragment.
	page := Page{
		FileName: "roster.png",
		Lines: []Line{
			line("Bob Marley", 60, 100, 300, 120),
			line("CAKE STUDIO CAKE STUDIO", 480, 102, 980, 122),
		},
	}
	out := ExtractFromPages([]Page{page}, testStores(), DefaultConfig())
	if len(out) != 1 {
		t.Fatalf("expected 1 candidate got %d: %+v", len(out), out)
	}
	c := out[0]
	if c.DreamJobStoreID != "cake-studio" {
		t.Fatalf("expected dream store cake-studio got %q", c.DreamJobStoreID)
	}
	if c.CurrentJobStoreID != "cake-studio" {
		t.Fatalf("expected current store cake-studio got %q", c.CurrentJobStoreID)
	}
}

func TestExtractFromPagesUnemployed(t *testing.T) {
	page := Page{
		FileName: "roster.png",
		Lines: []Line{
			line("Carol King", 60, 100, 280, 120),
			line("UNEMPLOYED", 480, 102, 660, 122),
			line("Flower Shop", 820, 101, 980, 121),
		},
	}
	out := ExtractFromPages([]Page{page}, testStores(), DefaultConfig())
	if len(out) != 1 {
		t.Fatalf("expected 1 candidate got %d: %+v", len(out), out)
	}
	c := out[0]
	if c.DreamJobStoreID != "flower-shop" {
		t.Fatalf("expected dream store flower-shop got %q", c.DreamJobStoreID)
	}
	if c.CurrentJobStoreID != "" {
		t.Fatalf("unemployed resident must not carry a current store got %q", c.CurrentJobStoreID)
	}
	if len(c.Issues) != 0 {
		t.Fatalf("unemployed is an expected state, not an issue: %v", c.Issues)
	}
}

func TestExtractFromPagesVerticalPair(t *testing.T) {
	// Name stacked directly above the dream store with no current-job column.
	page := Page{
		FileName: "roster.png",
		Lines: []Line{
			line("Dana Scully", 60, 100, 300, 120),
			line("Wedding Chapel", 62, 150, 320, 170),
		},
	}
	out := ExtractFromPages([]Page{page}, testStores(), DefaultConfig())
	if len(out) != 1 {
		t.Fatalf("expected 1 candidate got %d: %+v", len(out), out)
	}
	c := out[0]
	if c.Name != "Dana Scully" {
		t.Fatalf("expected name Dana Scully got %q", c.Name)
	}
	if c.DreamJobStoreID != "wedding-chapel" {
		t.Fatalf("expected dream store wedding-chapel got %q", c.DreamJobStoreID)
	}
	if !c.Selected {
		t.Fatalf("expected exact pair match selected: %+v", c)
	}
	if len(c.Issues) != 0 {
		t.Fatalf("expected no issues got %v", c.Issues)
	}
}

func TestExtractFromPagesDeduplicatesAcrossPages(t *testing.T) {
	pages := []Page{threeColumnPage("a.png"), threeColumnPage("b.png")}
	out := ExtractFromPages(pages, testStores(), DefaultConfig())
	if len(out) != 1 {
		t.Fatalf("expected identical rows on two screenshots collapsed to 1 got %d", len(out))
	}
}

func TestExtractFromPagesNoiseOnly(t *testing.T) {
	page := Page{
		FileName: "roster.png",
		Lines: []Line{
			line("Dream Jobs", 60, 40, 250, 60),
			line("12345", 60, 100, 150, 120),
		},
	}
	out := ExtractFromPages([]Page{page}, testStores(), DefaultConfig())
	if len(out) != 0 {
		t.Fatalf("expected no candidates from header and numeric noise got %d: %+v", len(out), out)
	}
}

func TestExtractFromPagesPlainTextFallback(t *testing.T) {
	page := Page{
		FileName: "roster.png",
		Text:     "Dream Jobs\nAlice Wonderland\nCake Studio\nBob Marley Soda Brewery Cake Studio\n12345\n",
	}
	out := ExtractFromPages([]Page{page}, testStores(), DefaultConfig())
	if len(out) != 2 {
		t.Fatalf("expected 2 candidates got %d: %+v", len(out), out)
	}

	byName := map[string]Candidate{}
	for _, c := range out {
		byName[c.Name] = c
	}

	alice, ok := byName["Alice Wonderland"]
	if !ok {
		t.Fatalf("Alice Wonderland missing from %+v", out)
	}
	if alice.DreamJobStoreID != "cake-studio" {
		t.Fatalf("expected Alice dream store cake-studio got %q", alice.DreamJobStoreID)
	}

	bob, ok := byName["Bob Marley"]
	if !ok {
		t.Fatalf("Bob Marley missing from %+v", out)
	}
	if bob.CurrentJobStoreID != "soda-brewery" || bob.DreamJobStoreID != "cake-studio" {
		t.Fatalf("merged row should split current/dream in reading order got current=%q dream=%q", bob.CurrentJobStoreID, bob.DreamJobStoreID)
	}
}

// fakeEngine serves canned pages keyed by file path.
type fakeEngine struct {
	pages map[string]Page
	err   error
}

func (f fakeEngine) Recognize(_ context.Context, path string) (Page, error) {
	if f.err != nil {
		return Page{}, f.err
	}
	return f.pages[path], nil
}

type fakeFallbackEngine struct {
	fakeEngine
	fallback []Page
	calls    int
}

func (f *fakeFallbackEngine) RecognizeFallback(context.Context, string) ([]Page, error) {
	f.calls++
	return f.fallback, nil
}

func TestExtractFromScreenshots(t *testing.T) {
	engine := fakeEngine{pages: map[string]Page{
		"/tmp/a.png": threeColumnPage(""),
	}}

	var phases []string
	onProgress := func(p Progress) { phases = append(phases, p.Phase) }

	out, err := ExtractFromScreenshots(context.Background(), []string{"/tmp/a.png"}, testStores(), engine, DefaultConfig(), onProgress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 candidate got %d", len(out))
	}
	if out[0].SourceFileName != "a.png" {
		t.Fatalf("expected source file name filled from path got %q", out[0].SourceFileName)
	}
	if len(phases) == 0 || phases[0] != PhaseLoading {
		t.Fatalf("expected loading phase reported first got %v", phases)
	}
	sawRecognizing := false
	for _, p := range phases {
		if p == PhaseRecognizing {
			sawRecognizing = true
		}
	}
	if !sawRecognizing {
		t.Fatalf("expected recognizing phase reported got %v", phases)
	}
}

func TestExtractFromScreenshotsEmptyInput(t *testing.T) {
	out, err := ExtractFromScreenshots(context.Background(), nil, testStores(), fakeEngine{}, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil candidates for empty input got %v", out)
	}
}

func TestExtractFromScreenshotsEngineError(t *testing.T) {
	engine := fakeEngine{err: errors.New("tesseract exploded")}
	_, err := ExtractFromScreenshots(context.Background(), []string{"/tmp/broken.png"}, testStores(), engine, DefaultConfig(), nil)
	if err == nil {
		t.Fatalf("expected engine error propagated")
	}
	if !strings.Contains(err.Error(), "broken.png") {
		t.Fatalf("expected error to name the failing file got %v", err)
	}
}

func TestExtractFromScreenshotsContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ExtractFromScreenshots(ctx, []string{"/tmp/a.png"}, testStores(), fakeEngine{}, DefaultConfig(), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled got %v", err)
	}
}

func TestExtractFromScreenshotsFallbackPasses(t *testing.T) {
	// The primary pass yields nothing, so the pipeline must ask the engine
	// for its fallback passes and use those pages instead.
	engine := &fakeFallbackEngine{
		fakeEngine: fakeEngine{pages: map[string]Page{"/tmp/a.png": {}}},
		fallback:   []Page{threeColumnPage("")},
	}
	out, err := ExtractFromScreenshots(context.Background(), []string{"/tmp/a.png"}, testStores(), engine, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if engine.calls != 1 {
		t.Fatalf("expected 1 fallback invocation got %d", engine.calls)
	}
	if len(out) != 1 {
		t.Fatalf("expected fallback pages to produce 1 candidate got %d", len(out))
	}
	if out[0].Name != "Alice Wonderland" {
		t.Fatalf("expected candidate from fallback page got %+v", out[0])
	}
}
