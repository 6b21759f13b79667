package ocr

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/otiai10/gosseract/v2"

	"townroster/pkg/roster"
)

// Tesseract recognizes screenshots with a local Tesseract install. It
// implements roster.Engine and roster.FallbackRecognizer: the primary pass
// uses the default preprocessing profile in single-block mode, the fallback
// passes retry with a softer profile and a sparse-text pass on the raw file.
type Tesseract struct {
	Language   string
	Preprocess PreprocessOptions
}

func NewTesseract() *Tesseract {
	return &Tesseract{Language: "eng", Preprocess: DefaultPreprocess}
}

func (t *Tesseract) language() string {
	if t.Language == "" {
		return "eng"
	}
	return t.Language
}

func (t *Tesseract) Recognize(ctx context.Context, path string) (roster.Page, error) {
	return t.recognize(ctx, path, &t.Preprocess, gosseract.PSM_SINGLE_BLOCK)
}

func (t *Tesseract) RecognizeFallback(ctx context.Context, path string) ([]roster.Page, error) {
	alt := AltPreprocess
	altPage, err := t.recognize(ctx, path, &alt, gosseract.PSM_SINGLE_BLOCK)
	if err != nil {
		return nil, err
	}
	sparsePage, err := t.recognize(ctx, path, nil, gosseract.PSM_SPARSE_TEXT)
	if err != nil {
		return nil, err
	}
	return []roster.Page{altPage, sparsePage}, nil
}

// recognize runs one Tesseract pass. A nil profile skips preprocessing; a
// failed preprocess falls back to the raw file rather than aborting the pass.
func (t *Tesseract) recognize(ctx context.Context, path string, profile *PreprocessOptions, psm gosseract.PageSegMode) (roster.Page, error) {
	if err := ctx.Err(); err != nil {
		return roster.Page{}, err
	}

	imagePath := path
	if profile != nil {
		tmp, cleanup, err := preprocessToTemp(path, *profile)
		if err != nil {
			log.Printf("OCR preprocess failed for %s, using raw image: %v", filepath.Base(path), err)
		} else {
			imagePath = tmp
			defer cleanup()
		}
	}

	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage(t.language())
	_ = client.SetPageSegMode(psm)
	if err := client.SetImage(imagePath); err != nil {
		return roster.Page{}, fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return roster.Page{}, fmt.Errorf("recognize text: %w", err)
	}
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return roster.Page{}, fmt.Errorf("bounding boxes: %w", err)
	}

	page := roster.Page{FileName: filepath.Base(path), Text: text}
	for _, b := range boxes {
		page.Lines = append(page.Lines, roster.Line{
			Text: b.Word,
			BBox: roster.BBox{X0: b.Box.Min.X, Y0: b.Box.Min.Y, X1: b.Box.Max.X, Y1: b.Box.Max.Y},
		})
	}
	return page, nil
}
