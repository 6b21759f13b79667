package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"townroster/pkg/ocr"
	"townroster/pkg/roster"
)

// Offline extraction debug tool: runs the OCR pipeline against screenshot
// files with a JSON store catalog and prints the candidates.
//
//	go run ./cmd/extract stores.json screen1.png [screen2.png ...]
func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: go run ./cmd/extract <stores.json> <screenshot> [screenshot ...]")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to read store catalog: %v", err)
	}
	var stores []roster.Store
	if err := json.Unmarshal(data, &stores); err != nil {
		log.Fatalf("invalid store catalog JSON: %v", err)
	}

	files := os.Args[2:]
	engine := ocr.NewTesseract()

	onProgress := func(p roster.Progress) {
		if p.Phase == roster.PhaseRecognizing {
			log.Printf("recognizing %s (%d/%d)", p.FileName, p.FileIndex+1, p.FileCount)
		}
	}

	candidates, err := roster.ExtractFromScreenshots(context.Background(), files, stores, engine, roster.DefaultConfig(), onProgress)
	if err != nil {
		log.Fatalf("extraction failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(candidates); err != nil {
		log.Fatalf("encode failed: %v", err)
	}
	log.Printf("extracted %d candidates from %d files", len(candidates), len(files))
}
