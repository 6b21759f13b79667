package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"townroster/models"
	"townroster/pkg/ocr"
	"townroster/pkg/roster"
)

// Scans a directory of roster screenshots, extracts resident candidates and
// upserts selected ones into the residents table. With -watch it keeps
// running and processes files as they appear.
func main() {
	dirFlag := flag.String("dir", "public/screens", "directory to scan for roster screenshots")
	watch := flag.Bool("watch", false, "watch directory for new files")
	dryRun := flag.Bool("dry-run", false, "extract and log candidates without writing residents")
	flag.Parse()

	db := mustInitDBFromEnv()
	catalog, err := loadCatalog(db)
	if err != nil {
		log.Fatalf("failed to load store catalog: %v", err)
	}
	if len(catalog) == 0 {
		log.Fatal("store catalog is empty; run cmd/seed_stores first")
	}

	w := &watcher{db: db, catalog: catalog, engine: ocr.NewTesseract(), dryRun: *dryRun}

	for _, name := range listImageFiles(*dirFlag) {
		w.processFile(filepath.Join(*dirFlag, name))
	}

	if !*watch {
		return
	}
	if err := w.watchDir(*dirFlag); err != nil {
		log.Fatalf("watch failed: %v", err)
	}
}

type watcher struct {
	db      *gorm.DB
	catalog []roster.Store
	engine  roster.Engine
	dryRun  bool
}

func (w *watcher) processFile(path string) {
	candidates, err := roster.ExtractFromScreenshots(context.Background(), []string{path}, w.catalog, w.engine, roster.DefaultConfig(), nil)
	if err != nil {
		log.Printf("extraction failed for %s: %v", path, err)
		return
	}
	applied := 0
	for _, cand := range candidates {
		if !cand.Selected || cand.Name == "" {
			continue
		}
		if w.dryRun {
			log.Printf("dry-run: %s current=%s dream=%s conf=%.2f", cand.Name, cand.CurrentJobStoreID, cand.DreamJobStoreID, cand.MatchConfidence)
			continue
		}
		if err := upsertResident(w.db, cand); err != nil {
			log.Printf("failed to save resident %s: %v", cand.Name, err)
			continue
		}
		applied++
	}
	log.Printf("%s: %d candidates, %d applied", filepath.Base(path), len(candidates), applied)
}

// watchDir blocks, processing files after a short debounce so half-written
// screenshots are not picked up.
func (w *watcher) watchDir(dir string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	if err := fw.Add(dir); err != nil {
		return err
	}
	log.Printf("Watching %s (debounced) ...", dir)

	pending := map[string]time.Time{}
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				name := filepath.Base(ev.Name)
				if !isSupportedExt(name) {
					continue
				}
				pending[name] = time.Now()
			}
		case <-ticker.C:
			now := time.Now()
			for name, t := range pending {
				if now.Sub(t) > 300*time.Millisecond { // stable
					delete(pending, name)
					w.processFile(filepath.Join(dir, name))
				}
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func upsertResident(db *gorm.DB, cand roster.Candidate) error {
	res := models.Resident{
		Name:            cand.Name,
		CurrentJobRaw:   cand.CurrentJobRaw,
		DreamJobRaw:     cand.DreamJobRaw,
		MatchConfidence: cand.MatchConfidence,
		SourceFileName:  cand.SourceFileName,
	}
	if cand.CurrentJobStoreID != "" {
		id := cand.CurrentJobStoreID
		res.CurrentJobStoreID = &id
	}
	if cand.DreamJobStoreID != "" {
		id := cand.DreamJobStoreID
		res.DreamJobStoreID = &id
	}
	var existing models.Resident
	if err := db.Where("name = ?", res.Name).First(&existing).Error; err == nil {
		res.ID = existing.ID
		res.CreatedAt = existing.CreatedAt
		return db.Save(&res).Error
	}
	return db.Create(&res).Error
}

func loadCatalog(db *gorm.DB) ([]roster.Store, error) {
	var stores []models.Store
	if err := db.Order("id asc").Find(&stores).Error; err != nil {
		return nil, err
	}
	out := make([]roster.Store, 0, len(stores))
	for _, s := range stores {
		out = append(out, roster.Store{ID: s.ID, Name: s.Name, Category: s.Category, Products: s.Products})
	}
	return out, nil
}

func mustInitDBFromEnv() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatalf("DB_DSN must be set in environment to run this tool")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return gdb
}

func listImageFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("cannot read %s: %v", dir, err)
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !isSupportedExt(e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	return out
}

func isSupportedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return true
	}
	return false
}
