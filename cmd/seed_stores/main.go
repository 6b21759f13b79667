package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"townroster/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Seeds the store catalog from a JSON file into the stores table.
// Existing stores with the same id are updated in place.
func main() {
	path := "stores.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read %s: %v", path, err)
	}
	var stores []models.Store
	if err := json.Unmarshal(data, &stores); err != nil {
		log.Fatalf("invalid store catalog JSON: %v", err)
	}

	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Store{}); err != nil {
		log.Printf("migration warning (stores): %v", err)
	}

	n := 0
	for _, s := range stores {
		if s.ID == "" || s.Name == "" {
			log.Printf("skipping store with missing id or name: %+v", s)
			continue
		}
		if err := db.Save(&s).Error; err != nil {
			log.Printf("failed to save store %s: %v", s.ID, err)
			continue
		}
		n++
	}
	fmt.Printf("seeded %d stores from %s\n", n, path)
}
