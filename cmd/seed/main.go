package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"realtor/internal/config"
	"realtor/internal/db"
	"realtor/internal/model"
	"realtor/internal/repository"
	"realtor/internal/seed"
)

const defaultSeedSource = "seed.json"

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Home{}, &model.Image{}, &model.Message{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	source := defaultSeedSource
	if len(os.Args) > 1 {
		source = os.Args[1]
	} else if cfg.SeedURL != "" {
		source = cfg.SeedURL
	}

	log.Printf("Loading seed data from: %s", source)
	doc, err := loadDocument(source)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}
	log.Printf("Loaded %d users and %d homes", len(doc.Users), len(doc.Homes))

	userRepo := repository.NewUserRepository(gormDB)
	homeRepo := repository.NewHomeRepository(gormDB)

	result, err := seed.Apply(context.Background(), userRepo, homeRepo, doc)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d (skipped %d existing)", result.UsersCreated, result.UsersSkipped)
	log.Printf("  - Homes created: %d (skipped %d invalid)", result.HomesCreated, result.HomesSkipped)
}

// loadDocument reads a seed document from a local file or an HTTP URL.
func loadDocument(source string) (*seed.Document, error) {
	var body []byte
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("fetch seed data: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("seed source returned status: %d", resp.StatusCode)
		}
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read seed data: %w", err)
		}
	} else {
		body, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	}

	var doc seed.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse seed JSON: %w", err)
	}
	return &doc, nil
}
