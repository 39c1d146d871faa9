// Command load_roster loads a roster YAML file into the database, skipping
// members whose code already exists. Useful when pointing a fresh database at
// a custom roster without going through seed-on-empty.
//
// Usage: go run scripts/load_roster.go [roster.yaml]
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"teamops-backend/internal/config"
	"teamops-backend/internal/database"
	"teamops-backend/internal/repository"
	"teamops-backend/internal/seed"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	path := cfg.RosterFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	roster, err := seed.LoadRoster(path)
	if err != nil {
		log.Fatalf("load roster: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	repo := repository.NewMemberRepository(db)
	created, skipped := 0, 0
	for i := range roster {
		member := roster[i]
		existing, err := repo.GetByCode(member.Code)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("check member %s: %v", member.Code, err)
		}
		if existing != nil {
			skipped++
			continue
		}
		if err := repo.Create(&member); err != nil {
			log.Fatalf("create member %s: %v", member.Code, err)
		}
		created++
	}

	fmt.Printf("roster %s: %d created, %d skipped\n", path, created, skipped)
}
