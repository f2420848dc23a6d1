// Command seed populates the development database with fake data.
package main

import (
	"flag"
	"log"

	"matchday/internal/config"
	"matchday/internal/database"
	"matchday/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "number of users to create")
	clean := flag.Bool("clean", false, "delete existing data first")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{NumUsers: *numUsers, ShouldClean: *clean}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
