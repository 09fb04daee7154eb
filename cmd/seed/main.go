// Command main seeds the database with demo data for development.
package main

import (
	"flag"
	"log"

	"blogwave/internal/config"
	"blogwave/internal/database"
	"blogwave/internal/seed"
)

func main() {
	extraUsers := flag.Int("users", 0, "number of extra generated users")
	extraPosts := flag.Int("posts", 0, "number of extra generated posts")
	clean := flag.Bool("clean", false, "truncate existing data before seeding")
	fixtures := flag.String("fixtures", "", "path to a YAML fixtures file applied after seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumExtraUsers: *extraUsers,
		NumExtraPosts: *extraPosts,
		ShouldClean:   *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	if *fixtures != "" {
		if err := seed.ApplyFixtures(db, *fixtures); err != nil {
			log.Fatalf("Applying fixtures failed: %v", err)
		}
	}
}
