package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/brightseth/vibe-sub000/internal/config"
	"github.com/brightseth/vibe-sub000/internal/database"
	"github.com/brightseth/vibe-sub000/internal/models"
	"github.com/brightseth/vibe-sub000/internal/seeds"
	"github.com/brightseth/vibe-sub000/pkg/utils"
)

// Seeds the badge catalog and optionally mints a service token for an agent.
//
//	go run ./cmd/seeder
//	go run ./cmd/seeder -token streaks-agent -role AGENT
func main() {
	tokenAgent := flag.String("token", "", "mint a service token for this agent name")
	tokenRole := flag.String("role", "AGENT", "role for the minted token (AGENT or ADMIN)")
	flag.Parse()

	config.LoadConfig()
	database.Connect()

	if err := database.DB.AutoMigrate(
		&models.Badge{},
		&models.UserProgress{},
		&models.UserBadge{},
		&models.CelebrationActivity{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := seeds.SeedBadges(database.DB); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("✅ Badge catalog seeded")

	if *tokenAgent != "" {
		token, err := utils.GenerateToken(*tokenAgent, *tokenRole)
		if err != nil {
			log.Fatalf("Token generation failed: %v", err)
		}
		fmt.Printf("Service token for %s (%s):\n%s\n", *tokenAgent, *tokenRole, token)
	}
}
