package main

import (
	"flag"
	"os"

	"github.com/brightseth/vibe-sub000/internal/config"
	"github.com/brightseth/vibe-sub000/internal/database"
	"github.com/brightseth/vibe-sub000/internal/legacy"
	"github.com/brightseth/vibe-sub000/internal/models"
	"github.com/brightseth/vibe-sub000/pkg/logger"
)

// One-shot migration of the legacy JSON files into the database. Safe to
// re-run: awards are idempotent and streaks only ever merge upward.
//
//	go run ./cmd/importer -streaks memory.json -badges badges.json -history celebration_history.json
func main() {
	streaksPath := flag.String("streaks", "", "streaks-agent memory.json")
	badgesPath := flag.String("badges", "", "legacy badges.json")
	historyPath := flag.String("history", "", "legacy celebration_history.json")
	flag.Parse()

	config.LoadConfig()
	logger.Init(os.Getenv("GO_ENV"))
	database.Connect()

	if err := database.DB.AutoMigrate(
		&models.Badge{},
		&models.UserProgress{},
		&models.UserBadge{},
		&models.CelebrationActivity{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Migration failed")
	}

	// Fall back to configured paths when flags are absent
	if *streaksPath == "" {
		*streaksPath = config.AppConfig.LegacyStreaksFile
	}
	if *badgesPath == "" {
		*badgesPath = config.AppConfig.LegacyBadgesFile
	}
	if *historyPath == "" {
		*historyPath = config.AppConfig.LegacyHistoryFile
	}

	importer := legacy.NewImporter(database.DB)

	if *streaksPath != "" {
		n, err := importer.ImportStreaks(*streaksPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("Streak import failed")
		}
		logger.Info().Int("users", n).Msg("Imported legacy streaks")
	}

	if *badgesPath != "" {
		n, err := importer.ImportEngineBadges(*badgesPath)
		if err != nil {
			logger.Fatal().Err(err).Int("imported", n).Msg("Badge import failed")
		}
		logger.Info().Int("awards", n).Msg("Imported legacy badges")
	}

	if *historyPath != "" {
		n, err := importer.ImportCelebrationHistory(*historyPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("Celebration history import failed")
		}
		logger.Info().Int("awards", n).Msg("Imported legacy celebration history")
	}

	logger.Info().Msg("✅ Legacy import complete")
}
