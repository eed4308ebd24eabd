// Command seed populates a SQLite database with sample analytics data.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abubakarirfan/huddled-takehome/internal/adapters/repository"
	"github.com/abubakarirfan/huddled-takehome/internal/seed"
	"github.com/abubakarirfan/huddled-takehome/pkg/logger"
)

func main() {
	dbPath := flag.String("db", "huddled.db", "path to the SQLite database file")
	users := flag.Int("users", 50, "number of users to generate")
	artists := flag.Int("artists", 10, "number of artists to generate")
	visits := flag.Int("visits", 6, "visits per user")
	events := flag.Int("events", 20, "events per user")
	seedVal := flag.Int64("seed", time.Now().UnixNano(), "random seed for reproducible data")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.OpenSQLite(*dbPath)
	if err != nil {
		log.Error(ctx, "failed to open store", logger.String("db_path", *dbPath), logger.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error(ctx, "failed to close store", logger.Error(err))
		}
	}()

	gen := seed.New(seed.Config{
		Users:         *users,
		Artists:       *artists,
		VisitsPerUser: *visits,
		EventsPerUser: *events,
		Seed:          *seedVal,
	})

	stats, err := gen.Run(ctx, store)
	if err != nil {
		log.Error(ctx, "seeding failed", logger.Error(err))
		os.Exit(1)
	}

	log.Info(ctx, "database seeded",
		logger.String("db_path", *dbPath),
		logger.Int("users", stats.Users),
		logger.Int("artists", stats.Artists),
		logger.Int("visits", stats.Visits),
		logger.Int("events", stats.Events),
	)
}
