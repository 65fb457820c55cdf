package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"bank_reviews/internal/adapters/observability"
	"bank_reviews/internal/adapters/playstore"
	"bank_reviews/internal/app"
	"bank_reviews/internal/domain"
	"bank_reviews/internal/shared"
	mysqlrepo "bank_reviews/internal/storage/mysql"
)

func main() {
	var (
		appsFlag = flag.String("apps", "", "comma-separated app ids (default: every bank in the registry)")
		rawDir   = flag.String("out", "", "raw output directory (default: RAW_DIR)")
		useDB    = flag.Bool("db", false, "also upsert raw rows into MySQL")
	)
	flag.Parse()

	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, "collector")
	observability.Serve()

	banks, err := shared.LoadBanks(cfg.BanksFile)
	if err != nil {
		log.Fatal().Err(err).Msg("bank registry load failed")
	}

	targets := banks.Banks
	if *appsFlag != "" {
		targets = targets[:0:0]
		for _, id := range strings.Split(*appsFlag, ",") {
			b, ok := banks.Lookup(strings.TrimSpace(id))
			if !ok {
				log.Fatal().Str("app_id", id).Msg("unknown app id")
			}
			targets = append(targets, b)
		}
	}
	dir := cfg.RawDir
	if *rawDir != "" {
		dir = *rawDir
	}

	var repo domain.ReviewRepository
	if *useDB {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("db ping ok")
		repo = mysqlrepo.New(db)
	}

	client, err := playstore.New(cfg.PlayBase, cfg.ScrapeRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Play client")
	}
	svc := app.NewCollectService(client, repo, dir)

	log.Info().
		Str("base", cfg.PlayBase).
		Int("workers", cfg.Workers).
		Int("reviews", cfg.ReviewCount).
		Int("banks", len(targets)).
		Msg("collector starting")

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup
	var collected int64

	for _, b := range targets {
		b := b

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(bank shared.Bank) {
			defer wg.Done()
			defer sem.Release(int64(1))

			n, err := svc.CollectApp(ctx, bank, cfg.ReviewCount)
			if err != nil {
				log.Warn().Str("app_id", bank.AppID).Err(err).Msg("collect failed")
				return
			}
			atomic.AddInt64(&collected, int64(n))
			log.Info().Str("app_id", bank.AppID).Int("reviews", n).Msg("collect ok")
		}(b)
	}

	wg.Wait()
	if collected == 0 {
		log.Error().Msg("review source unavailable: no app could be collected")
		os.Exit(1)
	}
	log.Info().Int64("reviews", collected).Msg("collection completed")
}
