package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"bank_reviews/internal/adapters/langdetect"
	"bank_reviews/internal/adapters/observability"
	redisad "bank_reviews/internal/adapters/redis"
	"bank_reviews/internal/app"
	"bank_reviews/internal/domain"
	"bank_reviews/internal/preprocess"
	"bank_reviews/internal/shared"
	mysqlrepo "bank_reviews/internal/storage/mysql"
)

func main() {
	var (
		appsFlag = flag.String("apps", "", "comma-separated app ids (default: every bank in the registry)")
		inDir    = flag.String("in", "", "raw input directory (default: RAW_DIR)")
		outPath  = flag.String("out", "", "clean output path (default: CLEAN_PATH)")
		useDB    = flag.Bool("db", false, "also replace clean rows in MySQL")
	)
	flag.Parse()

	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, "preprocess")
	observability.Serve()

	banks, err := shared.LoadBanks(cfg.BanksFile)
	if err != nil {
		log.Fatal().Err(err).Msg("bank registry load failed")
	}

	appIDs := banks.AppIDs()
	if *appsFlag != "" {
		appIDs = appIDs[:0:0]
		for _, id := range strings.Split(*appsFlag, ",") {
			id = strings.TrimSpace(id)
			if _, ok := banks.Lookup(id); !ok {
				log.Fatal().Str("app_id", id).Msg("unknown app id")
			}
			appIDs = append(appIDs, id)
		}
	}
	dir := cfg.RawDir
	if *inDir != "" {
		dir = *inDir
	}
	dest := cfg.CleanPath
	if *outPath != "" {
		dest = *outPath
	}

	var (
		repo  domain.ReviewRepository
		cache domain.Cache
	)
	if *useDB {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		repo = mysqlrepo.New(db)
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}

	svc := app.NewPreprocessService(preprocess.New(langdetect.New()), repo, cache)

	log.Info().
		Strs("apps", appIDs).
		Str("in", dir).
		Str("out", dest).
		Msg("preprocessing starting")

	rep, err := svc.Run(ctx, dir, appIDs, dest)
	if err != nil {
		// run-level failure: unreadable source or unwritable destination
		log.Error().Err(err).Msg("preprocessing failed")
		os.Exit(1)
	}

	rep.Log(log.Logger)
	log.Info().Str("out", dest).Msg("clean table written")
}
