package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	PlayBase    string
	BanksFile   string
	RawDir      string
	CleanPath   string
	Workers     int
	ReviewCount int
	ScrapeRPS   int
	CacheTTL    time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/bank_reviews?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		PlayBase:    env("PLAY_BASE_URL", "https://play.googleapis.com/store"),
		BanksFile:   env("BANKS_FILE", "banks.yaml"),
		RawDir:      env("RAW_DIR", "data/raw"),
		CleanPath:   env("CLEAN_PATH", "data/processed/clean_reviews.csv"),
		Workers:     atoi("SCRAPE_WORKERS", 4),
		ReviewCount: atoi("SCRAPE_REVIEW_COUNT", 400),
		ScrapeRPS:   atoi("SCRAPE_RPS", 5),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
