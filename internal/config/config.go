package config

import (
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Env string

	// DatabaseURL selects postgres when set; SqlitePath is the fallback.
	DatabaseURL string
	SqlitePath  string

	RedisAddr     string
	RedisPassword string
	// CacheCodec names the payload codec for cached index entries:
	// gzip, brotli, lz4 or nop.
	CacheCodec string

	// BulkPageSize bounds how many index rows a bulk operation holds in
	// memory at a time.
	BulkPageSize int

	ScanSchedule    string
	ReindexSchedule string
}

func LoadConfig() *Config {
	return &Config{
		Env:             getenv("ENV", "dev"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SqlitePath:      getenv("SQLITE_PATH", ".db/consolidation.db"),
		RedisAddr:       getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		CacheCodec:      getenv("CACHE_CODEC", "gzip"),
		BulkPageSize:    getint("BULK_PAGE_SIZE", 10),
		ScanSchedule:    getenv("SCAN_SCHEDULE", "@every 6h"),
		ReindexSchedule: getenv("REINDEX_SCHEDULE", "@daily"),
	}
}

func GetDb(cnf *Config) *gorm.DB {
	var db *gorm.DB
	var err error

	if cnf.DatabaseURL != "" {
		db, err = gorm.Open(postgres.Open(cnf.DatabaseURL), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cnf.SqlitePath), &gorm.Config{})
	}
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	return db
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getint(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		logrus.Warnf("invalid %s value %q, using %d", key, value, fallback)
		return fallback
	}

	return n
}
