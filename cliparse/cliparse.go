package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        int
	DatabaseURL string
	SessionTTL  time.Duration
}

// Environment fallback chains, first non-empty wins. The PG* names are what
// managed Postgres providers inject; the DB_* names are the generic local
// convention; the last entry is the local-dev default.
var (
	hostChain     = []string{"PGHOST", "DB_HOST"}
	portChain     = []string{"PGPORT", "DB_PORT"}
	userChain     = []string{"PGUSER", "DB_USER"}
	passwordChain = []string{"PGPASSWORD", "DB_PASSWORD"}
	dbnameChain   = []string{"PGDATABASE", "DB_NAME"}
)

// ParseFlags resolves configuration with the precedence:
//
//  1. CLI flag
//  2. environment variable (cloud name, then generic name)
//  3. local default
//
// The database URL is special-cased: -d wins, then DATABASE_URL, then a DSN
// assembled from the per-field chains above.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("grading-server", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Session lifetime")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = buildDSN()
	}

	if cfg.SessionTTL == 0 {
		if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
			ttl, err := time.ParseDuration(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid SESSION_TTL env variable")
			}
			cfg.SessionTTL = ttl
		} else {
			cfg.SessionTTL = 8 * time.Hour
		}
	}

	return cfg, nil
}

// resolveEnv returns the first non-empty value among the named variables,
// or the fallback when none is set.
func resolveEnv(names []string, fallback string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return fallback
}

func buildDSN() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable",
		resolveEnv(hostChain, "localhost"),
		resolveEnv(portChain, "5432"),
		resolveEnv(userChain, "postgres"),
		resolveEnv(dbnameChain, "grading"),
	)
	if password := resolveEnv(passwordChain, ""); password != "" {
		dsn += " password=" + password
	}
	return dsn
}
