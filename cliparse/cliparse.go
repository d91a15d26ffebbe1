package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/danielhkuo/daily-fortune/identity"
)

// Reap policies. Exactly one is active per process.
const (
	ReapNone     = "none"
	ReapTTL      = "ttl"
	ReapMidnight = "midnight"
)

const (
	DefaultPort      = 5000
	DefaultTimezone  = "Europe/Sofia"
	DefaultRetention = 24 * time.Hour
	// MinRetention keeps ttl from deleting a record before its civil day ends
	MinRetention = 24 * time.Hour
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	AdminSecret    string
	TrustProxy     bool
	Timezone       string
	Location       *time.Location
	ReapPolicy     string
	Retention      time.Duration
	IdentityPolicy string
	FortunesFile   string
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("daily-fortune", flag.ContinueOnError)

	// Network and storage (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	trustProxy := fs.String("trust-proxy", "", "Trust X-Forwarded-For from the upstream proxy (true/false)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminSecret, "admin-secret", "", "Admin shared secret (prefer env)")

	// Policies
	fs.StringVar(&cfg.Timezone, "tz", "", "Civil timezone for the daily reset")
	fs.StringVar(&cfg.ReapPolicy, "reap", "", "Reap policy: none, ttl or midnight")
	retention := fs.String("retention", "", "Record age limit for the ttl reap policy")
	fs.StringVar(&cfg.IdentityPolicy, "identity", "", "Identity policy: device or device-or-network")
	fs.StringVar(&cfg.FortunesFile, "fortunes", "", "Fortune list file, one per line")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	// Secret - MUST be provided
	if cfg.AdminSecret == "" {
		cfg.AdminSecret = os.Getenv("ADMIN_SECRET")
	}
	if cfg.AdminSecret == "" {
		return Config{}, errors.New("ADMIN_SECRET required")
	}

	if *trustProxy == "" {
		*trustProxy = os.Getenv("TRUST_PROXY")
	}
	if *trustProxy != "" {
		v, err := strconv.ParseBool(*trustProxy)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TRUST_PROXY value %q", *trustProxy)
		}
		cfg.TrustProxy = v
	}

	cfg.Timezone = firstNonEmpty(cfg.Timezone, os.Getenv("TIMEZONE"), DefaultTimezone)
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return Config{}, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	cfg.ReapPolicy = firstNonEmpty(cfg.ReapPolicy, os.Getenv("REAP_POLICY"), ReapNone)
	switch cfg.ReapPolicy {
	case ReapNone, ReapTTL, ReapMidnight:
	default:
		return Config{}, fmt.Errorf("unknown reap policy %q", cfg.ReapPolicy)
	}

	cfg.Retention = DefaultRetention
	if r := firstNonEmpty(*retention, os.Getenv("RETENTION")); r != "" {
		d, err := time.ParseDuration(r)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid retention %q", r)
		}
		if d < MinRetention {
			return Config{}, fmt.Errorf("retention %s is shorter than %s", d, MinRetention)
		}
		cfg.Retention = d
	}

	cfg.IdentityPolicy = firstNonEmpty(cfg.IdentityPolicy, os.Getenv("IDENTITY_POLICY"), identity.PolicyDevice)
	if _, err := identity.NewMatcher(cfg.IdentityPolicy); err != nil {
		return Config{}, err
	}

	if cfg.FortunesFile == "" {
		cfg.FortunesFile = os.Getenv("FORTUNES_FILE")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
