package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	domainErrors "github.com/polkiloo/loyaltycampaign/internal/domain/errors"
	"github.com/polkiloo/loyaltycampaign/internal/domain/model"
)

// DateLayout is the layout of campaign period bounds.
const DateLayout = "2006-01-02"

// Config holds application level configuration loaded from file, environment and flags.
type Config struct {
	LoyaltyPath     string
	FlightsPath     string
	CampaignStart   time.Time
	CampaignEnd     time.Time
	DatabaseURI     string
	ChartAddress    string
	ShowCharts      bool
	ShutdownTimeout time.Duration
}

// fileConfig mirrors the optional YAML configuration file.
type fileConfig struct {
	LoyaltyPath     string `yaml:"loyalty_path"`
	FlightsPath     string `yaml:"flights_path"`
	CampaignStart   string `yaml:"campaign_start"`
	CampaignEnd     string `yaml:"campaign_end"`
	DatabaseURI     string `yaml:"database_uri"`
	ChartAddress    string `yaml:"chart_address"`
	ShowCharts      *bool  `yaml:"show_charts"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

const (
	defaultLoyaltyPath     = "Customer Loyalty History.csv"
	defaultFlightsPath     = "Customer Flight Activity.csv"
	defaultCampaignStart   = "2018-02-01"
	defaultCampaignEnd     = "2018-04-30"
	defaultChartAddress    = "127.0.0.1:8080"
	defaultShowCharts      = true
	defaultShutdownTimeout = 5 * time.Second
)

// Load parses configuration from .env, an optional YAML file, environment variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	file := fileConfig{
		LoyaltyPath:     defaultLoyaltyPath,
		FlightsPath:     defaultFlightsPath,
		CampaignStart:   defaultCampaignStart,
		CampaignEnd:     defaultCampaignEnd,
		ChartAddress:    defaultChartAddress,
		ShutdownTimeout: defaultShutdownTimeout.String(),
	}

	configPath := findConfigPath(args, getString(lookup, "REPORT_CONFIG", ""))
	if configPath != "" {
		if err := readFile(configPath, &file); err != nil {
			return nil, err
		}
	}

	showCharts := defaultShowCharts
	if file.ShowCharts != nil {
		showCharts = *file.ShowCharts
	}
	fileTimeout, err := time.ParseDuration(file.ShutdownTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	cfg := &Config{
		LoyaltyPath:     getString(lookup, "LOYALTY_PATH", file.LoyaltyPath),
		FlightsPath:     getString(lookup, "FLIGHTS_PATH", file.FlightsPath),
		DatabaseURI:     getString(lookup, "DATABASE_URI", file.DatabaseURI),
		ChartAddress:    getString(lookup, "CHART_ADDRESS", file.ChartAddress),
		ShowCharts:      getBool(lookup, "SHOW_CHARTS", showCharts),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", fileTimeout),
	}

	fs := flag.NewFlagSet("loyaltycampaign", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		startStr           = getString(lookup, "CAMPAIGN_START", file.CampaignStart)
		endStr             = getString(lookup, "CAMPAIGN_END", file.CampaignEnd)
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.String("config", configPath, "Path to YAML configuration file")
	fs.StringVar(&cfg.LoyaltyPath, "loyalty", cfg.LoyaltyPath, "Customer loyalty history CSV")
	fs.StringVar(&cfg.FlightsPath, "flights", cfg.FlightsPath, "Customer flight activity CSV")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN used instead of CSV files")
	fs.StringVar(&cfg.ChartAddress, "a", cfg.ChartAddress, "Chart viewer listen address")
	fs.BoolVar(&cfg.ShowCharts, "charts", cfg.ShowCharts, "Serve charts and wait until they are dismissed")
	fs.StringVar(&startStr, "campaign-start", startStr, "First day of the campaign (YYYY-MM-DD)")
	fs.StringVar(&endStr, "campaign-end", endStr, "Last day of the campaign (YYYY-MM-DD)")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.CampaignStart, err = time.Parse(DateLayout, startStr); err != nil {
		return nil, fmt.Errorf("invalid campaign start: %w", err)
	}

	if cfg.CampaignEnd, err = time.Parse(DateLayout, endStr); err != nil {
		return nil, fmt.Errorf("invalid campaign end: %w", err)
	}

	if cfg.CampaignEnd.Before(cfg.CampaignStart) {
		return nil, fmt.Errorf("%w: end %s is before start %s", domainErrors.ErrInvalidPeriod, endStr, startStr)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" && (cfg.LoyaltyPath == "" || cfg.FlightsPath == "") {
		return nil, fmt.Errorf("input paths must be provided")
	}

	return cfg, nil
}

// findConfigPath looks up the -config flag ahead of full parsing so the file
// can supply defaults for the remaining flags.
func findConfigPath(args []string, def string) string {
	for i, arg := range args {
		switch {
		case arg == "-config" || arg == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case len(arg) > 8 && arg[:8] == "-config=":
			return arg[8:]
		case len(arg) > 9 && arg[:9] == "--config=":
			return arg[9:]
		}
	}
	return def
}

func readFile(path string, dst *fileConfig) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(content, dst); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// Period returns the configured campaign bounds.
func (c *Config) Period() model.CampaignPeriod {
	return model.CampaignPeriod{Start: c.CampaignStart, End: c.CampaignEnd}
}
