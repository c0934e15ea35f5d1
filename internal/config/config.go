package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr          string
	GRPCAddr          string
	AllowLocal        bool
	OverridesSource   string
	OverridesInterval time.Duration
	CORSOrigins       []string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		GRPCAddr:        getenv("GRPC_ADDR", ":9090"),
		OverridesSource: getenv("OVERRIDES_SOURCE", ""),
	}

	allowLocalStr := getenv("ALLOW_LOCAL", "false")
	allowLocal, err := strconv.ParseBool(allowLocalStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid ALLOW_LOCAL=%q: %w", allowLocalStr, err)
	}
	cfg.AllowLocal = allowLocal

	intervalStr := getenv("OVERRIDES_INTERVAL", "10m")
	d, err := time.ParseDuration(intervalStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid OVERRIDES_INTERVAL=%q: %w", intervalStr, err)
	}
	if d < time.Minute {
		return Config{}, fmt.Errorf("OVERRIDES_INTERVAL too small (%s), must be >=1m", d)
	}
	if d > 24*time.Hour {
		return Config{}, fmt.Errorf("OVERRIDES_INTERVAL too large (%s), must be <=24h", d)
	}
	cfg.OverridesInterval = d

	for _, o := range strings.Split(getenv("CORS_ORIGINS", ""), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if cfg.HTTPAddr == cfg.GRPCAddr {
		return Config{}, fmt.Errorf("HTTP_ADDR and GRPC_ADDR must differ, both are %q", cfg.HTTPAddr)
	}

	return cfg, nil
}
