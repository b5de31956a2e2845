package web

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvListenAddr = "PIXELED_LISTEN"
	EnvDevMode    = "PIXELED_DEV"
)

// ServerConfig is where the simulator listens and whether it answers
// cross-origin requests.
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
}

// DefaultServerConfigFromEnv reads PIXELED_LISTEN and PIXELED_DEV, using
// fallback when no address is set.
func DefaultServerConfigFromEnv(fallback string) (ServerConfig, error) {
	cfg := ServerConfig{ListenAddr: fallback}
	if addr := os.Getenv(EnvListenAddr); addr != "" {
		cfg.ListenAddr = addr
	}
	raw := os.Getenv(EnvDevMode)
	if raw == "" {
		return cfg, nil
	}
	dev, err := strconv.ParseBool(raw)
	if err != nil {
		return ServerConfig{}, fmt.Errorf("%s=%q: %w", EnvDevMode, raw, err)
	}
	cfg.DevMode = dev
	return cfg, nil
}
