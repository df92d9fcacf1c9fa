// Package handlers implements the CLI command logic.
package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"stackpilot/internal/config"
	"stackpilot/internal/logging"
	"stackpilot/internal/platform/cloudformation"
)

// loadConfig loads the configuration file when given, defaults otherwise.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path)
}

// newLogger builds the process logger from the configured level.
func newLogger(cfg *config.Config) *slog.Logger {
	return logging.NewLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
}

// connect builds the provider client from the configuration.
func connect(ctx context.Context, cfg *config.Config) (*cloudformation.RealClient, error) {
	var opts []cloudformation.ConnectOption
	if cfg.AccessKey != "" {
		opts = append(opts, cloudformation.WithStaticCredentials(cfg.AccessKey, cfg.SecretKey))
	}
	return cloudformation.Connect(ctx, cfg.Region, opts...)
}

// parseParameters converts repeated key=value flags into a parameter map.
func parseParameters(raw []string) (map[string]string, error) {
	params := make(map[string]string, len(raw))
	for _, pair := range raw {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}
