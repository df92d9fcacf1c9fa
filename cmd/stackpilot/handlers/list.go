package handlers

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"stackpilot/internal/registry"
)

// List prints all stacks known to the provider, keyed by name, with their
// parameters and outputs rendered as YAML.
func List(ctx context.Context, w io.Writer, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	client, err := connect(ctx, cfg)
	if err != nil {
		return err
	}

	reg, err := registry.New(ctx, client)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(reg.AsMap())
	if err != nil {
		return fmt.Errorf("failed to render stack list: %w", err)
	}

	_, err = w.Write(data)
	return err
}
