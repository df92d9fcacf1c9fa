package handlers

import (
	"context"
	"fmt"

	"stackpilot/internal/config"
	"stackpilot/internal/provisioning"
	"stackpilot/internal/template"
)

// CreateOptions holds the inputs for the create command.
type CreateOptions struct {
	StackName       string
	TemplateLocator string
	Parameters      []string
	ConfigPath      string
}

// Create loads the template, submits the stack and blocks until the
// creation resolves. Template and connection problems are returned as
// errors; provisioning outcomes are reported through the exit status.
func Create(ctx context.Context, opts CreateOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	parameters, err := parseParameters(opts.Parameters)
	if err != nil {
		return err
	}

	tmpl, err := template.NewLoader(cfg.TemplateDir).Load(opts.TemplateLocator)
	if err != nil {
		return err
	}

	client, err := connect(ctx, cfg)
	if err != nil {
		return err
	}

	provisioner := provisioning.New(client, log, config.LoadTimeouts())
	outcome, err := provisioner.Create(ctx, opts.StackName, tmpl, parameters)
	if err != nil {
		return err
	}
	if !outcome.Success() {
		return fmt.Errorf("stack %s creation %s", opts.StackName, outcome)
	}

	log.Info("stack creation succeeded", "stack", opts.StackName)
	return nil
}
