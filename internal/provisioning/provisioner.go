// Package provisioning issues stack create requests and drives the
// asynchronous creation process to a terminal outcome.
package provisioning

import (
	"context"
	"log/slog"

	"stackpilot/internal/config"
	"stackpilot/internal/platform/cloudformation"
	"stackpilot/internal/template"
)

// Outcome is the terminal result of one create call.
type Outcome int

const (
	// OutcomeSucceeded means the stack reached CREATE_COMPLETE.
	OutcomeSucceeded Outcome = iota
	// OutcomeRejected means the provider refused the create request;
	// no polling was attempted.
	OutcomeRejected
	// OutcomeFailed means creation started but rolled back, or the event
	// stream became unreadable.
	OutcomeFailed
	// OutcomeTimedOut means the budget expired before a terminal event.
	OutcomeTimedOut
)

// Success collapses the outcome to the public boolean contract.
func (o Outcome) Success() bool {
	return o == OutcomeSucceeded
}

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	case OutcomeTimedOut:
		return "timed out"
	}
	return "unknown"
}

// Provisioner creates stacks and blocks until creation resolves.
type Provisioner struct {
	client   cloudformation.Client
	log      *slog.Logger
	timeouts *config.Timeouts
}

// New creates a Provisioner. A nil timeouts falls back to the environment
// defaults.
func New(client cloudformation.Client, log *slog.Logger, timeouts *config.Timeouts) *Provisioner {
	if timeouts == nil {
		timeouts = config.LoadTimeouts()
	}
	return &Provisioner{client: client, log: log, timeouts: timeouts}
}

// Create submits the stack and waits for a terminal outcome.
//
// Provider rejections (duplicate name, validation error, quota) are logged
// and folded into OutcomeRejected rather than returned as errors: a refused
// or failed provisioning run is an expected, retry-recoverable result, not a
// caller bug. Template serialization problems are the exception and are
// returned as errors.
func (p *Provisioner) Create(ctx context.Context, name string, tmpl *template.Template, parameters map[string]string) (Outcome, error) {
	body, err := tmpl.JSON()
	if err != nil {
		return OutcomeRejected, err
	}

	p.log.Info("creating stack",
		"stack", name, "template", tmpl.Locator, "parameters", parameters)

	if err := p.client.CreateStack(ctx, name, body, parameters); err != nil {
		p.log.Error("could not create stack", "stack", name, "error", err)
		return OutcomeRejected, nil
	}

	watcher := NewWatcher(p.client, p.log, p.timeouts.StackCreate, p.timeouts.PollInterval)
	watcher.RetryMaxAttempts = p.timeouts.RetryMaxAttempts
	watcher.RetryInitialDelay = p.timeouts.RetryInitialDelay

	switch watcher.Wait(ctx, name) {
	case StateSucceeded:
		return OutcomeSucceeded, nil
	case StateTimedOut:
		return OutcomeTimedOut, nil
	default:
		return OutcomeFailed, nil
	}
}
