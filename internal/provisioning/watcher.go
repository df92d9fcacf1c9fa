package provisioning

import (
	"context"
	"log/slog"
	"time"

	"stackpilot/internal/platform/cloudformation"
	"stackpilot/internal/util/retry"
)

// State is the wait loop's position in the completion-detection machine.
type State int

const (
	// StateWaiting is the initial state; no terminal event seen yet.
	StateWaiting State = iota
	// StateSucceeded means the stack-level creation completed.
	StateSucceeded
	// StateFailed means creation failed (rollback observed, or the event
	// stream became unreadable).
	StateFailed
	// StateTimedOut means the budget expired without a terminal event.
	StateTimedOut
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateTimedOut:
		return "timed out"
	}
	return "unknown"
}

// Watcher drives the completion-detection loop for one stack creation.
type Watcher struct {
	client cloudformation.Client
	log    *slog.Logger

	// Timeout is the overall budget for the stack to reach a terminal
	// state; PollInterval the delay between event polls.
	Timeout      time.Duration
	PollInterval time.Duration

	// Retry knobs for transient event-fetch faults.
	RetryMaxAttempts  int
	RetryInitialDelay time.Duration
}

// NewWatcher creates a Watcher with the given poll settings.
func NewWatcher(client cloudformation.Client, log *slog.Logger, timeout, pollInterval time.Duration) *Watcher {
	return &Watcher{
		client:            client,
		log:               log,
		Timeout:           timeout,
		PollInterval:      pollInterval,
		RetryMaxAttempts:  5,
		RetryInitialDelay: time.Second,
	}
}

// Wait blocks until the stack reaches a terminal state or the budget runs
// out, and returns the terminal state. Redelivered events are ignored via a
// per-invocation seen-event set keyed by event id.
//
// A single resource CREATE_FAILED does not end the wait; the provider is
// expected to follow up with rollback events. If it never does, the loop
// runs out the budget and reports StateTimedOut.
//
// Transient event-fetch faults are retried with backoff; if the stream stays
// unreadable the wait aborts with StateFailed rather than burning the
// remaining budget.
func (w *Watcher) Wait(ctx context.Context, stackName string) State {
	seen := make(map[string]struct{})
	deadline := time.Now().Add(w.Timeout)

	for time.Now().Before(deadline) {
		events, err := w.fetchEvents(ctx, stackName)
		if err != nil {
			w.log.Error("event stream unreadable, aborting wait",
				"stack", stackName, "error", err)
			return StateFailed
		}

		for _, event := range events {
			if _, ok := seen[event.ID]; ok {
				continue
			}
			seen[event.ID] = struct{}{}

			if state := w.observe(stackName, event); state != StateWaiting {
				return state
			}
		}

		select {
		case <-ctx.Done():
			w.log.Warn("wait cancelled", "stack", stackName, "error", ctx.Err())
			return StateFailed
		case <-time.After(w.PollInterval):
		}
	}

	w.log.Error("stack did not reach a terminal state in time",
		"stack", stackName, "timeout", w.Timeout)
	return StateTimedOut
}

// observe logs one fresh event and returns the state it transitions to.
// Informational signals keep the loop in StateWaiting.
func (w *Watcher) observe(stackName string, event cloudformation.Event) State {
	switch Classify(event) {
	case SignalStackCreated:
		w.log.Info("stack created", "stack", event.LogicalResourceID)
		return StateSucceeded
	case SignalResourceCreated:
		w.log.Info("created", "resource", event.LogicalResourceID)
	case SignalResourceFailed:
		w.log.Error("could not create resource",
			"resource", event.LogicalResourceID, "reason", event.StatusReason)
	case SignalRollbackStarted:
		w.log.Warn("rolling back", "resource", event.LogicalResourceID)
	case SignalRollbackDone:
		w.log.Error("rollback completed", "stack", stackName,
			"resource", event.LogicalResourceID)
		return StateFailed
	case SignalRollbackFailed:
		w.log.Error("rollback failed", "stack", stackName,
			"resource", event.LogicalResourceID)
		return StateFailed
	}
	return StateWaiting
}

// fetchEvents pulls the current event stream, retrying throttled calls.
// Validation faults (e.g. the stack vanished) are fatal immediately.
func (w *Watcher) fetchEvents(ctx context.Context, stackName string) ([]cloudformation.Event, error) {
	var events []cloudformation.Event
	err := retry.Do(ctx, func() error {
		var err error
		events, err = w.client.DescribeStackEvents(ctx, stackName)
		if err != nil && !cloudformation.IsThrottling(err) {
			return retry.Fatal(err)
		}
		return err
	},
		retry.WithMaxAttempts(w.RetryMaxAttempts),
		retry.WithInitialDelay(w.RetryInitialDelay))
	if err != nil {
		return nil, err
	}
	return events, nil
}
