package provisioning

import (
	"strings"

	"stackpilot/internal/platform/cloudformation"
)

// Signal is the classification of one provisioning event.
type Signal int

const (
	// SignalNone means the event carries no information the wait loop
	// acts on.
	SignalNone Signal = iota
	// SignalStackCreated is the authoritative top-level completion signal:
	// the stack itself reached CREATE_COMPLETE.
	SignalStackCreated
	// SignalResourceCreated reports one resource finishing. Informational;
	// resource completions do not imply overall stack completion.
	SignalResourceCreated
	// SignalResourceFailed reports one resource failing. Informational;
	// the provider is expected to follow up with rollback events.
	SignalResourceFailed
	// SignalRollbackStarted reports a rollback beginning. Informational.
	SignalRollbackStarted
	// SignalRollbackDone means the rollback finished; creation has failed.
	SignalRollbackDone
	// SignalRollbackFailed means the rollback itself failed; creation has
	// failed either way.
	SignalRollbackFailed
)

// Terminal reports whether the signal ends the wait loop.
func (s Signal) Terminal() bool {
	switch s {
	case SignalStackCreated, SignalRollbackDone, SignalRollbackFailed:
		return true
	}
	return false
}

// Classify maps a raw provisioning event to a wait-loop signal.
// It is a pure function of the event.
func Classify(event cloudformation.Event) Signal {
	switch {
	case strings.HasSuffix(event.Status, "CREATE_COMPLETE"):
		if event.ResourceType == cloudformation.StackResourceType {
			return SignalStackCreated
		}
		return SignalResourceCreated
	case strings.HasSuffix(event.Status, "CREATE_FAILED"):
		return SignalResourceFailed
	case strings.HasSuffix(event.Status, "ROLLBACK_IN_PROGRESS"):
		return SignalRollbackStarted
	case strings.HasSuffix(event.Status, "ROLLBACK_COMPLETE"):
		return SignalRollbackDone
	case strings.HasSuffix(event.Status, "ROLLBACK_FAILED"):
		return SignalRollbackFailed
	}
	return SignalNone
}
