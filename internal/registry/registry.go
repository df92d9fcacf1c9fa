// Package registry exposes the stacks already known to the provider as a
// name-keyed view of their parameters and outputs.
package registry

import (
	"context"
	"fmt"

	"stackpilot/internal/platform/cloudformation"
)

// StackInfo is the public projection of one stack.
type StackInfo struct {
	Parameters map[string]string `yaml:"parameters"`
	Outputs    map[string]string `yaml:"outputs"`
}

// Registry holds a snapshot of the provider's stacks.
// The snapshot is taken once at construction; it is not refreshed.
type Registry struct {
	stacks []cloudformation.Stack
}

// New builds a Registry from the provider's current describe-stacks result.
// An empty provider account yields a valid, empty registry.
func New(ctx context.Context, client cloudformation.Client) (*Registry, error) {
	stacks, err := client.DescribeStacks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stacks: %w", err)
	}
	return &Registry{stacks: stacks}, nil
}

// Stacks returns the snapshot in provider-delivered order.
func (r *Registry) Stacks() []cloudformation.Stack {
	return r.stacks
}

// AsMap projects the snapshot into a name-keyed mapping. Parameter and
// output maps are carried over verbatim, one entry per stack.
func (r *Registry) AsMap() map[string]StackInfo {
	result := make(map[string]StackInfo, len(r.stacks))
	for _, stack := range r.stacks {
		result[stack.Name] = StackInfo{
			Parameters: stack.Parameters,
			Outputs:    stack.Outputs,
		}
	}
	return result
}
