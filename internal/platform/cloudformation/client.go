package cloudformation

import (
	"context"
	"time"
)

// StackResourceType is the resource type CloudFormation assigns to events
// about the stack itself, as opposed to any resource within it.
const StackResourceType = "AWS::CloudFormation::Stack"

// Stack is the provider's view of an existing stack.
type Stack struct {
	Name       string
	Parameters map[string]string
	Outputs    map[string]string
}

// Event is one provisioning status update emitted during stack creation
// or rollback. IDs are provider-assigned and unique within a stack's stream,
// but the same event may be delivered more than once.
type Event struct {
	ID                string
	LogicalResourceID string
	ResourceType      string
	Status            string
	StatusReason      string
	Timestamp         time.Time
}

// Client is the provider capability the provisioning core depends on.
type Client interface {
	// CreateStack submits a create request. The returned error carries the
	// provider's rejection when the request is not accepted.
	CreateStack(ctx context.Context, name, templateBody string, parameters map[string]string) error

	// DescribeStacks lists all stacks known to the provider, in the order
	// the provider returns them. An empty slice is a valid result.
	DescribeStacks(ctx context.Context) ([]Stack, error)

	// DescribeStackEvents returns the current event stream for one stack,
	// in provider-delivered order.
	DescribeStackEvents(ctx context.Context, stackName string) ([]Event, error)
}
