package cloudformation

import "context"

// MockClient is a configurable test double for Client.
// Each method delegates to the corresponding Func field when set and
// otherwise returns a benign default.
type MockClient struct {
	CreateStackFunc         func(ctx context.Context, name, templateBody string, parameters map[string]string) error
	DescribeStacksFunc      func(ctx context.Context) ([]Stack, error)
	DescribeStackEventsFunc func(ctx context.Context, stackName string) ([]Event, error)

	// Call counters, incremented on every invocation.
	CreateStackCalls         int
	DescribeStacksCalls      int
	DescribeStackEventsCalls int
}

// CreateStack implements Client.
func (m *MockClient) CreateStack(ctx context.Context, name, templateBody string, parameters map[string]string) error {
	m.CreateStackCalls++
	if m.CreateStackFunc != nil {
		return m.CreateStackFunc(ctx, name, templateBody, parameters)
	}
	return nil
}

// DescribeStacks implements Client.
func (m *MockClient) DescribeStacks(ctx context.Context) ([]Stack, error) {
	m.DescribeStacksCalls++
	if m.DescribeStacksFunc != nil {
		return m.DescribeStacksFunc(ctx)
	}
	return nil, nil
}

// DescribeStackEvents implements Client.
func (m *MockClient) DescribeStackEvents(ctx context.Context, stackName string) ([]Event, error) {
	m.DescribeStackEventsCalls++
	if m.DescribeStackEventsFunc != nil {
		return m.DescribeStackEventsFunc(ctx, stackName)
	}
	return nil, nil
}
