package cloudformation

import (
	"context"
	"errors"
	"testing"
)

// TestMockClient_InterfaceCompliance verifies MockClient implements Client.
func TestMockClient_InterfaceCompliance(_ *testing.T) {
	var _ Client = (*MockClient)(nil)
}

func TestMockClient_Defaults(t *testing.T) {
	m := &MockClient{}
	ctx := context.Background()

	if err := m.CreateStack(ctx, "web", "{}", nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	stacks, err := m.DescribeStacks(ctx)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(stacks) != 0 {
		t.Errorf("expected no stacks, got %d", len(stacks))
	}

	events, err := m.DescribeStackEvents(ctx, "web")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestMockClient_CustomFuncAndCounters(t *testing.T) {
	expectedErr := errors.New("custom error")
	m := &MockClient{
		CreateStackFunc: func(_ context.Context, name, body string, _ map[string]string) error {
			if name != "web" {
				t.Errorf("expected name 'web', got %q", name)
			}
			if body != `{"Resources":{}}` {
				t.Errorf("unexpected body %q", body)
			}
			return expectedErr
		},
	}

	err := m.CreateStack(context.Background(), "web", `{"Resources":{}}`, nil)
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if m.CreateStackCalls != 1 {
		t.Errorf("expected 1 call, got %d", m.CreateStackCalls)
	}
}
