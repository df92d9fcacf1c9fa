package provisioning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stackpilot/internal/platform/cloudformation"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		resourceType string
		status       string
		want         Signal
	}{
		{"stack create complete", cloudformation.StackResourceType, "CREATE_COMPLETE", SignalStackCreated},
		{"resource create complete", "AWS::S3::Bucket", "CREATE_COMPLETE", SignalResourceCreated},
		{"resource create failed", "AWS::S3::Bucket", "CREATE_FAILED", SignalResourceFailed},
		{"stack create failed", cloudformation.StackResourceType, "CREATE_FAILED", SignalResourceFailed},
		{"rollback in progress", cloudformation.StackResourceType, "ROLLBACK_IN_PROGRESS", SignalRollbackStarted},
		{"rollback complete", cloudformation.StackResourceType, "ROLLBACK_COMPLETE", SignalRollbackDone},
		{"rollback failed", cloudformation.StackResourceType, "ROLLBACK_FAILED", SignalRollbackFailed},
		{"in progress ignored", "AWS::S3::Bucket", "CREATE_IN_PROGRESS", SignalNone},
		{"unknown status ignored", "AWS::S3::Bucket", "REVIEW_IN_PROGRESS", SignalNone},
		{"empty status ignored", "AWS::S3::Bucket", "", SignalNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := cloudformation.Event{
				ID:                "ev-1",
				LogicalResourceID: "res",
				ResourceType:      tt.resourceType,
				Status:            tt.status,
			}
			assert.Equal(t, tt.want, Classify(event))
		})
	}
}

func TestClassify_StackSentinelIsAuthoritative(t *testing.T) {
	// A resource completing must never be read as overall stack completion.
	resource := cloudformation.Event{ResourceType: "AWS::EC2::Instance", Status: "CREATE_COMPLETE"}
	stack := cloudformation.Event{ResourceType: cloudformation.StackResourceType, Status: "CREATE_COMPLETE"}

	assert.False(t, Classify(resource).Terminal())
	assert.True(t, Classify(stack).Terminal())
}

func TestSignalTerminal(t *testing.T) {
	terminal := []Signal{SignalStackCreated, SignalRollbackDone, SignalRollbackFailed}
	for _, s := range terminal {
		assert.True(t, s.Terminal())
	}

	informational := []Signal{SignalNone, SignalResourceCreated, SignalResourceFailed, SignalRollbackStarted}
	for _, s := range informational {
		assert.False(t, s.Terminal())
	}
}
