package cloudformation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestIsAlreadyExists(t *testing.T) {
	typed := &types.AlreadyExistsException{Message: strPtr("Stack [web] already exists")}
	assert.True(t, IsAlreadyExists(typed))
	assert.True(t, IsAlreadyExists(fmt.Errorf("create: %w", typed)))

	generic := &smithy.GenericAPIError{Code: "AlreadyExistsException", Message: "exists"}
	assert.True(t, IsAlreadyExists(generic))

	assert.False(t, IsAlreadyExists(nil))
	assert.False(t, IsAlreadyExists(errors.New("boom")))
}

func TestIsValidationError(t *testing.T) {
	err := &smithy.GenericAPIError{Code: "ValidationError", Message: "template format error"}
	assert.True(t, IsValidationError(err))
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsValidationError(errors.New("boom")))
}

func TestIsThrottling(t *testing.T) {
	for _, code := range []string{"Throttling", "ThrottlingException", "RequestLimitExceeded"} {
		err := &smithy.GenericAPIError{Code: code}
		assert.True(t, IsThrottling(err), code)
	}
	assert.False(t, IsThrottling(&smithy.GenericAPIError{Code: "ValidationError"}))
	assert.False(t, IsThrottling(nil))
}

func TestConnectionError(t *testing.T) {
	cause := errors.New("no region given")
	err := &ConnectionError{Region: "mars-central-1", Err: cause}

	assert.Contains(t, err.Error(), "mars-central-1")
	assert.ErrorIs(t, err, cause)
}

func strPtr(s string) *string { return &s }
