package cloudformation

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
)

// IsAlreadyExists checks if the error indicates a stack with the same name
// already exists. These rejections are fatal for a create request.
func IsAlreadyExists(err error) bool {
	if err == nil {
		return false
	}

	// Check for the typed SDK error first
	var aee *types.AlreadyExistsException
	if errors.As(err, &aee) {
		return true
	}

	return hasAPIErrorCode(err, "AlreadyExistsException")
}

// IsValidationError checks if the error is a template or parameter
// validation rejection. These are fatal and should not be retried.
func IsValidationError(err error) bool {
	return hasAPIErrorCode(err, "ValidationError")
}

// IsThrottling checks if the error indicates API rate limiting.
// Throttled calls are retryable.
func IsThrottling(err error) bool {
	return hasAPIErrorCode(err, "Throttling", "ThrottlingException", "RequestLimitExceeded")
}

// hasAPIErrorCode checks if the error is an API error with one of the given
// codes. CloudFormation reports most rejections through generic API error
// codes rather than typed SDK errors.
func hasAPIErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		for _, code := range codes {
			if apiErr.ErrorCode() == code {
				return true
			}
		}
	}
	return false
}
