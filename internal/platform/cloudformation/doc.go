// Package cloudformation wraps the AWS CloudFormation API behind a narrow
// client interface so the provisioning core can be exercised against test
// doubles. Only the three calls the tool needs are exposed: create stack,
// describe stacks, describe stack events.
package cloudformation
