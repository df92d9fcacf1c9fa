package cloudformation

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// ConnectionError indicates no usable provider handle could be established.
type ConnectionError struct {
	Region string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("could not connect to cloudformation API in %s: %v", e.Region, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// RealClient implements Client using the AWS CloudFormation API.
type RealClient struct {
	api    StackAPI
	region string
}

// ConnectOption configures a connection attempt.
type ConnectOption func(*connectConfig)

type connectConfig struct {
	accessKey string
	secretKey string
	api       StackAPI
}

// WithStaticCredentials pins static credentials instead of the default
// AWS credential chain.
func WithStaticCredentials(accessKey, secretKey string) ConnectOption {
	return func(c *connectConfig) {
		c.accessKey = accessKey
		c.secretKey = secretKey
	}
}

// WithStackAPI substitutes the underlying SDK client (useful for testing).
func WithStackAPI(api StackAPI) ConnectOption {
	return func(c *connectConfig) {
		c.api = api
	}
}

// Connect establishes a CloudFormation client for the given region.
// An empty or unresolvable region yields a *ConnectionError.
func Connect(ctx context.Context, region string, opts ...ConnectOption) (*RealClient, error) {
	var cc connectConfig
	for _, opt := range opts {
		opt(&cc)
	}

	if cc.api != nil {
		return &RealClient{api: cc.api, region: region}, nil
	}

	if region == "" {
		return nil, &ConnectionError{Region: region, Err: fmt.Errorf("no region given")}
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if cc.accessKey != "" {
		loadOpts = append(loadOpts,
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cc.accessKey, cc.secretKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, &ConnectionError{Region: region, Err: err}
	}
	if cfg.Region == "" {
		return nil, &ConnectionError{Region: region, Err: fmt.Errorf("resolved config has no region")}
	}

	return &RealClient{api: cloudformation.NewFromConfig(cfg), region: region}, nil
}

// Region returns the region this client is connected to.
func (c *RealClient) Region() string {
	return c.region
}

// CreateStack implements Client.
func (c *RealClient) CreateStack(ctx context.Context, name, templateBody string, parameters map[string]string) error {
	_, err := c.api.CreateStack(ctx, &cloudformation.CreateStackInput{
		StackName:    aws.String(name),
		TemplateBody: aws.String(templateBody),
		Parameters:   toSDKParameters(parameters),
	})
	if err != nil {
		return fmt.Errorf("failed to create stack %s: %w", name, err)
	}
	return nil
}

// DescribeStacks implements Client.
func (c *RealClient) DescribeStacks(ctx context.Context) ([]Stack, error) {
	out, err := c.api.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe stacks: %w", err)
	}

	stacks := make([]Stack, 0, len(out.Stacks))
	for _, s := range out.Stacks {
		stacks = append(stacks, Stack{
			Name:       aws.ToString(s.StackName),
			Parameters: fromSDKParameters(s.Parameters),
			Outputs:    fromSDKOutputs(s.Outputs),
		})
	}
	return stacks, nil
}

// DescribeStackEvents implements Client.
func (c *RealClient) DescribeStackEvents(ctx context.Context, stackName string) ([]Event, error) {
	out, err := c.api.DescribeStackEvents(ctx, &cloudformation.DescribeStackEventsInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe events for stack %s: %w", stackName, err)
	}

	events := make([]Event, 0, len(out.StackEvents))
	for _, e := range out.StackEvents {
		ev := Event{
			ID:                aws.ToString(e.EventId),
			LogicalResourceID: aws.ToString(e.LogicalResourceId),
			ResourceType:      aws.ToString(e.ResourceType),
			Status:            string(e.ResourceStatus),
			StatusReason:      aws.ToString(e.ResourceStatusReason),
		}
		if e.Timestamp != nil {
			ev.Timestamp = *e.Timestamp
		}
		events = append(events, ev)
	}
	return events, nil
}

func toSDKParameters(parameters map[string]string) []types.Parameter {
	if len(parameters) == 0 {
		return nil
	}
	params := make([]types.Parameter, 0, len(parameters))
	for key, value := range parameters {
		params = append(params, types.Parameter{
			ParameterKey:   aws.String(key),
			ParameterValue: aws.String(value),
		})
	}
	return params
}

func fromSDKParameters(params []types.Parameter) map[string]string {
	result := make(map[string]string, len(params))
	for _, p := range params {
		result[aws.ToString(p.ParameterKey)] = aws.ToString(p.ParameterValue)
	}
	return result
}

func fromSDKOutputs(outputs []types.Output) map[string]string {
	result := make(map[string]string, len(outputs))
	for _, o := range outputs {
		result[aws.ToString(o.OutputKey)] = aws.ToString(o.OutputValue)
	}
	return result
}
