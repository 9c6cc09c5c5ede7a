package aws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/aws/aws-parallelcluster-ui/api/v1alpha1"
)

// ErrParameterNotFound is returned when the requested SSM parameter does not exist
var ErrParameterNotFound = errors.New("SSM parameter not found")

// SSMClientInterface defines the interface for SSM operations we need
type SSMClientInterface interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SSMClient reads configuration from AWS Systems Manager Parameter Store
type SSMClient struct {
	client SSMClientInterface
	region string
}

// NewSSMClient creates a new SSM client. An empty region falls back to the
// default AWS configuration chain.
func NewSSMClient(ctx context.Context, region string) (*SSMClient, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SSMClient{
		client: ssm.NewFromConfig(cfg),
		region: cfg.Region,
	}, nil
}

// NewSSMClientWithMock creates an SSMClient with a mock client for testing
func NewSSMClientWithMock(mockClient SSMClientInterface, region string) *SSMClient {
	return &SSMClient{
		client: mockClient,
		region: region,
	}
}

// GetRegion returns the AWS region for this SSM client
func (s *SSMClient) GetRegion() string {
	return s.region
}

// GetParameterValue returns the decrypted value of an SSM parameter
func (s *SSMClient) GetParameterValue(ctx context.Context, name string) (string, error) {
	logger := log.FromContext(ctx).WithName("ssm-client")
	logger.V(1).Info("Reading SSM parameter", "name", name, "region", s.region)

	input := &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	}

	result, err := s.client.GetParameter(ctx, input)
	if err != nil {
		var notFound *types.ParameterNotFound
		if errors.As(err, &notFound) {
			return "", fmt.Errorf("%w: %s", ErrParameterNotFound, name)
		}
		logger.Error(err, "Failed to read SSM parameter", "name", name, "region", s.region)
		return "", fmt.Errorf("failed to get SSM parameter %s: %w", name, err)
	}

	if result.Parameter == nil || result.Parameter.Value == nil {
		return "", fmt.Errorf("SSM parameter %s has no value", name)
	}

	return *result.Parameter.Value, nil
}

// GetClusterResourcesLimits reads the cluster resources limits stored as a
// JSON document in the given SSM parameter
func (s *SSMClient) GetClusterResourcesLimits(ctx context.Context, name string) (*v1alpha1.ClusterResourcesLimits, error) {
	value, err := s.GetParameterValue(ctx, name)
	if err != nil {
		return nil, err
	}

	limits := &v1alpha1.ClusterResourcesLimits{}
	if err := json.Unmarshal([]byte(value), limits); err != nil {
		return nil, fmt.Errorf("invalid cluster resources limits in SSM parameter %s: %w", name, err)
	}

	if limits.MaxQueues < 0 || limits.MaxCRPerQueue < 0 || limits.MaxCRPerCluster < 0 {
		return nil, fmt.Errorf("invalid cluster resources limits in SSM parameter %s: limits must not be negative", name)
	}

	log.FromContext(ctx).WithName("ssm-client").Info("Loaded cluster resources limits",
		"parameter", name,
		"maxQueues", limits.MaxQueues,
		"maxCRPerQueue", limits.MaxCRPerQueue,
		"maxCRPerCluster", limits.MaxCRPerCluster,
	)

	return limits, nil
}
