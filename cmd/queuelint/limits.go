package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/yaml"

	"github.com/aws/aws-parallelcluster-ui/api/v1alpha1"
	"github.com/aws/aws-parallelcluster-ui/internal/aws"
	"github.com/aws/aws-parallelcluster-ui/internal/config"
	"github.com/aws/aws-parallelcluster-ui/internal/limits"
)

func newLimitsCmd(cfg *config.Config) *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Print the cluster resource limits in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx).WithName("limits")

			clusterLimits, err := resolveLimits(log.IntoContext(ctx, logger), cfg, region, logger)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), &clusterLimits, cfg.OutputFormat)
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "AWS region of the limits parameter, defaults to the AWS configuration")

	return cmd
}

// newLimitsProvider reads the limits from SSM when a parameter is configured,
// falling back to the defaults of the configured ParallelCluster version
func newLimitsProvider(ctx context.Context, cfg *config.Config, region string, logger logr.Logger) (limits.Provider, error) {
	versionDefaults := limits.VersionProvider{Version: cfg.PClusterVersion}
	if cfg.LimitsParameter == "" {
		logger.V(1).Info("Using default limits", "pclusterVersion", cfg.PClusterVersion)
		return versionDefaults, nil
	}

	ssmClient, err := aws.NewSSMClient(ctx, region)
	if err != nil {
		return nil, err
	}

	logger.V(1).Info("Reading limits parameter", "parameter", cfg.LimitsParameter, "region", ssmClient.GetRegion())

	return limits.FallbackProvider{
		Primary:  limits.NewSSMProvider(ssmClient, cfg.LimitsParameter),
		Fallback: versionDefaults,
	}, nil
}

func resolveLimits(ctx context.Context, cfg *config.Config, region string, logger logr.Logger) (v1alpha1.ClusterResourcesLimits, error) {
	provider, err := newLimitsProvider(ctx, cfg, region, logger)
	if err != nil {
		return v1alpha1.ClusterResourcesLimits{}, fmt.Errorf("failed to create limits provider: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.LimitsTimeout)
	defer cancel()

	clusterLimits, err := provider.Limits(ctx)
	if err != nil {
		return v1alpha1.ClusterResourcesLimits{}, fmt.Errorf("failed to resolve cluster limits: %w", err)
	}
	return clusterLimits, nil
}

// writeOutput renders v in the configured format
func writeOutput(out io.Writer, v any, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case config.OutputFormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	default:
		data, err = yaml.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}
