package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/aws/aws-parallelcluster-ui/api/v1alpha1"
	"github.com/aws/aws-parallelcluster-ui/internal/config"
	"github.com/aws/aws-parallelcluster-ui/internal/review"
)

// errInvalidConfiguration is returned once the report has been written for a
// configuration that does not pass the checks
var errInvalidConfiguration = errors.New("cluster configuration is invalid")

// checkOptions holds the inputs of the check command
type checkOptions struct {
	configPath  string
	subnetsPath string
}

func newCheckCmd(cfg *config.Config) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the queues of a cluster configuration",
		Long: `Check the queues of a cluster configuration and print a report holding the
errors of every compute resource and whether queues and compute resources may
still be added.

Exits with 1 when the configuration is invalid and 2 when it could not be checked.

Example:
  queuelint check --config cluster.yaml
  queuelint check --config cluster.yaml --subnets subnets.json -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cfg, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to the cluster configuration YAML")
	cmd.Flags().StringVar(&opts.subnetsPath, "subnets", "",
		"Path to the subnets used to check the queue networking, either the output of "+
			"'aws ec2 describe-subnets' or a YAML or JSON list of subnets")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runCheck(ctx context.Context, cfg *config.Config, opts checkOptions, out io.Writer) error {
	logger := log.FromContext(ctx).WithName("check")
	ctx = log.IntoContext(ctx, logger)

	data, err := os.ReadFile(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to read cluster configuration: %w", err)
	}
	clusterConfig, err := v1alpha1.ParseClusterConfiguration(data)
	if err != nil {
		return err
	}

	var subnets []v1alpha1.Subnet
	if opts.subnetsPath != "" {
		data, err := os.ReadFile(opts.subnetsPath)
		if err != nil {
			return fmt.Errorf("failed to read subnets: %w", err)
		}
		if subnets, err = v1alpha1.ParseSubnets(data); err != nil {
			return err
		}
		if subnets == nil {
			subnets = []v1alpha1.Subnet{}
		}
	}

	clusterLimits, err := resolveLimits(ctx, cfg, clusterConfig.Region, logger)
	if err != nil {
		return err
	}

	report := review.Check(clusterConfig, subnets, clusterLimits)
	logger.V(1).Info("Checked cluster configuration",
		"queues", len(report.Queues),
		"computeResources", report.ComputeResourceCount,
		"valid", report.Valid())

	if err := writeOutput(out, &report, cfg.OutputFormat); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !report.Valid() {
		return errInvalidConfiguration
	}
	return nil
}
