// entry point for queuelint, the ParallelCluster queue configuration checker
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	"github.com/aws/aws-parallelcluster-ui/internal/aws"
	"github.com/aws/aws-parallelcluster-ui/internal/config"
)

// Exit codes
const (
	exitInvalid = 1
	exitError   = 2
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "queuelint",
		Short: "Check the Slurm queues of a ParallelCluster configuration",
		Long: `queuelint checks the Slurm queues of a ParallelCluster cluster configuration.

Compute resources of a queue must name at least one instance type and must not
share instance types with each other. Queues and compute resources are counted
against the cluster resource limits, read from an SSM parameter when one is
configured and otherwise taken from the defaults of the ParallelCluster version.

Flags default to the QUEUELINT_* and PCLUSTER_VERSION environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			// Setup logger
			log.SetLogger(zap.New(zap.UseDevMode(cfg.DevLogging)))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.LimitsParameter, "limits-parameter", cfg.LimitsParameter,
		fmt.Sprintf("SSM parameter holding the cluster resource limits (e.g. %s). "+
			"Empty uses the version defaults only.", aws.DefaultClusterResourcesLimitsParameter))
	flags.StringVar(&cfg.PClusterVersion, "pcluster-version", cfg.PClusterVersion,
		"ParallelCluster version used to select the default limits")
	flags.DurationVar(&cfg.LimitsTimeout, "limits-timeout", cfg.LimitsTimeout, "Timeout for reading the limits parameter")
	flags.StringVarP(&cfg.OutputFormat, "output", "o", cfg.OutputFormat, "Output format (yaml or json)")
	flags.BoolVar(&cfg.DevLogging, "dev-logging", cfg.DevLogging, "Enable development logging")

	root.AddCommand(newCheckCmd(cfg))
	root.AddCommand(newLimitsCmd(cfg))
	return root
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(exitError)
	}

	if err := newRootCmd(cfg).ExecuteContext(signals.SetupSignalHandler()); err != nil {
		if errors.Is(err, errInvalidConfiguration) {
			os.Exit(exitInvalid)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
}
