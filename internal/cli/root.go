// Package cli implements tripctl, a terminal front end to the trip form,
// the planning endpoint and the destination guides.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/smart-travel-planner/internal/clock"
	"github.com/pkordes/smart-travel-planner/internal/config"
	"github.com/pkordes/smart-travel-planner/internal/guide"
)

var version = "dev"

// SetVersion overrides the version printed by `tripctl version`.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// options are the global flags plus the collaborators commands share.
type options struct {
	server  string
	json    bool
	timeout time.Duration

	clock  clock.Clock
	guides guide.Lookup
}

// NewRootCmd builds the tripctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{clock: clock.RealClock{}, guides: guide.Builtin()}
	return newRootCmd(opts)
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "tripctl",
		Short: "Plan trips from the terminal",
		Long: `tripctl checks trip dates, asks the planning service for an itinerary and
shows culture, language and seasonal notes for a destination.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			if opts.server == "" {
				opts.server = os.Getenv("PLANNER_URL")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.server, "server", "", "planning service base URL (default $PLANNER_URL)")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Output in JSON format")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", config.DefaultPlannerTimeout, "timeout for the planning call")

	root.AddCommand(
		newWindowCmd(opts),
		newPlanCmd(opts),
		newGuideCmd(opts),
		newSeasonCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print the tripctl version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)
	return root
}

// Execute runs tripctl with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
