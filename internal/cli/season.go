package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/service"
	"github.com/pkordes/smart-travel-planner/internal/tripwindow"
)

func newSeasonCmd(opts *options) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "season DATE",
		Short: "Show what to expect for a trip starting on DATE (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := tripwindow.ParseDate(args[0])
			if err != nil {
				return err
			}
			info, err := service.NewGuideService(opts.guides).Seasonal(start, days)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if opts.json {
				return outputJSON(w, info)
			}
			printSeasonal(w, info)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 3, "trip length in days (1-30)")
	return cmd
}

func printSeasonal(w io.Writer, s domain.SeasonalInfo) {
	printSection(w, fmt.Sprintf("%s in %s, %d days", s.Season, s.Month, s.Days))
	printLabelValue(w, "Activities", s.Activities)
	printLabelValue(w, "Events", s.Events)
	printLabelValue(w, "Packing", s.Packing)
	printLabelValue(w, "Seasonal foods", s.Foods)
}
