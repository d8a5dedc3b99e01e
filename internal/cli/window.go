package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkordes/smart-travel-planner/internal/form"
	"github.com/pkordes/smart-travel-planner/internal/tripwindow"
)

type windowOutput struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
	Valid     bool   `json:"valid"`
	Message   string `json:"message,omitempty"`
	Notice    string `json:"notice,omitempty"`
}

func newWindowCmd(opts *options) *cobra.Command {
	var edited string

	cmd := &cobra.Command{
		Use:   "window START END",
		Short: "Count the days between two dates (YYYY-MM-DD)",
		Long: `Count the days of a trip, both ends included, and check it fits in 1 to 30 days.

With --edited the dates are treated as a form edit: --edited start moves an
earlier end date up to the new start, --edited end replaces an end date before
the start with the start date.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := tripwindow.ParseDate(args[0])
			if err != nil {
				return err
			}
			end, err := tripwindow.ParseDate(args[1])
			if err != nil {
				return err
			}

			f := &form.State{}
			if err := f.ApplyEdit(form.Field(edited), start, end); err != nil {
				return err
			}

			out := windowOutput{
				StartDate: tripwindow.FormatDate(*f.Start),
				EndDate:   tripwindow.FormatDate(*f.End),
				Days:      f.Days,
				Valid:     f.Window.Valid,
				Message:   f.Window.Message,
				Notice:    f.Notice,
			}
			w := cmd.OutOrStdout()
			if opts.json {
				return outputJSON(w, out)
			}

			if out.Notice != "" {
				printWarning(w, out.Notice)
			}
			printLabelValue(w, "Start", out.StartDate)
			printLabelValue(w, "End", out.EndDate)
			printLabelValue(w, "Days", fmt.Sprint(out.Days))
			if out.Valid {
				printSuccess(w, "valid trip window")
			} else {
				printFailure(w, out.Message)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&edited, "edited", "", "field just edited: start or end")
	return cmd
}
