package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/form"
	"github.com/pkordes/smart-travel-planner/internal/planclient"
	"github.com/pkordes/smart-travel-planner/internal/service"
	"github.com/pkordes/smart-travel-planner/internal/tripwindow"
)

func newPlanCmd(opts *options) *cobra.Command {
	var startFlag, endFlag, preferences string

	cmd := &cobra.Command{
		Use:   "plan DESTINATION",
		Short: "Plan a trip with the planning service",
		Long: `Fill the trip form and submit it to the planning service at --server.
Dates default to today through two days from today. An end date before the
start date is moved to the start date, as the form does.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.server == "" {
				return errors.New("no planning service configured: pass --server or set PLANNER_URL")
			}

			f := form.New(opts.clock)
			f.Destination = args[0]
			if cmd.Flags().Changed("preferences") {
				f.Preferences = preferences
			}
			if startFlag != "" {
				d, err := tripwindow.ParseDate(startFlag)
				if err != nil {
					return err
				}
				f.SetStart(d)
			}
			if endFlag != "" {
				d, err := tripwindow.ParseDate(endFlag)
				if err != nil {
					return err
				}
				f.SetEnd(d)
			}
			w := cmd.OutOrStdout()
			if f.Notice != "" && !opts.json {
				printWarning(w, f.Notice)
			}

			client, err := planclient.New(opts.server, &http.Client{Timeout: opts.timeout})
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
			planner := service.NewPlannerService(client, service.NewGuideService(opts.guides), logger)

			view, err := planner.Submit(context.Background(), f)
			if err != nil {
				return userError(err)
			}
			if opts.json {
				return outputJSON(w, view)
			}
			printView(w, view)
			return nil
		},
	}
	cmd.Flags().StringVar(&startFlag, "start", "", "start date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&endFlag, "end", "", "end date, YYYY-MM-DD (default today+2)")
	cmd.Flags().StringVar(&preferences, "preferences", form.DefaultPreferences, "interests passed to the planner")
	return cmd
}

// userError reduces a submission failure to the message the form would show.
func userError(err error) error {
	var verr *form.ValidationError
	var terr *domain.TransportError
	switch {
	case errors.As(err, &verr):
		return errors.New(verr.Message)
	case errors.As(err, &terr):
		return errors.New(terr.UserMessage())
	default:
		return err
	}
}

func printView(w io.Writer, v domain.TripView) {
	headerColor.Fprintf(w, "%s, %d days", v.Destination, v.Days)
	if v.StartDate != "" {
		fmt.Fprintf(w, " from %s", v.StartDate)
	}
	fmt.Fprintln(w)
	printLabelValue(w, "Preferences", v.Preferences)

	printSection(w, "Weather")
	rows := make([][]string, 0, len(v.Weather))
	for _, d := range v.Weather {
		rows = append(rows, []string{d.Label, fmt.Sprintf("%d°C", d.TempC), d.Condition})
	}
	printTable(w, []string{"Day", "Temp", "Conditions"}, rows)

	if v.Seasonal != nil {
		printSeasonal(w, *v.Seasonal)
	}
	printCulture(w, v.Culture)

	printSection(w, "Itinerary")
	fmt.Fprintln(w, v.Itinerary)
}
