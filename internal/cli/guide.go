package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/guide"
	"github.com/pkordes/smart-travel-planner/internal/service"
)

func newGuideCmd(opts *options) *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "guide DESTINATION",
		Short: "Show language, etiquette and food notes for a destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guides := service.NewGuideService(opts.guides)
			w := cmd.OutOrStdout()
			ctx := context.Background()

			if asCSV {
				entry, err := guides.Phrasebook(ctx, args[0])
				if err != nil {
					return err
				}
				return guide.WritePhrasebookCSV(w, entry.Phrases)
			}

			culture, err := guides.Culture(ctx, args[0])
			if err != nil {
				return err
			}
			if opts.json {
				return outputJSON(w, culture)
			}
			printCulture(w, culture)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asCSV, "csv", false, "print the phrasebook as CSV")
	cmd.AddCommand(newGuideExportCmd(opts))
	return cmd
}

// newGuideExportCmd writes the guide table as YAML in the GUIDE_FILE layout.
func newGuideExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the guide data as YAML, ready to edit and serve via GUIDE_FILE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, ok := opts.guides.(*guide.Table)
			if !ok {
				return fmt.Errorf("guide source %T cannot be exported", opts.guides)
			}
			out, err := table.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func printCulture(w io.Writer, c domain.Culture) {
	printSection(w, "Language: "+c.Language)
	rows := make([][]string, 0, len(c.Phrases))
	for _, p := range c.Phrases {
		rows = append(rows, []string{p.English, p.Local, p.Pronunciation})
	}
	printTable(w, []string{"English", "Local", "Pronunciation"}, rows)

	printSection(w, "Etiquette")
	printTips(w, c.Etiquette)
	printSection(w, "Food")
	printTips(w, c.Food)
	printSection(w, "Practical tips")
	printTips(w, c.Tips)
}
