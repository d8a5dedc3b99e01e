package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pkordes/smart-travel-planner/internal/domain"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// FormatError renders err for stderr.
func FormatError(err error) string {
	return errorColor.Sprintf("✗ %v", err)
}

func printSection(w io.Writer, title string) {
	fmt.Fprintln(w)
	headerColor.Fprintf(w, "▸ %s\n", title)
}

func printSuccess(w io.Writer, msg string) { successColor.Fprintf(w, "✓ %s\n", msg) }
func printWarning(w io.Writer, msg string) { warningColor.Fprintf(w, "⚠ %s\n", msg) }
func printFailure(w io.Writer, msg string) { errorColor.Fprintf(w, "✗ %s\n", msg) }

func printLabelValue(w io.Writer, label, value string) {
	labelColor.Fprintf(w, "  %s: ", label)
	fmt.Fprintln(w, value)
}

func printTips(w io.Writer, tips []domain.Tip) {
	for _, t := range tips {
		labelColor.Fprintf(w, "  • %s\n", t.Title)
		dimColor.Fprintf(w, "    %s\n", t.Content)
	}
}

// printTable prints rows under headers with padded columns.
func printTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		dimColor.Fprintln(w, "  (none)")
		return
	}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := len([]rune(cell)); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}

	fmt.Fprint(w, "  ")
	for i, h := range headers {
		headerColor.Fprint(w, pad(h, widths[i]))
		fmt.Fprint(w, "  ")
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		fmt.Fprint(w, "  ")
		for i, cell := range row {
			fmt.Fprint(w, pad(cell, widths[i]), "  ")
		}
		fmt.Fprintln(w)
	}
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
