package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmorosoli/volleywatch/internal/cycle"
	"github.com/dmorosoli/volleywatch/internal/notifier"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the cycle report in the specified format
func WriteOutput(w io.Writer, report *cycle.Report, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatText:
		return writeText(w, report)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, report *cycle.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func writeText(w io.Writer, report *cycle.Report) error {
	fmt.Fprintf(w, "Checked %q at %s: %d candidates, %d new, %d tracked\n",
		report.Keyword,
		report.CheckedAt.Format("2006-01-02 15:04:05 MST"),
		report.Candidates,
		report.NewMatches,
		report.Tracked)

	if len(report.Alerts) == 0 {
		fmt.Fprintln(w, "No alerts sent.")
		return nil
	}

	for _, a := range report.Alerts {
		fmt.Fprintf(w, "  SENT %s: %s\n", a.Kind, notifier.FormatAlert(a))
	}
	return nil
}
