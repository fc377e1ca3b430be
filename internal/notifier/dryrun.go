package notifier

import (
	"fmt"
	"io"
)

// DryRunNotifier prints alerts instead of delivering them.
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a dry-run notifier writing to out.
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Notify prints the alert that would be sent.
func (n *DryRunNotifier) Notify(alert Alert) error {
	fmt.Fprintf(n.out, "--- %s alert for %s ---\n", alert.Kind, alert.Key)
	fmt.Fprintln(n.out, FormatAlert(alert))
	return nil
}
