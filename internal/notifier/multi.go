package notifier

import "errors"

// Multi fans an alert out to several channels. Every channel is attempted;
// the combined error of failed deliveries is returned, so a failing mirror
// does not stop the primary channel.
type Multi []Notifier

// Notify delivers the alert on every channel.
func (m Multi) Notify(alert Alert) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
