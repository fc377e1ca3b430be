package match

// Phase is the notification lifecycle of a tracked match. Transitions only
// move forward: once an alert kind has fired for a key it never fires again.
type Phase int

const (
	// PhaseNew means no alert has fired for this match yet.
	PhaseNew Phase = iota
	// PhaseUpcomingNotified means the upcoming-match alert has fired.
	PhaseUpcomingNotified
	// PhaseResultNotified means the result alert has fired.
	PhaseResultNotified
	// PhaseBoth means both alert kinds have fired.
	PhaseBoth
)

// PhaseOf maps the persisted flag pair onto a Phase.
func PhaseOf(notifiedUpcoming, notifiedResult bool) Phase {
	switch {
	case notifiedUpcoming && notifiedResult:
		return PhaseBoth
	case notifiedUpcoming:
		return PhaseUpcomingNotified
	case notifiedResult:
		return PhaseResultNotified
	default:
		return PhaseNew
	}
}

// Flags projects the phase back onto the persisted boolean pair.
func (p Phase) Flags() (notifiedUpcoming, notifiedResult bool) {
	return p == PhaseUpcomingNotified || p == PhaseBoth,
		p == PhaseResultNotified || p == PhaseBoth
}

// CanNotifyUpcoming reports whether the upcoming alert may still fire.
func (p Phase) CanNotifyUpcoming() bool {
	return p == PhaseNew || p == PhaseResultNotified
}

// CanNotifyResult reports whether the result alert may still fire.
func (p Phase) CanNotifyResult() bool {
	return p == PhaseNew || p == PhaseUpcomingNotified
}

// WithUpcoming returns the phase after the upcoming alert has been
// delivered. Applying it to a phase that already fired is a no-op.
func (p Phase) WithUpcoming() Phase {
	if p == PhaseNew {
		return PhaseUpcomingNotified
	}
	if p == PhaseResultNotified {
		return PhaseBoth
	}
	return p
}

// WithResult returns the phase after the result alert has been delivered.
func (p Phase) WithResult() Phase {
	if p == PhaseNew {
		return PhaseResultNotified
	}
	if p == PhaseUpcomingNotified {
		return PhaseBoth
	}
	return p
}

func (p Phase) String() string {
	switch p {
	case PhaseNew:
		return "new"
	case PhaseUpcomingNotified:
		return "upcoming-notified"
	case PhaseResultNotified:
		return "result-notified"
	case PhaseBoth:
		return "both"
	}
	return "unknown"
}
