package notifications

import "fmt"

// Phase is a notification's position in its removal lifecycle. A live
// notification may start an exit animation (removing) or be dropped outright;
// a removing notification can only be dismissed. Dismissed is terminal.
type Phase string

const (
	PhaseLive      Phase = "live"
	PhaseRemoving  Phase = "removing"
	PhaseDismissed Phase = "dismissed"
)

// lifecycle is the set of legal phase transitions.
var lifecycle = map[Phase][]Phase{
	PhaseLive:      {PhaseRemoving, PhaseDismissed},
	PhaseRemoving:  {PhaseDismissed},
	PhaseDismissed: {},
}

// CanTransition reports whether a notification in phase p may move to next.
func (p Phase) CanTransition(next Phase) bool {
	for _, allowed := range lifecycle[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InvalidTransitionError indicates an illegal phase change was requested,
// e.g. animating a notification that is already removing.
type InvalidTransitionError struct {
	From Phase
	To   Phase
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid notification transition from %q to %q", e.From, e.To)
}

// checkTransition validates a phase change against the lifecycle table.
func checkTransition(from, to Phase) error {
	if !from.CanTransition(to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}
