package workorder

// Status represents where a work order sits in its repair lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusInProgress, StatusOnHold, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the job is finished (completed or cancelled).
// A completed order can still be voided by cancellation; no other
// transition leaves a terminal status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// transitions is the single source of truth for the status state machine.
// A transition absent from this table is not permitted. Cancellation is
// reachable from every other state, including completed (voiding a
// finished job, e.g. a warranty recall).
var transitions = map[Status][]Status{
	StatusPending:    {StatusAssigned, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusOnHold, StatusCompleted, StatusCancelled},
	StatusOnHold:     {StatusInProgress, StatusCancelled},
	StatusCompleted:  {StatusCancelled},
	StatusCancelled:  {},
}

// CanTransitionTo reports whether the state machine permits moving from s to
// next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from s in one step.
// The returned slice must not be mutated.
func (s Status) AllowedTransitions() []Status {
	return transitions[s]
}
