package workorder

import "testing"

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	valid := []Status{
		StatusPending, StatusAssigned, StatusInProgress,
		StatusOnHold, StatusCompleted, StatusCancelled,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("Status(%q).IsValid() = false, want true", s)
		}
	}

	for _, s := range []Status{"", "done", "Pending"} {
		if s.IsValid() {
			t.Errorf("Status(%q).IsValid() = true, want false", s)
		}
	}
}

// TestStatus_TransitionTable enumerates every (from, to) pair against the
// expected state machine so no transition can sneak in or out unnoticed.
func TestStatus_TransitionTable(t *testing.T) {
	t.Parallel()

	all := []Status{
		StatusPending, StatusAssigned, StatusInProgress,
		StatusOnHold, StatusCompleted, StatusCancelled,
	}

	allowed := map[Status]map[Status]bool{
		StatusPending:    {StatusAssigned: true, StatusCancelled: true},
		StatusAssigned:   {StatusInProgress: true, StatusCancelled: true},
		StatusInProgress: {StatusOnHold: true, StatusCompleted: true, StatusCancelled: true},
		StatusOnHold:     {StatusInProgress: true, StatusCancelled: true},
		StatusCompleted:  {StatusCancelled: true},
		StatusCancelled:  {},
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, false},
		{StatusAssigned, false},
		{StatusInProgress, false},
		{StatusOnHold, false},
		{StatusCompleted, true},
		{StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsTerminal(); got != tt.want {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.want)
			}
		})
	}
}
