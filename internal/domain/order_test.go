package domain

import "testing"

func TestStatusForwardPath(t *testing.T) {
	steps := []Status{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted}
	for i := 0; i < len(steps)-1; i++ {
		if !steps[i].CanTransitionTo(steps[i+1]) {
			t.Fatalf("expected %s -> %s to be allowed", steps[i], steps[i+1])
		}
	}
}

func TestStatusNoSkipping(t *testing.T) {
	if StatusPending.CanTransitionTo(StatusReady) {
		t.Fatal("Pending -> Ready must not skip Confirmed/Preparing")
	}
	if StatusConfirmed.CanTransitionTo(StatusCompleted) {
		t.Fatal("Confirmed -> Completed must not skip Preparing/Ready")
	}
	if StatusPending.CanTransitionTo(StatusPending) {
		t.Fatal("self transition must be rejected")
	}
}

func TestStatusCancelPath(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusPreparing} {
		if !s.CanTransitionTo(StatusCancelled) {
			t.Fatalf("expected %s -> Cancelled to be allowed", s)
		}
	}
	if StatusReady.CanTransitionTo(StatusCancelled) {
		t.Fatal("Ready orders must not be cancellable")
	}
}

func TestTerminalStatesAbsorb(t *testing.T) {
	targets := []Status{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled}
	for _, terminal := range []Status{StatusCompleted, StatusCancelled} {
		if !terminal.Terminal() {
			t.Fatalf("%s should be terminal", terminal)
		}
		for _, target := range targets {
			if terminal.CanTransitionTo(target) {
				t.Fatalf("terminal %s must not transition to %s", terminal, target)
			}
		}
	}
}

func TestParseStatus(t *testing.T) {
	if s, ok := ParseStatus("Preparing"); !ok || s != StatusPreparing {
		t.Fatalf("ParseStatus(Preparing) = %q, %v", s, ok)
	}
	if _, ok := ParseStatus("preparing"); ok {
		t.Fatal("status parsing is case sensitive")
	}
	if _, ok := ParseStatus("Shipped"); ok {
		t.Fatal("unknown status must not parse")
	}
}
