package connectivity

import (
	"context"
	"testing"
	"time"
)

func TestCurrentState(t *testing.T) {
	tracker := NewTracker()

	if state := tracker.CurrentState(); state != Offline {
		t.Fatalf("expected OFFLINE, got %v", state)
	}

	tracker.SetState(Online)

	if state := tracker.CurrentState(); state != Online {
		t.Fatalf("expected ONLINE, got %v", state)
	}
}

func TestWaitForStateChange(t *testing.T) {
	tracker := NewTracker()

	done := make(chan bool)

	go func() {
		done <- tracker.WaitForStateChange(context.Background(), Offline)
	}()

	tracker.SetState(ApOnly)

	select {
	case changed := <-done:
		if !changed {
			t.Fatal("expected a state change")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a state change")
	}
}

func TestWaitForStateChangeAlreadyChanged(t *testing.T) {
	tracker := NewTracker()
	tracker.SetState(Online)

	// the state already moved on from Offline, no blocking expected
	if !tracker.WaitForStateChange(context.Background(), Offline) {
		t.Fatal("expected a state change")
	}
}

func TestWaitForStateChangeContextEnds(t *testing.T) {
	tracker := NewTracker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if tracker.WaitForStateChange(ctx, Offline) {
		t.Fatal("expected no state change")
	}
}

func TestSetSameStateIsNoop(t *testing.T) {
	tracker := NewTracker()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	tracker.SetState(Offline)

	if tracker.WaitForStateChange(ctx, Offline) {
		t.Fatal("expected no wakeup for an unchanged state")
	}
}
