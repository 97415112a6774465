package connectivity

import (
	"context"
	"sync"
)

type State int

const (
	Offline State = iota
	ApOnly
	Online
)

func (s State) String() string {
	switch s {
	case Offline:
		return "OFFLINE"
	case ApOnly:
		return "AP_ONLY"
	case Online:
		return "ONLINE"
	default:
		return "INVALID STATE"
	}
}

// Tracker keeps the current connectivity state and lets callers wait for it
// to move on. Safe for concurrent use.
type Tracker struct {
	mtx     sync.Mutex
	state   State
	changed chan struct{}
}

func NewTracker() *Tracker {
	return &Tracker{
		state:   Offline,
		changed: make(chan struct{}),
	}
}

func (t *Tracker) CurrentState() State {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	return t.state
}

// SetState publishes a new state and wakes every waiter. Setting the same
// state again is a no-op.
func (t *Tracker) SetState(state State) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if state == t.state {
		return
	}

	t.state = state
	close(t.changed)
	t.changed = make(chan struct{})
}

// WaitForStateChange blocks until the state differs from last or the context
// ends. It reports whether a state change happened.
func (t *Tracker) WaitForStateChange(ctx context.Context, last State) bool {
	t.mtx.Lock()

	if t.state != last {
		t.mtx.Unlock()
		return true
	}

	changed := t.changed
	t.mtx.Unlock()

	select {
	case <-changed:
		return true
	case <-ctx.Done():
		return false
	}
}
