package statusled

import "sync"

// check MockLed compliance to its interface during compile time
var _ Led = (*MockLed)(nil)

// MockLed records state changes instead of driving hardware.
type MockLed struct {
	mtx    sync.Mutex
	states []State
}

func NewMockLed() *MockLed {
	return &MockLed{}
}

func (l *MockLed) Start() error {
	return nil
}

func (l *MockLed) Stop() error {
	return nil
}

func (l *MockLed) SetState(state State) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.states = append(l.states, state)
}

// States returns every state set so far, oldest first.
func (l *MockLed) States() []State {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	states := make([]State, len(l.states))
	copy(states, l.states)

	return states
}

// CurrentState returns the most recently set state.
func (l *MockLed) CurrentState() State {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if len(l.states) == 0 {
		return Off
	}

	return l.states[len(l.states)-1]
}
