package radio

import "github.com/go-errors/errors"

// check MockRadio compliance to its interface during compile time
var _ Radio = (*MockRadio)(nil)

// MockRadio fakes a physical adapter. It reports a configurable station list
// and records every applied target, which makes it useful both for tests and
// for running the daemon on hosts without a wireless adapter.
type MockRadio struct {
	// Stations is what the next Scan will report, in order.
	Stations []*Station
	// ScanErr makes Scan fail when set.
	ScanErr error
	// ApplyErr makes Apply fail when set.
	ApplyErr error

	started bool
	scans   int
	applied []Target
}

func NewMockRadio() *MockRadio {
	return &MockRadio{}
}

func (r *MockRadio) Start() error {
	r.started = true
	return nil
}

func (r *MockRadio) Stop() error {
	r.started = false
	return nil
}

func (r *MockRadio) Scan() ([]*Station, error) {
	if !r.started {
		return nil, errors.New("mock radio is not started")
	}

	r.scans++

	if r.ScanErr != nil {
		return nil, r.ScanErr
	}

	stations := make([]*Station, len(r.Stations))
	copy(stations, r.Stations)

	return stations, nil
}

func (r *MockRadio) Apply(target Target) error {
	if !r.started {
		return errors.New("mock radio is not started")
	}

	if r.ApplyErr != nil {
		return r.ApplyErr
	}

	switch target.(type) {
	case *ApTarget, *ClientTarget, *MixedTarget, *IdleTarget:
	default:
		return errors.Errorf("unsupported radio target %T", target)
	}

	r.applied = append(r.applied, target)

	return nil
}

// Scans returns how many scans were performed.
func (r *MockRadio) Scans() int {
	return r.scans
}

// Applied returns every target applied so far, oldest first.
func (r *MockRadio) Applied() []Target {
	return r.applied
}

// LastApplied returns the most recently applied target, or nil.
func (r *MockRadio) LastApplied() Target {
	if len(r.applied) == 0 {
		return nil
	}

	return r.applied[len(r.applied)-1]
}
