package wifi

import "fmt"

// Status reports the outcome of one reconciliation pass. Exactly one status
// is emitted per processed command or idle tick; statuses are one-shot
// messages, the manager keeps no history.
//
// It is one of ConnectedStatus, ApOnlyStatus, DisconnectedStatus or
// ErrorStatus.
type Status interface {
	status()
}

// ConnectedStatus means the radio is joined to a known client network,
// possibly while also broadcasting the access point.
type ConnectedStatus struct {
	Ssid   Ssid
	Signal SignalStrength
}

// ApOnlyStatus means the radio is broadcasting the access point and no
// client network is configured.
type ApOnlyStatus struct {
	Ssid Ssid
}

// DisconnectedStatus means no usable configuration could be applied, or
// nothing happened during the last scan period.
type DisconnectedStatus struct{}

// ErrorStatus carries a reconciliation failure. Err is either a *FatalError
// or a *NetworkNotFoundError.
type ErrorStatus struct {
	Err error
}

func (s *ConnectedStatus) status()    {}
func (s *ApOnlyStatus) status()       {}
func (s *DisconnectedStatus) status() {}
func (s *ErrorStatus) status()        {}

func (s *ConnectedStatus) String() string {
	return fmt.Sprintf("connected to %v (signal %v)", s.Ssid, s.Signal)
}

func (s *ApOnlyStatus) String() string {
	return fmt.Sprintf("broadcasting access point %v", s.Ssid)
}

func (s *DisconnectedStatus) String() string {
	return "disconnected"
}

func (s *ErrorStatus) String() string {
	return fmt.Sprintf("error: %v", s.Err)
}
