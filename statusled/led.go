// Package statusled drives the connectivity LED on the front of the device.
package statusled

type State int

const (
	// Off means the daemon is not running or shutting down.
	Off State = iota
	// Searching blinks fast while no network is available.
	Searching
	// ApOnly blinks slowly while only the own access point is up.
	ApOnly
	// Connected is solid on.
	Connected
)

func (s State) String() string {
	switch s {
	case Off:
		return "off"
	case Searching:
		return "searching"
	case ApOnly:
		return "ap-only"
	case Connected:
		return "connected"
	default:
		return "invalid state"
	}
}

type Led interface {
	Start() error
	Stop() error
	SetState(state State)
}
