package wifi

import (
	"fmt"

	"github.com/bricc-land/briccd/radio"
	"github.com/go-errors/errors"
)

// ErrStopped is returned when a command is issued after the manager stopped.
var ErrStopped = errors.New("wifi manager is stopped")

// FatalError is an unrecoverable setup or apply failure. The manager keeps
// running afterwards but leaves the radio in an undefined applied state.
type FatalError struct {
	Reason string
}

func (e *FatalError) Error() string {
	return e.Reason
}

// NetworkNotFoundError is a failure attributable to one specific target
// network. It currently travels the same reporting path as FatalError but is
// kept distinct so the ssid survives into the status payload.
type NetworkNotFoundError struct {
	Ssid Ssid
}

func (e *NetworkNotFoundError) Error() string {
	return fmt.Sprintf("network %v not found", e.Ssid)
}

// fromRadioError converts an opaque driver error into the wifi error
// taxonomy. Only the driver's not-found case is distinguishable.
func fromRadioError(err error) error {
	var notFound *radio.NotFoundError
	if errors.As(err, &notFound) {
		return &NetworkNotFoundError{Ssid: notFound.Ssid}
	}

	return &FatalError{Reason: "unknown error during radio operation"}
}
