// Package wifi reconciles the desired wireless configuration of the device
// against the physical radio. A single manager goroutine owns the radio and
// the set of known networks; everything else talks to it through messages.
package wifi

import (
	"time"

	"github.com/bricc-land/briccd/radio"
)

type Ssid = string
type Psk = string
type SignalStrength = radio.SignalStrength

// DefaultScanPeriod is how long the manager waits for a command before
// emitting an idle heartbeat.
const DefaultScanPeriod = 60 * time.Second
