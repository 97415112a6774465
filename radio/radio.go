package radio

import "fmt"

// SignalStrength is a relative signal quality from 0 (unusable) to 100 (perfect).
type SignalStrength = uint8

// Station is one network seen during a scan. Stations are reported in the
// order the driver discovered them, not ordered by signal strength.
type Station struct {
	Ssid   string
	Signal SignalStrength
}

// AuthMethod selects how the broadcast access point authenticates stations.
type AuthMethod int

const (
	AuthOpen AuthMethod = iota
	AuthWpa2Psk
	AuthWpa2Wpa3Psk
)

func (a AuthMethod) String() string {
	switch a {
	case AuthOpen:
		return "open"
	case AuthWpa2Psk:
		return "wpa2-psk"
	case AuthWpa2Wpa3Psk:
		return "wpa2-wpa3-psk"
	default:
		return "invalid auth method"
	}
}

// ClientConfig describes one network the device is willing to join.
type ClientConfig struct {
	Ssid string
	Psk  string
	// Channel pins the client to a fixed channel when set.
	Channel *uint8
}

// ApConfig describes the access point the device itself may broadcast.
type ApConfig struct {
	Ssid    string
	Psk     string
	Channel uint8
	Auth    AuthMethod
}

// Target tells the radio what it should be doing right now. It is one of
// ApTarget, ClientTarget, MixedTarget or IdleTarget, consumed through an
// exhaustive type switch by every driver.
type Target interface{}

// ApTarget broadcasts an access point only.
type ApTarget struct {
	Ap ApConfig
}

// ClientTarget joins a client network only.
type ClientTarget struct {
	Client ClientConfig
}

// MixedTarget joins a client network while also broadcasting an access point.
type MixedTarget struct {
	Client ClientConfig
	Ap     ApConfig
}

// IdleTarget leaves the radio unconfigured.
type IdleTarget struct{}

// Radio is the capability the wifi manager consumes. The manager is the only
// caller, so implementations don't need to be safe for concurrent use.
type Radio interface {
	Start() error
	Stop() error
	Scan() ([]*Station, error)
	Apply(target Target) error
}

// NotFoundError reports a scan or connect failure attributable to one
// specific target network. All other driver errors are treated as opaque.
type NotFoundError struct {
	Ssid string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("network %v not found", e.Ssid)
}
