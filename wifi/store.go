package wifi

import "github.com/bricc-land/briccd/radio"

// apChannel is the fixed channel the access point broadcasts on.
const apChannel uint8 = 1

// networkStore holds every network the device is willing to join plus the
// optional access point it may broadcast. It lives for the whole lifetime of
// the manager goroutine, which mutates it exclusively.
type networkStore struct {
	clients map[Ssid]radio.ClientConfig
	ap      *radio.ApConfig
}

func newNetworkStore() *networkStore {
	return &networkStore{
		clients: make(map[Ssid]radio.ClientConfig),
	}
}

// registerClient inserts or overwrites the client configuration for ssid.
// Last write wins. The key format is not validated here, the radio driver
// rejects bad keys at apply time.
func (s *networkStore) registerClient(ssid Ssid, psk Psk) {
	s.clients[ssid] = radio.ClientConfig{
		Ssid: ssid,
		Psk:  psk,
	}
}

// setAccessPoint replaces any prior access point configuration.
func (s *networkStore) setAccessPoint(ssid Ssid, psk Psk) {
	s.ap = &radio.ApConfig{
		Ssid:    ssid,
		Psk:     psk,
		Channel: apChannel,
		Auth:    radio.AuthWpa2Wpa3Psk,
	}
}
