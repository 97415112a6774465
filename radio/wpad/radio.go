package wpad

import (
	"time"

	"github.com/bricc-land/briccd/radio"
	"github.com/go-errors/errors"
	"github.com/vishvananda/netlink"
)

// scanTimeout bounds how long a scan waits for wpa_supplicant's ScanDone
// signal before falling back to whatever BSSs are already known.
const scanTimeout = 10 * time.Second

// check Radio compliance to its interface during compile time
var _ radio.Radio = (*Radio)(nil)

type Config struct {
	// Interface is the wireless interface name, for example wlan0.
	Interface string
	Logger    Logger
}

// Radio drives a physical adapter through wpa_supplicant. The wifi manager
// goroutine is the only caller, so no locking happens here.
type Radio struct {
	log    Logger
	ifname string
	wpa    *Wpa
	iface  *Interface
}

func New(config *Config) *Radio {
	r := &Radio{
		ifname: config.Interface,
		wpa:    &Wpa{},
	}

	if config.Logger != nil {
		r.log = config.Logger
	} else {
		r.log = noopLogger{}
	}

	return r
}

func (r *Radio) Start() error {
	link, err := netlink.LinkByName(r.ifname)
	if err != nil {
		return errors.Errorf("could not find link %v: %v", r.ifname, err)
	}

	err = netlink.LinkSetUp(link)
	if err != nil {
		return errors.Errorf("could not bring up link %v: %v", r.ifname, err)
	}

	err = r.wpa.Start()
	if err != nil {
		return errors.Errorf("could not start wpa: %v", err)
	}

	iface, err := r.wpa.GetInterface(r.ifname)
	if err != nil {
		_ = r.wpa.Stop()
		return errors.Errorf("could not find interface %v: %v", r.ifname, err)
	}

	r.iface = iface

	return nil
}

func (r *Radio) Stop() error {
	err := r.wpa.Stop()
	if err != nil {
		return errors.Errorf("could not stop wpa: %v", err)
	}

	return nil
}

// Scan triggers an active scan, waits for completion and reports every
// discovered station in wpa_supplicant's own order.
func (r *Radio) Scan() ([]*radio.Station, error) {
	doneClient, err := r.iface.ScanDone()
	if err != nil {
		return nil, errors.Errorf("unable to listen for scan completion: %v", err)
	}

	defer doneClient.Cancel()

	err = r.iface.Scan()
	if err != nil {
		return nil, errors.Errorf("unable to scan: %v", err)
	}

	select {
	case done := <-doneClient.ScanDone:
		if !done {
			r.log.Warnf("Scan finished unsuccessfully, reading results anyway.")
		}
	case <-time.After(scanTimeout):
		r.log.Warnf("Scan did not finish within %v, reading results anyway.", scanTimeout)
	}

	bsss, err := r.iface.BSSs()
	if err != nil {
		return nil, errors.Errorf("unable to get BSSs: %v", err)
	}

	var stations []*radio.Station

	for _, bss := range bsss {
		b, err := bss.GetAll()
		if err != nil {
			r.log.Debugf("Skipping unreadable BSS %v: %v", bss, err)
			continue
		}

		stations = append(stations, &radio.Station{
			Ssid:   b.Ssid,
			Signal: signalStrength(b.Signal),
		})
	}

	return stations, nil
}

// Apply reconfigures wpa_supplicant to match the target. The previous
// network set is always dropped first so a failed apply leaves the radio
// unconfigured rather than on a stale target.
func (r *Radio) Apply(target radio.Target) error {
	err := r.iface.RemoveAllNetworks()
	if err != nil {
		return errors.Errorf("could not remove previous networks: %v", err)
	}

	switch target := target.(type) {
	case *radio.IdleTarget:
		err := r.iface.Disconnect()
		if err != nil {
			return errors.Errorf("could not disconnect: %v", err)
		}
	case *radio.ApTarget:
		ap, err := r.iface.AddNetwork(apNetworkArgs(&target.Ap))
		if err != nil {
			return errors.Errorf("could not add access point network: %v", err)
		}

		err = r.iface.SelectNetwork(ap)
		if err != nil {
			return errors.Errorf("could not select access point network: %v", err)
		}
	case *radio.ClientTarget:
		client, err := r.iface.AddNetwork(clientNetworkArgs(&target.Client))
		if err != nil {
			return errors.Errorf("could not add client network: %v", err)
		}

		err = r.iface.SelectNetwork(client)
		if err != nil {
			return errors.Errorf("could not select client network: %v", err)
		}
	case *radio.MixedTarget:
		ap, err := r.iface.AddNetwork(apNetworkArgs(&target.Ap))
		if err != nil {
			return errors.Errorf("could not add access point network: %v", err)
		}

		client, err := r.iface.AddNetwork(clientNetworkArgs(&target.Client))
		if err != nil {
			return errors.Errorf("could not add client network: %v", err)
		}

		err = r.iface.SelectNetwork(client)
		if err != nil {
			return errors.Errorf("could not select client network: %v", err)
		}

		err = ap.Enable()
		if err != nil {
			return errors.Errorf("could not enable access point network: %v", err)
		}
	default:
		return errors.Errorf("unsupported radio target %T", target)
	}

	return nil
}

func clientNetworkArgs(client *radio.ClientConfig) map[string]interface{} {
	args := map[string]interface{}{
		"ssid": client.Ssid,
	}

	if client.Psk != "" {
		args["psk"] = client.Psk
	} else {
		args["key_mgmt"] = "NONE"
	}

	if client.Channel != nil {
		args["frequency"] = channelFrequency(*client.Channel)
	}

	return args
}

func apNetworkArgs(ap *radio.ApConfig) map[string]interface{} {
	args := map[string]interface{}{
		"ssid":      ap.Ssid,
		"mode":      int32(2),
		"frequency": channelFrequency(ap.Channel),
	}

	switch ap.Auth {
	case radio.AuthOpen:
		args["key_mgmt"] = "NONE"
	default:
		args["psk"] = ap.Psk
		args["key_mgmt"] = "WPA-PSK"
	}

	return args
}

// channelFrequency maps a 2.4 GHz channel number to its center frequency in
// MHz, which is what wpa_supplicant expects.
func channelFrequency(channel uint8) int32 {
	if channel == 14 {
		return 2484
	}

	return 2407 + int32(channel)*5
}

// signalStrength converts a dBm reading into a rough 0-100 quality value,
// clamping at -100 dBm and -50 dBm.
func signalStrength(dbm int16) radio.SignalStrength {
	if dbm <= -100 {
		return 0
	}

	if dbm >= -50 {
		return 100
	}

	return radio.SignalStrength(2 * (dbm + 100))
}
