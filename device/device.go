package device

import (
	"net"
	"sync"

	"github.com/bricc-land/briccd/briccdb"
	"github.com/bricc-land/briccd/bricclog"
	"github.com/bricc-land/briccd/connectivity"
	"github.com/bricc-land/briccd/statusled"
	"github.com/bricc-land/briccd/wifi"
	"github.com/go-errors/errors"
)

type Config struct {
	Wifi     *wifi.Manager
	DB       *briccdb.DB
	Led      statusled.Led
	Tracker  *connectivity.Tracker
	BriccLog *bricclog.Log
	Api      Api
	// Listen is the address the api listens on. Empty disables the api.
	Listen string
	Logger Logger
}

// Device is the central controller for everything the Bricc does. It is the
// single long-lived consumer of the wifi manager's status stream and fans
// statuses out to the LED, the connectivity tracker and any subscribers.
type Device struct {
	wifi     *wifi.Manager
	db       *briccdb.DB
	led      statusled.Led
	tracker  *connectivity.Tracker
	briccLog *bricclog.Log
	api      Api
	listen   string
	log      Logger
	done     chan struct{}

	apiListeners []net.Listener

	statusMtx     sync.Mutex
	currentStatus wifi.Status
	knownNetworks []string

	statusClients      map[uint32]*StatusClient
	statusClientMtx    sync.Mutex
	nextStatusClientID uint32
}

// StatusClient receives every status the device observes. Cancel it when
// done, otherwise statuses are dropped once its buffer is full.
type StatusClient struct {
	Statuses   chan wifi.Status
	Id         uint32
	cancelChan chan struct{}
	device     *Device
}

func NewDevice(config *Config) *Device {
	device := &Device{
		wifi:          config.Wifi,
		db:            config.DB,
		led:           config.Led,
		tracker:       config.Tracker,
		briccLog:      config.BriccLog,
		api:           config.Api,
		listen:        config.Listen,
		done:          make(chan struct{}),
		currentStatus: &wifi.DisconnectedStatus{},
		statusClients: make(map[uint32]*StatusClient),
	}

	if config.Logger != nil {
		device.log = config.Logger
	} else {
		device.log = noopLogger{}
	}

	if config.Api != nil {
		config.Api.SetDevice(device)
	}

	return device
}

// Run blocks until the device is shut down, consuming the wifi status
// stream.
func (d *Device) Run() error {
	d.led.SetState(statusled.Searching)

	if d.api != nil && d.listen != "" {
		lis, err := net.Listen("tcp", d.listen)
		if err != nil {
			return errors.Errorf("api unable to listen on %v", d.listen)
		}

		d.apiListeners = append(d.apiListeners, lis)

		d.log.Infof("Serving api on %v", d.listen)

		go func() {
			err := d.api.Serve(lis)
			if err != nil {
				d.log.Errorf("Could not serve api: %v", err)
			}
		}()
	}

	for {
		select {
		case status, ok := <-d.wifi.Statuses():
			if !ok {
				return nil
			}

			d.handleStatus(status)

		case <-d.done:
			return nil
		}
	}
}

func (d *Device) handleStatus(status wifi.Status) {
	switch status := status.(type) {
	case *wifi.ConnectedStatus:
		d.log.Infof("Connected to %v with signal strength %v.", status.Ssid, status.Signal)
		d.led.SetState(statusled.Connected)
		d.tracker.SetState(connectivity.Online)
	case *wifi.ApOnlyStatus:
		d.log.Infof("Broadcasting access point %v.", status.Ssid)
		d.led.SetState(statusled.ApOnly)
		d.tracker.SetState(connectivity.ApOnly)
	case *wifi.DisconnectedStatus:
		d.log.Debugf("No network connection.")
		d.led.SetState(statusled.Searching)
		d.tracker.SetState(connectivity.Offline)
	case *wifi.ErrorStatus:
		d.log.Errorf("Wifi reconciliation failed: %v", status.Err)
		d.led.SetState(statusled.Searching)
		d.tracker.SetState(connectivity.Offline)
	default:
		d.log.Errorf("Ignoring unsupported status %T", status)
		return
	}

	d.statusMtx.Lock()
	d.currentStatus = status
	d.statusMtx.Unlock()

	d.statusClientMtx.Lock()
	defer d.statusClientMtx.Unlock()

	for _, client := range d.statusClients {
		select {
		case client.Statuses <- status:
		default:
			d.log.Warnf("Dropped status for slow subscriber %v.", client.Id)
		}
	}
}

// RegisterNetwork adds a network the device is willing to join. The outcome
// is observable through the status stream.
func (d *Device) RegisterNetwork(ssid string, psk string) error {
	d.log.Infof("Registering network %v", ssid)

	err := d.wifi.AddClientNetwork(ssid, psk)
	if err != nil {
		return errors.Errorf("could not register network: %v", err)
	}

	d.statusMtx.Lock()
	defer d.statusMtx.Unlock()

	for _, known := range d.knownNetworks {
		if known == ssid {
			return nil
		}
	}

	d.knownNetworks = append(d.knownNetworks, ssid)

	return nil
}

// SetAccessPoint sets the access point the device broadcasts.
func (d *Device) SetAccessPoint(ssid string, psk string) error {
	d.log.Infof("Setting access point %v", ssid)

	err := d.wifi.SetAccessPoint(ssid, psk)
	if err != nil {
		return errors.Errorf("could not set access point: %v", err)
	}

	return nil
}

// Status returns the most recently observed wifi status.
func (d *Device) Status() wifi.Status {
	d.statusMtx.Lock()
	defer d.statusMtx.Unlock()

	return d.currentStatus
}

// KnownNetworks returns the names of every registered client network, in
// registration order. Keys are never handed back out.
func (d *Device) KnownNetworks() []string {
	d.statusMtx.Lock()
	defer d.statusMtx.Unlock()

	networks := make([]string, len(d.knownNetworks))
	copy(networks, d.knownNetworks)

	return networks
}

// Connectivity returns the current connectivity state.
func (d *Device) Connectivity() connectivity.State {
	return d.tracker.CurrentState()
}

func (d *Device) GetName() (string, error) {
	name, err := d.db.GetName()
	if err != nil {
		return "", errors.Errorf("failed getting name: %v", err)
	}

	return name, nil
}

func (d *Device) SetName(name string) error {
	d.log.Infof("Setting name to %v", name)

	err := d.db.SetName(name)
	if err != nil {
		return errors.Errorf("failed setting name: %v", err)
	}

	return nil
}

func (d *Device) GetSerial() (string, error) {
	serial, err := d.db.GetSerial()
	if err != nil {
		return "", errors.Errorf("failed getting serial: %v", err)
	}

	return serial, nil
}

// LatestLogs returns the recent log entries retained in memory.
func (d *Device) LatestLogs() []*bricclog.Entry {
	if d.briccLog == nil {
		return nil
	}

	return d.briccLog.Latest()
}

func (d *Device) SubscribeStatus() *StatusClient {
	client := &StatusClient{
		Statuses:   make(chan wifi.Status, 4),
		cancelChan: make(chan struct{}),
		device:     d,
	}

	d.statusClientMtx.Lock()
	client.Id = d.nextStatusClientID
	d.nextStatusClientID++
	d.statusClients[client.Id] = client
	d.statusClientMtx.Unlock()

	return client
}

func (c *StatusClient) Cancel() {
	c.device.statusClientMtx.Lock()
	delete(c.device.statusClients, c.Id)
	c.device.statusClientMtx.Unlock()

	close(c.cancelChan)
}

// Shutdown stops the wifi manager and ends Run.
func (d *Device) Shutdown() {
	for _, lis := range d.apiListeners {
		err := lis.Close()
		if err != nil {
			d.log.Errorf("Could not close listener: %v", err)
		}
	}

	err := d.wifi.Stop()
	if err != nil {
		d.log.Errorf("Could not stop wifi manager: %v", err)
	}

	d.led.SetState(statusled.Off)

	close(d.done)
}
