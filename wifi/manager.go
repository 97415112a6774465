package wifi

import (
	"sync"
	"time"

	"github.com/bricc-land/briccd/radio"
	"github.com/go-errors/errors"
)

type Config struct {
	Radio radio.Radio
	// ScanPeriod overrides DefaultScanPeriod when positive.
	ScanPeriod time.Duration
	Logger     Logger
}

// Manager owns the radio and the network store. A single goroutine started
// by Start processes commands strictly in send order and emits exactly one
// status per command or idle tick on the status stream.
//
// The command methods may be called from any goroutine and return as soon as
// the command is enqueued; failures during reconciliation are observable
// only through the status stream.
type Manager struct {
	radio      radio.Radio
	scanPeriod time.Duration
	log        Logger
	commands   *queue[command]
	statuses   *queue[Status]

	mtx     sync.Mutex
	stopped bool
}

func New(config *Config) *Manager {
	manager := &Manager{
		radio:      config.Radio,
		scanPeriod: config.ScanPeriod,
		commands:   newQueue[command](),
		statuses:   newQueue[Status](),
	}

	if manager.scanPeriod <= 0 {
		manager.scanPeriod = DefaultScanPeriod
	}

	if config.Logger != nil {
		manager.log = config.Logger
	} else {
		manager.log = noopLogger{}
	}

	return manager
}

// Start initializes the radio and spawns the manager goroutine. A failure
// here is fatal to the daemon, there is no recovery path.
func (m *Manager) Start() error {
	err := m.radio.Start()
	if err != nil {
		return errors.Errorf("could not start radio: %v", err)
	}

	go m.run()

	return nil
}

// Stop closes the command queue. The manager goroutine drains outstanding
// commands, stops the radio and closes the status stream.
func (m *Manager) Stop() error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.stopped {
		return nil
	}

	m.stopped = true
	m.commands.close()

	return nil
}

// AddClientNetwork registers a network the device is willing to join. The
// next reconciliation decides whether it is joined.
func (m *Manager) AddClientNetwork(ssid Ssid, psk Psk) error {
	return m.send(&registerClientCommand{ssid: ssid, psk: psk})
}

// SetAccessPoint sets the access point the device broadcasts, replacing any
// previous one.
func (m *Manager) SetAccessPoint(ssid Ssid, psk Psk) error {
	return m.send(&setAccessPointCommand{ssid: ssid, psk: psk})
}

// Statuses is the status stream. The design assumes exactly one long-lived
// consumer; the stream is closed after Stop once the manager goroutine has
// wound down.
func (m *Manager) Statuses() <-chan Status {
	return m.statuses.out
}

func (m *Manager) send(cmd command) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.stopped {
		return ErrStopped
	}

	m.commands.in <- cmd

	return nil
}

func (m *Manager) run() {
	store := newNetworkStore()

	for {
		var status Status

		select {
		case cmd, ok := <-m.commands.out:
			if !ok {
				if err := m.radio.Stop(); err != nil {
					m.log.Errorf("Could not stop radio: %v", err)
				}

				m.statuses.close()
				return
			}

			status = m.handle(store, cmd)
		case <-time.After(m.scanPeriod):
			// Idle heartbeat. The configuration is left untouched and
			// no rescan happens until the next command arrives.
			status = &DisconnectedStatus{}
		}

		m.statuses.in <- status
	}
}

func (m *Manager) handle(store *networkStore, cmd command) Status {
	switch cmd := cmd.(type) {
	case *registerClientCommand:
		m.log.Infof("Registering client network %v", cmd.ssid)
		store.registerClient(cmd.ssid, cmd.psk)
	case *setAccessPointCommand:
		m.log.Infof("Setting access point %v", cmd.ssid)
		store.setAccessPoint(cmd.ssid, cmd.psk)
	default:
		m.log.Errorf("Ignoring unsupported command %T", cmd)
		return &DisconnectedStatus{}
	}

	status, err := reconcile(store, m.radio)
	if err != nil {
		m.log.Errorf("Reconciliation failed: %v", err)
		return &ErrorStatus{Err: err}
	}

	m.log.Debugf("Reconciled to %v", status)

	return status
}
