// Package wpad drives the physical wifi adapter through wpa_supplicant's
// D-Bus interface.
package wpad

import (
	"github.com/go-errors/errors"
	"github.com/godbus/dbus/v5"
)

const (
	busName        = "fi.w1.wpa_supplicant1"
	rootPath       = "/fi/w1/wpa_supplicant1"
	rootIface      = "fi.w1.wpa_supplicant1"
	interfaceIface = "fi.w1.wpa_supplicant1.Interface"
	bssIface       = "fi.w1.wpa_supplicant1.BSS"
	networkIface   = "fi.w1.wpa_supplicant1.Network"
)

// Wpa is a connection to the wpa_supplicant daemon on the system bus.
type Wpa struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

func (w *Wpa) Start() error {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return errors.Errorf("could not connect to system bus: %v", err)
	}

	w.conn = conn
	w.obj = conn.Object(busName, rootPath)

	return nil
}

func (w *Wpa) Stop() error {
	if w.conn == nil {
		return nil
	}

	err := w.conn.Close()
	if err != nil {
		return errors.Errorf("could not close bus connection: %v", err)
	}

	w.conn = nil

	return nil
}

// GetInterface looks up the wpa_supplicant interface object for the named
// network interface, for example wlan0.
func (w *Wpa) GetInterface(name string) (*Interface, error) {
	call := w.obj.Call(rootIface+".GetInterface", 0, name)
	if call.Err != nil {
		return nil, errors.Errorf("could not get interface: %v", call.Err)
	}

	var objPath dbus.ObjectPath
	err := call.Store(&objPath)
	if err != nil {
		return nil, errors.Errorf("could not store value: %v", err)
	}

	return &Interface{
		wpa: w,
		obj: w.conn.Object(busName, objPath),
	}, nil
}
