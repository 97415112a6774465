package wpad

import (
	"github.com/go-errors/errors"
	"github.com/godbus/dbus/v5"
)

type Network struct {
	wpa *Wpa
	obj dbus.BusObject
}

func (n *Network) String() string {
	return string(n.obj.Path())
}

// Enable marks the network as eligible without selecting it, which is how a
// secondary network stays active next to the selected one.
func (n *Network) Enable() error {
	err := n.obj.SetProperty(networkIface+".Enabled", dbus.MakeVariant(true))
	if err != nil {
		return errors.Errorf("could not enable network: %v", err)
	}

	return nil
}
