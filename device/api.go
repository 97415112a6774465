package device

import "net"

type Api interface {
	SetDevice(d *Device)
	Serve(l net.Listener) error
}
