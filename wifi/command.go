package wifi

// command is a configuration change request, consumed exactly once by the
// manager goroutine. It is one of registerClientCommand or
// setAccessPointCommand.
type command interface {
	command()
}

// registerClientCommand adds or replaces one known client network.
type registerClientCommand struct {
	ssid Ssid
	psk  Psk
}

// setAccessPointCommand replaces the access point configuration.
type setAccessPointCommand struct {
	ssid Ssid
	psk  Psk
}

func (c *registerClientCommand) command() {}
func (c *setAccessPointCommand) command() {}
