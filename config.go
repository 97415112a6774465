package main

import (
	"github.com/jessevdk/go-flags"
)

type apConfig struct {
	Ssid     string `long:"ssid" description:"Name of the access point the device broadcasts" default:"bricc"`
	Psk      string `long:"psk" description:"Preshared key of the broadcast access point" default:"showscreen"`
	Disabled bool   `long:"disabled" description:"Do not broadcast an access point at startup"`
}

type raspberryConfig struct {
	LedPin string `long:"ledpin" description:"GPIO pin of the status LED" default:"GPIO17"`
}

type profilingConfig struct {
	Listen string `long:"listen" description:"Add an HTTP listener at this address for the profiler"`
}

type config struct {
	ShowVersion bool   `long:"version" description:"Display version information and exit"`
	Debug       bool   `long:"debug" description:"Start in debug mode"`
	DataDir     string `long:"datadir" description:"The directory to store briccd's data within" default:"./data"`
	Listen      string `long:"listen" description:"Add an interface/port to listen for api connections" default:":9000"`
	Interface   string `long:"interface" description:"The wireless interface the daemon manages" default:"wlan0"`

	Radio string `long:"radio" description:"The radio driver to use" choice:"wpa" choice:"mock" default:"wpa"`
	Led   string `long:"led" description:"The status LED driver to use" choice:"raspberry" choice:"mock" default:"raspberry"`

	NoPairing bool   `long:"nopairing" description:"Disable Bluetooth pairing"`
	BtAdapter string `long:"btadapter" description:"The Bluetooth adapter used for pairing" default:"hci0"`

	Ap        *apConfig        `group:"Access Point" namespace:"ap"`
	Raspberry *raspberryConfig `group:"Raspberry" namespace:"raspberry"`
	Profiling *profilingConfig `group:"Profiling" namespace:"profiling"`
}

func loadConfig() (*config, error) {
	cfg := config{}

	parser := flags.NewParser(&cfg, flags.Default)

	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
