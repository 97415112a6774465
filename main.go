package main

import (
	"net/http"
	"os"
	"os/signal"

	"github.com/bricc-land/briccd/api"
	"github.com/bricc-land/briccd/briccdb"
	"github.com/bricc-land/briccd/bricclog"
	"github.com/bricc-land/briccd/connectivity"
	"github.com/bricc-land/briccd/device"
	"github.com/bricc-land/briccd/pairing"
	"github.com/bricc-land/briccd/radio"
	"github.com/bricc-land/briccd/radio/wpad"
	"github.com/bricc-land/briccd/statusled"
	"github.com/bricc-land/briccd/wifi"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	// Blank import to set up profiling HTTP handlers.
	_ "net/http/pprof"
)

var (
	// Commit stores the current commit hash of this build. This should be set using -ldflags during compilation.
	Commit string
	// Version stores the version string of this build. This should be set using -ldflags during compilation.
	Version string
	// Date stores the date of this build. This should be set using -ldflags during compilation.
	Date string
)

// briccdMain is the true entry point for briccd. This is required since defers
// created in the top-level scope of a main method aren't executed if os.Exit() is called.
func briccdMain() error {
	briccLog := bricclog.New()

	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
	log.AddHook(briccLog)

	// Load CLI configuration and defaults
	cfg, err := loadConfig()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		return nil
	} else if err != nil {
		return errors.Errorf("Failed parsing arguments: %v", err)
	}

	// Set logger into debug mode if called with --debug
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
		log.Info("Setting debug mode.")
	}

	log.Debug("Loaded config.")

	// Print version of the daemon
	log.Infof("Version %s (commit %s)", Version, Commit)
	log.Infof("Built on %s", Date)

	// Stop here if only version was requested
	if cfg.ShowVersion {
		return nil
	}

	if cfg.Profiling != nil && cfg.Profiling.Listen != "" {
		go func() {
			log.Infof("Starting profiling server on %v", cfg.Profiling.Listen)
			// Redirect the root path
			http.Handle("/", http.RedirectHandler("/debug/pprof", http.StatusSeeOther))
			// All other handlers are registered on DefaultServeMux through the import of pprof
			err := http.ListenAndServe(cfg.Profiling.Listen, nil)
			if err != nil {
				log.Errorf("Could not run profiler: %v", err)
			}
		}()
	}

	// bricc.db persistently stores the device settings
	db, err := briccdb.Open(cfg.DataDir)
	if err != nil {
		return errors.Errorf("Could not open bricc.db: %v", err)
	}

	log.Infof("Opened bricc.db")

	defer func() {
		err := db.Close()
		if err != nil {
			log.Errorf("Could not close bricc.db: %v", err)
		} else {
			log.Info("Closed bricc.db.")
		}
	}()

	// The radio, which the wifi manager exclusively owns
	var r radio.Radio

	switch cfg.Radio {
	case "wpa":
		r = wpad.New(&wpad.Config{
			Interface: cfg.Interface,
			Logger:    log.New().WithField("system", "wpad"),
		})

		log.Infof("Created wpa_supplicant radio on %v.", cfg.Interface)
	case "mock":
		r = radio.NewMockRadio()

		log.Info("Created a mock radio.")
	default:
		return errors.Errorf("Unknown radio type %v", cfg.Radio)
	}

	// The status LED
	var led statusled.Led

	switch cfg.Led {
	case "raspberry":
		led = statusled.NewGpioLed(&statusled.GpioLedConfig{
			Pin: cfg.Raspberry.LedPin,
		})

		log.Infof("Created Raspberry Pi status LED on pin %v.", cfg.Raspberry.LedPin)
	case "mock":
		led = statusled.NewMockLed()

		log.Info("Created a mock status LED.")
	default:
		return errors.Errorf("Unknown LED type %v", cfg.Led)
	}

	if err := led.Start(); err != nil {
		return errors.Errorf("Could not start status LED: %v", err)
	}

	defer func() {
		err := led.Stop()
		if err != nil {
			log.Errorf("Could not properly stop status LED: %v", err)
		} else {
			log.Info("Stopped status LED.")
		}
	}()

	// The wifi manager owning the radio and all network configuration
	manager := wifi.New(&wifi.Config{
		Radio:  r,
		Logger: log.New().WithField("system", "wifi"),
	})

	err = manager.Start()
	if err != nil {
		return errors.Errorf("Could not start wifi manager: %v", err)
	}

	log.Info("Started wifi manager.")

	// Connectivity state, derived from the wifi status stream
	tracker := connectivity.NewTracker()

	// create subsystem responsible for the REST api
	a := api.New(&api.Config{
		Log: log.New().WithField("system", "api"),
	})

	log.Infof("Created api.")

	// central controller for everything the device does
	d := device.NewDevice(&device.Config{
		Wifi:     manager,
		DB:       db,
		Led:      led,
		Tracker:  tracker,
		BriccLog: briccLog,
		Api:      a,
		Listen:   cfg.Listen,
		Logger:   log.New().WithField("system", "device"),
	})

	log.Infof("Created device.")

	// create subsystem responsible for pairing
	if !cfg.NoPairing {
		pairingController, err := pairing.NewController(&pairing.Config{
			Logger:    log.New().WithField("system", "pairing"),
			AdapterId: cfg.BtAdapter,
			Device:    d,
		})
		if err != nil {
			return errors.Errorf("Could not create pairing controller: %v", err)
		}

		log.Infof("Created pairing controller.")

		err = pairingController.Start()
		if err != nil {
			return errors.Errorf("Could not start pairing controller: %v", err)
		}

		log.Infof("Started pairing controller.")

		defer func() {
			err := pairingController.Stop()
			if err != nil {
				log.Errorf("Could not properly shut down pairing controller: %v", err)
			}

			log.Infof("Stopped pairing controller.")
		}()
	}

	// Broadcast the built-in access point until a client network is known
	if !cfg.Ap.Disabled {
		err = d.SetAccessPoint(cfg.Ap.Ssid, cfg.Ap.Psk)
		if err != nil {
			return errors.Errorf("Could not set access point: %v", err)
		}

		log.Infof("Requested access point %v.", cfg.Ap.Ssid)
	}

	// Handle interrupt signals correctly
	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt)
		sig := <-signals
		log.Info(sig)
		log.Info("Received an interrupt, stopping device...")
		d.Shutdown()
	}()

	// blocks until the device is shut down
	err = d.Run()
	if err != nil {
		return errors.Errorf("Failed running device: %v", err)
	}

	// finish with no error
	return nil
}

func main() {
	// Call the "real" main in a nested manner so the defers will properly
	// be executed in the case of a graceful shutdown.
	if err := briccdMain(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		} else {
			log.WithError(err).Println("Failed running briccd.")
		}
		os.Exit(1)
	}
}
