package pairing

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/bricc-land/briccd/connectivity"
	"github.com/bricc-land/briccd/device"
	"github.com/go-errors/errors"
	"github.com/muka/go-bluetooth/api"
	"github.com/muka/go-bluetooth/linux/btmgmt"
	"github.com/muka/go-bluetooth/service"
)

const (
	// Unique UUID suffix for the Bricc
	uuidSuffix = "-41f6-4b20-9a73-8c5e66d3a2bc"

	// Prefix of the Bricc service UUID
	briccServiceUuidPrefix = "B1CC"

	// Where to expose the application
	objectName = "land.bricc"
	objectPath = "/bricc/pairing/service"

	// Local name of the application
	localName = "Bricc"

	briccServiceUuid   = briccServiceUuidPrefix + "0000" + uuidSuffix
	connectionStatus   = briccServiceUuidPrefix + "B101" + uuidSuffix
	knownNetworkList   = briccServiceUuidPrefix + "B102" + uuidSuffix
	wifiSsidString     = briccServiceUuidPrefix + "B103" + uuidSuffix
	wifiPskString      = briccServiceUuidPrefix + "B104" + uuidSuffix
	wifiRegisterSignal = briccServiceUuidPrefix + "B105" + uuidSuffix
	apSsidString       = briccServiceUuidPrefix + "B106" + uuidSuffix
	apPskString        = briccServiceUuidPrefix + "B107" + uuidSuffix
	apCreateSignal     = briccServiceUuidPrefix + "B108" + uuidSuffix
)

type Config struct {
	Logger    Logger
	AdapterId string
	Device    *device.Device
}

// Controller exposes wifi provisioning over a BLE GATT service so a phone
// can hand the device its first network credentials.
type Controller struct {
	log       Logger
	adapterId string
	device    *device.Device
	app       *service.Application
	ssid      string
	psk       string
	apSsid    string
	apPsk     string
}

func NewController(config *Config) (*Controller, error) {
	controller := &Controller{}

	if config.Logger != nil {
		controller.log = config.Logger
	} else {
		controller.log = noopLogger{}
	}

	// Assign the device adapter id (ex. hci0)
	controller.adapterId = config.AdapterId

	controller.device = config.Device

	name, err := config.Device.GetName()
	if err != nil || name == "" {
		name = localName
	}

	serial, err := config.Device.GetSerial()
	if err != nil {
		return nil, errors.Errorf("Could not get serial: %v", err)
	}

	app := GattApp(objectName, objectPath, localName)
	service := app.Service(Primary, briccServiceUuid, Advertised)

	service.DeviceNameCharacteristic(name).
		UserDescriptionDescriptor("Device Name")
	service.ManufacturerNameCharacteristic("Bricc Land").
		UserDescriptionDescriptor("Manufacturer Name")
	service.SerialNumberCharacteristic(serial).
		UserDescriptionDescriptor("Serial Number")
	service.Characteristic(connectionStatus, controller.readConnectionStatus, nil).
		UserDescriptionDescriptor("Connection Status")
	service.Characteristic(knownNetworkList, controller.readKnownNetworkList, nil).
		UserDescriptionDescriptor("Known Networks")
	service.Characteristic(wifiSsidString, controller.readWifiSsidString, controller.writeWifiSsidString).
		UserDescriptionDescriptor("Wi-Fi SSID")
	service.Characteristic(wifiPskString, nil, controller.writeWifiPskString).
		UserDescriptionDescriptor("Wi-Fi PSK")
	service.Characteristic(wifiRegisterSignal, nil, controller.writeWifiRegisterSignal).
		UserDescriptionDescriptor("Wi-Fi Register Signal")
	service.Characteristic(apSsidString, nil, controller.writeApSsidString).
		UserDescriptionDescriptor("Access Point SSID")
	service.Characteristic(apPskString, nil, controller.writeApPskString).
		UserDescriptionDescriptor("Access Point PSK")
	service.Characteristic(apCreateSignal, nil, controller.writeApCreateSignal).
		UserDescriptionDescriptor("Access Point Create Signal")

	controller.app, err = app.Run()
	if err != nil {
		return nil, errors.Errorf("Could not start app: %v", err)
	}

	return controller, nil
}

func (c *Controller) Start() error {
	mgmt := btmgmt.NewBtMgmt(c.adapterId)
	err := mgmt.Reset()
	if err != nil {
		return errors.Errorf("Reset %s: %v", c.adapterId, err)
	}

	// Sleep to give the device some time after the reset
	time.Sleep(time.Millisecond * 500)

	gattManager, err := api.GetGattManager(c.adapterId)
	if err != nil {
		return errors.Errorf("Get gatt manager failed: %v", err)
	}

	err = gattManager.RegisterApplication(c.app.Path(), map[string]interface{}{})
	if err != nil {
		return errors.Errorf("Register failed: %v", err)
	}

	err = c.app.StartAdvertising(c.adapterId)
	if err != nil {
		return errors.Errorf("Failed to advertise: %v", err)
	}

	return nil
}

func (c *Controller) Stop() error {
	err := c.app.StopAdvertising()
	if err != nil {
		return errors.Errorf("Could not stop advertising: %v", err)
	}

	gattManager, err := api.GetGattManager(c.adapterId)
	if err != nil {
		return errors.Errorf("Get gatt manager failed: %v", err)
	}

	err = gattManager.UnregisterApplication(c.app.Path())
	if err != nil {
		return errors.Errorf("Unregister failed: %v", err)
	}

	return nil
}

func (c *Controller) readConnectionStatus() ([]byte, error) {
	c.log.Infof("Reading connection status...")

	var status uint8

	switch c.device.Connectivity() {
	case connectivity.Online:
		status = 2
	case connectivity.ApOnly:
		status = 1
	default:
		status = 0
	}

	return []byte{status}, nil
}

type knownNetworkItem struct {
	Ssid string `json:"ssid"`
}

func (c *Controller) readKnownNetworkList() ([]byte, error) {
	c.log.Infof("Reading known network list...")

	networks := []*knownNetworkItem{} // Use literal instead of declaration so it serializes into empty json array
	for _, ssid := range c.device.KnownNetworks() {
		networks = append(networks, &knownNetworkItem{
			Ssid: ssid,
		})
	}

	payload, err := json.Marshal(networks)
	if err != nil {
		return nil, errors.Errorf("Could not serialize known network list: %v", err)
	}

	return payload, nil
}

func (c *Controller) readWifiSsidString() ([]byte, error) {
	c.log.Infof("Reading wifi ssid...")

	return []byte(c.ssid), nil
}

func (c *Controller) writeWifiSsidString(value []byte) error {
	ssid := string(value)

	c.log.Infof("Writing wifi ssid to %v", ssid)

	c.ssid = ssid

	return nil
}

func (c *Controller) writeWifiPskString(value []byte) error {
	psk := string(value)
	stars := strings.Repeat("*", len(psk))

	c.log.Infof("Writing wifi psk to %v", stars)

	c.psk = psk

	return nil
}

func (c *Controller) writeWifiRegisterSignal(value []byte) error {
	c.log.Infof("Writing wifi register signal to %v", value)

	if bytes.Equal(value, []byte{1}) {
		err := c.device.RegisterNetwork(c.ssid, c.psk)
		if err != nil {
			return errors.Errorf("Could not register network: %v", err)
		}
	}

	return nil
}

func (c *Controller) writeApSsidString(value []byte) error {
	ssid := string(value)

	c.log.Infof("Writing access point ssid to %v", ssid)

	c.apSsid = ssid

	return nil
}

func (c *Controller) writeApPskString(value []byte) error {
	psk := string(value)
	stars := strings.Repeat("*", len(psk))

	c.log.Infof("Writing access point psk to %v", stars)

	c.apPsk = psk

	return nil
}

func (c *Controller) writeApCreateSignal(value []byte) error {
	c.log.Infof("Writing access point create signal to %v", value)

	if bytes.Equal(value, []byte{1}) {
		err := c.device.SetAccessPoint(c.apSsid, c.apPsk)
		if err != nil {
			return errors.Errorf("Could not set access point: %v", err)
		}
	}

	return nil
}
