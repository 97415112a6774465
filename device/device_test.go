package device

import (
	"testing"
	"time"

	"github.com/bricc-land/briccd/briccdb"
	"github.com/bricc-land/briccd/connectivity"
	"github.com/bricc-land/briccd/radio"
	"github.com/bricc-land/briccd/statusled"
	"github.com/bricc-land/briccd/wifi"
)

func newTestDevice(t *testing.T) (*Device, *radio.MockRadio, *statusled.MockLed) {
	t.Helper()

	r := radio.NewMockRadio()

	manager := wifi.New(&wifi.Config{Radio: r})
	if err := manager.Start(); err != nil {
		t.Fatalf("could not start wifi manager: %v", err)
	}

	db, err := briccdb.Open(t.TempDir())
	if err != nil {
		t.Fatalf("could not open db: %v", err)
	}

	led := statusled.NewMockLed()

	d := NewDevice(&Config{
		Wifi:    manager,
		DB:      db,
		Led:     led,
		Tracker: connectivity.NewTracker(),
	})

	go func() {
		if err := d.Run(); err != nil {
			t.Errorf("device run failed: %v", err)
		}
	}()

	t.Cleanup(func() {
		d.Shutdown()

		if err := db.Close(); err != nil {
			t.Errorf("could not close db: %v", err)
		}
	})

	return d, r, led
}

func nextStatus(t *testing.T, client *StatusClient) wifi.Status {
	t.Helper()

	select {
	case status := <-client.Statuses:
		return status
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a status")
	}

	return nil
}

func TestDeviceAccessPoint(t *testing.T) {
	d, _, led := newTestDevice(t)

	client := d.SubscribeStatus()
	defer client.Cancel()

	if err := d.SetAccessPoint("bricc", "showscreen"); err != nil {
		t.Fatalf("could not set access point: %v", err)
	}

	apOnly, ok := nextStatus(t, client).(*wifi.ApOnlyStatus)
	if !ok {
		t.Fatal("expected an ap-only status")
	}

	if apOnly.Ssid != "bricc" {
		t.Errorf("expected ssid bricc, got %v", apOnly.Ssid)
	}

	// the snapshot, LED and connectivity follow the status stream
	if _, ok := d.Status().(*wifi.ApOnlyStatus); !ok {
		t.Errorf("expected the snapshot to be ap-only, got %T", d.Status())
	}

	if state := led.CurrentState(); state != statusled.ApOnly {
		t.Errorf("expected LED state ap-only, got %v", state)
	}

	if state := d.Connectivity(); state != connectivity.ApOnly {
		t.Errorf("expected connectivity AP_ONLY, got %v", state)
	}
}

func TestDeviceRegisterNetwork(t *testing.T) {
	d, r, led := newTestDevice(t)

	r.Stations = []*radio.Station{
		{Ssid: "home", Signal: 62},
	}

	client := d.SubscribeStatus()
	defer client.Cancel()

	if err := d.RegisterNetwork("home", "secret"); err != nil {
		t.Fatalf("could not register network: %v", err)
	}

	connected, ok := nextStatus(t, client).(*wifi.ConnectedStatus)
	if !ok {
		t.Fatal("expected a connected status")
	}

	if connected.Ssid != "home" || connected.Signal != 62 {
		t.Errorf("unexpected status %+v", connected)
	}

	if state := led.CurrentState(); state != statusled.Connected {
		t.Errorf("expected LED state connected, got %v", state)
	}

	if state := d.Connectivity(); state != connectivity.Online {
		t.Errorf("expected connectivity ONLINE, got %v", state)
	}
}

func TestDeviceKnownNetworks(t *testing.T) {
	d, _, _ := newTestDevice(t)

	if err := d.RegisterNetwork("home", "secret"); err != nil {
		t.Fatal(err)
	}

	if err := d.RegisterNetwork("office", "hunter2"); err != nil {
		t.Fatal(err)
	}

	// re-registering must not duplicate the entry
	if err := d.RegisterNetwork("home", "changed"); err != nil {
		t.Fatal(err)
	}

	networks := d.KnownNetworks()
	if len(networks) != 2 {
		t.Fatalf("expected 2 known networks, got %v", networks)
	}

	if networks[0] != "home" || networks[1] != "office" {
		t.Errorf("unexpected registration order %v", networks)
	}
}

func TestDeviceName(t *testing.T) {
	d, _, _ := newTestDevice(t)

	name, err := d.GetName()
	if err != nil {
		t.Fatalf("could not get name: %v", err)
	}

	if name != "" {
		t.Fatalf("expected no name initially, got %v", name)
	}

	if err := d.SetName("Kitchen Bricc"); err != nil {
		t.Fatalf("could not set name: %v", err)
	}

	name, err = d.GetName()
	if err != nil {
		t.Fatalf("could not get name: %v", err)
	}

	if name != "Kitchen Bricc" {
		t.Fatalf("expected the saved name, got %v", name)
	}
}
