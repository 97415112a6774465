package wifi

import (
	"testing"
	"time"

	"github.com/bricc-land/briccd/radio"
)

func nextStatus(t *testing.T, m *Manager) Status {
	t.Helper()

	select {
	case status, ok := <-m.Statuses():
		if !ok {
			t.Fatal("status stream was closed")
		}

		return status
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a status")
	}

	return nil
}

func TestManagerApThenClient(t *testing.T) {
	r := radio.NewMockRadio()

	m := New(&Config{Radio: r})
	if err := m.Start(); err != nil {
		t.Fatalf("could not start manager: %v", err)
	}
	defer m.Stop()

	// with an empty client map the access point goes up alone
	if err := m.SetAccessPoint("bricc", "showscreen"); err != nil {
		t.Fatalf("could not set access point: %v", err)
	}

	apOnly, ok := nextStatus(t, m).(*ApOnlyStatus)
	if !ok {
		t.Fatal("expected an ap-only status")
	}

	if apOnly.Ssid != "bricc" {
		t.Errorf("expected ssid bricc, got %v", apOnly.Ssid)
	}

	if r.Scans() != 0 {
		t.Errorf("expected no scan for the ap-only pass, got %v", r.Scans())
	}

	// once a known network shows up in a scan the manager switches to
	// mixed mode and reports the client connection
	r.Stations = []*radio.Station{
		{Ssid: "other", Signal: 10},
		{Ssid: "home", Signal: 40},
	}

	if err := m.AddClientNetwork("home", "secret"); err != nil {
		t.Fatalf("could not add client network: %v", err)
	}

	connected, ok := nextStatus(t, m).(*ConnectedStatus)
	if !ok {
		t.Fatal("expected a connected status")
	}

	if connected.Ssid != "home" {
		t.Errorf("expected ssid home, got %v", connected.Ssid)
	}

	if connected.Signal != 40 {
		t.Errorf("expected signal 40, got %v", connected.Signal)
	}

	mixed, ok := r.LastApplied().(*radio.MixedTarget)
	if !ok {
		t.Fatalf("expected mixed target, got %T", r.LastApplied())
	}

	if mixed.Client.Ssid != "home" || mixed.Ap.Ssid != "bricc" {
		t.Errorf("unexpected mixed target %+v", mixed)
	}
}

func TestManagerCommandOrdering(t *testing.T) {
	r := radio.NewMockRadio()

	m := New(&Config{Radio: r})
	if err := m.Start(); err != nil {
		t.Fatalf("could not start manager: %v", err)
	}
	defer m.Stop()

	// each command yields exactly one status, in send order
	if err := m.SetAccessPoint("first", "a"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetAccessPoint("second", "b"); err != nil {
		t.Fatal(err)
	}
	if err := m.AddClientNetwork("home", "secret"); err != nil {
		t.Fatal(err)
	}

	first, ok := nextStatus(t, m).(*ApOnlyStatus)
	if !ok || first.Ssid != "first" {
		t.Fatalf("expected ap-only first, got %v", first)
	}

	second, ok := nextStatus(t, m).(*ApOnlyStatus)
	if !ok || second.Ssid != "second" {
		t.Fatalf("expected ap-only second, got %v", second)
	}

	// the scan finds nothing, so registering home leaves us disconnected
	if _, ok := nextStatus(t, m).(*DisconnectedStatus); !ok {
		t.Fatal("expected a disconnected status")
	}
}

func TestManagerIdleTick(t *testing.T) {
	r := radio.NewMockRadio()

	m := New(&Config{Radio: r, ScanPeriod: 50 * time.Millisecond})
	if err := m.Start(); err != nil {
		t.Fatalf("could not start manager: %v", err)
	}
	defer m.Stop()

	// without any command the period elapses and a heartbeat is sent
	if _, ok := nextStatus(t, m).(*DisconnectedStatus); !ok {
		t.Fatal("expected a disconnected heartbeat")
	}

	// the tick must not have touched the radio
	if r.Scans() != 0 {
		t.Errorf("expected no scan on idle tick, got %v", r.Scans())
	}

	if len(r.Applied()) != 0 {
		t.Errorf("expected nothing applied on idle tick, got %v", r.Applied())
	}
}

func TestManagerStop(t *testing.T) {
	r := radio.NewMockRadio()

	m := New(&Config{Radio: r})
	if err := m.Start(); err != nil {
		t.Fatalf("could not start manager: %v", err)
	}

	if err := m.Stop(); err != nil {
		t.Fatalf("could not stop manager: %v", err)
	}

	// stopping twice is fine
	if err := m.Stop(); err != nil {
		t.Fatalf("could not stop manager twice: %v", err)
	}

	// the status stream winds down
	select {
	case _, ok := <-m.Statuses():
		if ok {
			t.Fatal("expected the status stream to be closed")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for the status stream to close")
	}

	// commands after stop fail synchronously
	if err := m.AddClientNetwork("home", "secret"); err != ErrStopped {
		t.Fatalf("expected ErrStopped, got %v", err)
	}

	if err := m.SetAccessPoint("bricc", "showscreen"); err != ErrStopped {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}
