package wifi

import (
	"testing"

	"github.com/bricc-land/briccd/radio"
	"github.com/go-errors/errors"
)

func startedMockRadio(t *testing.T) *radio.MockRadio {
	t.Helper()

	r := radio.NewMockRadio()
	if err := r.Start(); err != nil {
		t.Fatalf("could not start mock radio: %v", err)
	}

	return r
}

func TestReconcileEmpty(t *testing.T) {
	r := startedMockRadio(t)
	store := newNetworkStore()

	status, err := reconcile(store, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := status.(*DisconnectedStatus); !ok {
		t.Fatalf("expected disconnected, got %T", status)
	}

	if r.Scans() != 0 {
		t.Errorf("expected no scan, got %v", r.Scans())
	}

	if len(r.Applied()) != 0 {
		t.Errorf("expected nothing applied, got %v", r.Applied())
	}
}

func TestReconcileApOnly(t *testing.T) {
	r := startedMockRadio(t)
	store := newNetworkStore()
	store.setAccessPoint("bricc", "showscreen")

	status, err := reconcile(store, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	apOnly, ok := status.(*ApOnlyStatus)
	if !ok {
		t.Fatalf("expected ap-only, got %T", status)
	}

	if apOnly.Ssid != "bricc" {
		t.Errorf("expected ssid bricc, got %v", apOnly.Ssid)
	}

	if r.Scans() != 0 {
		t.Errorf("expected no scan, got %v", r.Scans())
	}

	target, ok := r.LastApplied().(*radio.ApTarget)
	if !ok {
		t.Fatalf("expected ap target, got %T", r.LastApplied())
	}

	if target.Ap.Ssid != "bricc" {
		t.Errorf("expected applied ssid bricc, got %v", target.Ap.Ssid)
	}
}

func TestReconcileApOnlyApplyFailure(t *testing.T) {
	r := startedMockRadio(t)
	r.ApplyErr = errors.New("nope")

	store := newNetworkStore()
	store.setAccessPoint("bricc", "showscreen")

	_, err := reconcile(store, r)

	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("expected fatal error, got %v", err)
	}

	if fatal.Reason != "failed to create access point" {
		t.Errorf("unexpected reason %v", fatal.Reason)
	}
}

func TestReconcileClient(t *testing.T) {
	r := startedMockRadio(t)
	r.Stations = []*radio.Station{
		{Ssid: "other", Signal: 10},
		{Ssid: "home", Signal: 40},
	}

	store := newNetworkStore()
	store.registerClient("home", "secret")

	status, err := reconcile(store, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	connected, ok := status.(*ConnectedStatus)
	if !ok {
		t.Fatalf("expected connected, got %T", status)
	}

	if connected.Ssid != "home" {
		t.Errorf("expected ssid home, got %v", connected.Ssid)
	}

	if connected.Signal != 40 {
		t.Errorf("expected signal 40, got %v", connected.Signal)
	}

	target, ok := r.LastApplied().(*radio.ClientTarget)
	if !ok {
		t.Fatalf("expected client target, got %T", r.LastApplied())
	}

	if target.Client.Psk != "secret" {
		t.Errorf("expected applied psk secret, got %v", target.Client.Psk)
	}
}

func TestReconcileMixed(t *testing.T) {
	r := startedMockRadio(t)
	r.Stations = []*radio.Station{
		{Ssid: "other", Signal: 10},
		{Ssid: "home", Signal: 40},
	}

	store := newNetworkStore()
	store.setAccessPoint("bricc", "showscreen")
	store.registerClient("home", "secret")

	status, err := reconcile(store, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the access point is not separately reported in this path
	connected, ok := status.(*ConnectedStatus)
	if !ok {
		t.Fatalf("expected connected, got %T", status)
	}

	if connected.Ssid != "home" {
		t.Errorf("expected ssid home, got %v", connected.Ssid)
	}

	target, ok := r.LastApplied().(*radio.MixedTarget)
	if !ok {
		t.Fatalf("expected mixed target, got %T", r.LastApplied())
	}

	if target.Client.Ssid != "home" || target.Ap.Ssid != "bricc" {
		t.Errorf("unexpected mixed target %+v", target)
	}
}

func TestReconcileNoMatch(t *testing.T) {
	r := startedMockRadio(t)
	r.Stations = []*radio.Station{
		{Ssid: "stranger", Signal: 99},
	}

	store := newNetworkStore()
	store.registerClient("home", "secret")

	status, err := reconcile(store, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := status.(*DisconnectedStatus); !ok {
		t.Fatalf("expected disconnected, got %T", status)
	}

	if len(r.Applied()) != 0 {
		t.Errorf("expected nothing applied, got %v", r.Applied())
	}

	// the pass must not touch the configuration
	if len(store.clients) != 1 || store.clients["home"].Psk != "secret" {
		t.Errorf("store was mutated: %+v", store.clients)
	}
}

func TestReconcileFirstMatchWins(t *testing.T) {
	r := startedMockRadio(t)

	// weak comes first in scan order despite strong's better signal
	r.Stations = []*radio.Station{
		{Ssid: "weak", Signal: 5},
		{Ssid: "strong", Signal: 95},
	}

	store := newNetworkStore()
	store.registerClient("weak", "a")
	store.registerClient("strong", "b")

	status, err := reconcile(store, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	connected, ok := status.(*ConnectedStatus)
	if !ok {
		t.Fatalf("expected connected, got %T", status)
	}

	if connected.Ssid != "weak" {
		t.Errorf("expected first scanned match weak, got %v", connected.Ssid)
	}
}

func TestReconcileScanFailure(t *testing.T) {
	r := startedMockRadio(t)
	r.ScanErr = errors.New("radio gone")

	store := newNetworkStore()
	store.registerClient("home", "secret")

	_, err := reconcile(store, r)

	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("expected fatal error, got %v", err)
	}
}

func TestReconcileScanNotFound(t *testing.T) {
	r := startedMockRadio(t)
	r.ScanErr = &radio.NotFoundError{Ssid: "home"}

	store := newNetworkStore()
	store.registerClient("home", "secret")

	_, err := reconcile(store, r)

	var notFound *NetworkNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	if notFound.Ssid != "home" {
		t.Errorf("expected ssid home, got %v", notFound.Ssid)
	}
}

func TestReconcileApplyFailureNoFallback(t *testing.T) {
	r := startedMockRadio(t)
	r.ApplyErr = errors.New("busy")

	// both networks are known and scanned, but the pass must stop at the
	// first match instead of trying the second
	r.Stations = []*radio.Station{
		{Ssid: "first", Signal: 10},
		{Ssid: "second", Signal: 20},
	}

	store := newNetworkStore()
	store.registerClient("first", "a")
	store.registerClient("second", "b")

	_, err := reconcile(store, r)
	if err == nil {
		t.Fatal("expected an error")
	}

	if len(r.Applied()) != 0 {
		t.Errorf("expected no successful apply, got %v", r.Applied())
	}

	if r.Scans() != 1 {
		t.Errorf("expected a single scan, got %v", r.Scans())
	}
}
