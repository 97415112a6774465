package wifi

import "github.com/bricc-land/briccd/radio"

// reconcile computes and applies the radio configuration matching the
// currently desired state:
//
// With no known client networks the access point is broadcast alone if one
// is configured; otherwise the radio is left untouched.
//
// With at least one known client network a fresh scan is taken and the first
// scanned station whose ssid matches a known network wins, regardless of
// relative signal strength. If an access point is also configured the client
// and access point run simultaneously. An apply failure ends the pass, no
// later candidate is attempted. No scanned station matching leaves the
// device disconnected until the next pass.
//
// The returned error is either a *FatalError or a *NetworkNotFoundError.
func reconcile(store *networkStore, r radio.Radio) (Status, error) {
	if len(store.clients) == 0 {
		if store.ap != nil {
			if err := r.Apply(&radio.ApTarget{Ap: *store.ap}); err != nil {
				return nil, &FatalError{Reason: "failed to create access point"}
			}

			return &ApOnlyStatus{Ssid: store.ap.Ssid}, nil
		}

		return &DisconnectedStatus{}, nil
	}

	stations, err := r.Scan()
	if err != nil {
		return nil, fromRadioError(err)
	}

	for _, station := range stations {
		client, ok := store.clients[station.Ssid]
		if !ok {
			continue
		}

		var target radio.Target
		if store.ap != nil {
			target = &radio.MixedTarget{Client: client, Ap: *store.ap}
		} else {
			target = &radio.ClientTarget{Client: client}
		}

		if err := r.Apply(target); err != nil {
			return nil, fromRadioError(err)
		}

		return &ConnectedStatus{Ssid: client.Ssid, Signal: station.Signal}, nil
	}

	return &DisconnectedStatus{}, nil
}
