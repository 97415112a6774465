package briccdb

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/go-errors/errors"
)

var serialKey = []byte("serial")

// GetSerial returns the device serial, generating and persisting one on
// first use.
func (db *DB) GetSerial() (string, error) {
	var serial string

	err := db.getJSON(settingsBucket, serialKey, &serial)
	if err != nil {
		return "", err
	}

	if serial != "" {
		return serial, nil
	}

	raw := make([]byte, 8)
	_, err = rand.Read(raw)
	if err != nil {
		return "", errors.Errorf("could not generate serial: %v", err)
	}

	serial = hex.EncodeToString(raw)

	err = db.setJSON(settingsBucket, serialKey, serial)
	if err != nil {
		return "", err
	}

	return serial, nil
}
