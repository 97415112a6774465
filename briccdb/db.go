// Package briccdb persistently stores device settings. Wireless credentials
// deliberately never land here, they only live in process memory.
package briccdb

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-errors/errors"
	"go.etcd.io/bbolt"
)

const dbFilename = "bricc.db"

var settingsBucket = []byte("settings")

type DB struct {
	*bbolt.DB
}

// Open creates or opens the settings database inside dataDir.
func Open(dataDir string) (*DB, error) {
	err := os.MkdirAll(dataDir, 0700)
	if err != nil {
		return nil, errors.Errorf("could not create %v: %v", dataDir, err)
	}

	path := filepath.Join(dataDir, dbFilename)

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, errors.Errorf("could not open %v: %v", path, err)
	}

	return &DB{DB: db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
