package briccdb

var nameKey = []byte("name")

// GetName returns the user-visible device name, or an empty string if none
// was set yet.
func (db *DB) GetName() (string, error) {
	var name string

	err := db.getJSON(settingsBucket, nameKey, &name)
	if err != nil {
		return "", err
	}

	return name, nil
}

func (db *DB) SetName(name string) error {
	return db.setJSON(settingsBucket, nameKey, name)
}
