package secrets

import (
	"os"

	"github.com/BurntSushi/toml"
)

// LoadFile reads and parses the TOML secrets file at path. Existence is
// checked before any parse attempt; a missing file yields FileMissingError.
// Parse errors from the TOML library propagate unmodified.
func LoadFile(path string) (Mapping, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, FileMissingError{Path: path}
		}
		return nil, err
	}

	var data Mapping
	if _, err := toml.DecodeFile(path, &data); err != nil {
		return nil, err
	}
	return data, nil
}
