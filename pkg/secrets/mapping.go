package secrets

import (
	"os"
	"path/filepath"
	"strings"
)

// Mapping is the nested string-keyed tree a secrets file parses into. Values
// are scalars (string, integer, boolean, float), lists, or nested Mappings.
// It is never mutated after load.
type Mapping = map[string]any

// DefaultFileName is the conventional name of the secrets file.
const DefaultFileName = "home_secret.toml"

// DefaultFile returns the default secrets file location in the invoking
// user's home directory. If the home directory cannot be determined the bare
// filename is returned, resolving against the working directory.
func DefaultFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, DefaultFileName)
}

// DeepGet retrieves a nested value from a Mapping using dot-separated path
// notation, e.g. "github.accounts.personal.account_id". The value found after
// consuming the last segment is returned as-is: it may be a scalar, a list,
// or a nested Mapping (sub-tree access, not just leaves).
//
// On failure the returned NotFoundError carries the full dotted prefix up to
// and including the segment that was missing.
func DeepGet(m Mapping, path string) (any, error) {
	var value any = m
	var consumed []string
	for _, segment := range strings.Split(path, ".") {
		consumed = append(consumed, segment)
		table, ok := value.(Mapping)
		if !ok {
			return nil, NotFoundError{Path: strings.Join(consumed, ".")}
		}
		next, ok := table[segment]
		if !ok {
			return nil, NotFoundError{Path: strings.Join(consumed, ".")}
		}
		value = next
	}
	return value, nil
}
