package secrets

import "sort"

const (
	// DescriptionKey marks documentation entries in the secrets file. Keys
	// with this exact name are metadata, never secrets, and are skipped by
	// Walk without being descended into.
	DescriptionKey = "description"

	// Placeholder is the sentinel value for a secret that has not been
	// filled in yet. Leaves equal to it are skipped by Walk.
	Placeholder = "..."
)

// Entry is one leaf produced by Walk: a dotted path and the raw value found
// there.
type Entry struct {
	Path  string
	Value any
}

// Walk enumerates every leaf reachable in the mapping as (path, value)
// entries, depth-first, keys in lexicographic order at each level. Two kinds
// of entries are filtered out during descent:
//
//   - keys named DescriptionKey, even when their value is a nested table
//   - leaves whose value equals Placeholder
//
// Each call re-traverses from scratch; Walk never fails.
func Walk(m Mapping) []Entry {
	var entries []Entry
	walk(m, "", &entries)
	return entries
}

func walk(m Mapping, parent string, out *[]Entry) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == DescriptionKey {
			continue
		}
		path := key
		if parent != "" {
			path = parent + "." + key
		}
		switch value := m[key].(type) {
		case Mapping:
			walk(value, path, out)
		case string:
			if value == Placeholder {
				continue
			}
			*out = append(*out, Entry{Path: path, Value: value})
		default:
			*out = append(*out, Entry{Path: path, Value: value})
		}
	}
}
