package secrets

// MaskedEntry pairs a leaf path with its masked display value.
type MaskedEntry struct {
	Path   string
	Masked string
}

// Search enumerates the store's leaves in traversal order, keeping only those
// whose path matches every facet parsed from query. An empty query keeps
// everything. Values are returned raw. Returns FileMissingError if the
// backing file is absent; traversal itself never fails.
func Search(store *Store, query string) ([]Entry, error) {
	data, err := store.Data()
	if err != nil {
		return nil, err
	}
	facets := ParseFacets(query)
	var matched []Entry
	for _, entry := range Walk(data) {
		if MatchesAll(entry.Path, facets) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// List is Search with every surviving value passed through Mask, suitable for
// human inspection without revealing full secret contents.
func List(store *Store, query string) ([]MaskedEntry, error) {
	entries, err := Search(store, query)
	if err != nil {
		return nil, err
	}
	masked := make([]MaskedEntry, 0, len(entries))
	for _, entry := range entries {
		masked = append(masked, MaskedEntry{Path: entry.Path, Masked: Mask(entry.Value)})
	}
	return masked, nil
}

// Get resolves key against the store's data and returns the raw, unmasked
// value. Fails with FileMissingError or NotFoundError.
func Get(store *Store, key string) (any, error) {
	return store.Value(key)
}
