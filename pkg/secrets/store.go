package secrets

// Store is the main interface for loading and accessing one secrets file.
//
// The file is read and parsed lazily, on first access, and the parsed data is
// memoized for the life of the store. Resolved values and created tokens are
// each cached per path; the caches only grow, they are never evicted. Since
// the data is immutable after load, the caches are an optimization, not a
// correctness requirement.
//
// A Store is not safe for concurrent use. Multiple independent stores (for
// example one on the real file and one on a test fixture) share no state.
type Store struct {
	file   string
	data   Mapping
	loaded bool
	values map[string]any
	tokens map[string]Token
}

// NewStore creates a store backed by the secrets file at the given path.
// Nothing is read until the first data access.
func NewStore(file string) *Store {
	return &Store{
		file:   file,
		values: make(map[string]any),
		tokens: make(map[string]Token),
	}
}

// File returns the path of the backing secrets file.
func (s *Store) File() string {
	return s.file
}

// Data loads, parses, and memoizes the secrets file. Subsequent calls return
// the same Mapping without re-reading. Returns FileMissingError if the file
// does not exist.
func (s *Store) Data() (Mapping, error) {
	if s.loaded {
		return s.data, nil
	}
	data, err := LoadFile(s.file)
	if err != nil {
		return nil, err
	}
	s.data = data
	s.loaded = true
	return s.data, nil
}

// Value resolves the dotted path against the loaded data and returns the raw
// value. Results are cached per path for the life of the store. Returns
// FileMissingError if the backing file is absent and NotFoundError if the
// path does not resolve.
func (s *Store) Value(path string) (any, error) {
	if v, ok := s.values[path]; ok {
		return v, nil
	}
	data, err := s.Data()
	if err != nil {
		return nil, err
	}
	v, err := DeepGet(data, path)
	if err != nil {
		return nil, err
	}
	s.values[path] = v
	return v, nil
}

// TokenFor returns a Token bound to the store's data and the given path,
// creating and caching it on first use. Loading the data can fail with
// FileMissingError; a missing path does not fail here, only when the token is
// later read.
func (s *Store) TokenFor(path string) (Token, error) {
	if t, ok := s.tokens[path]; ok {
		return t, nil
	}
	data, err := s.Data()
	if err != nil {
		return Token{}, err
	}
	t := NewToken(data, path)
	s.tokens[path] = t
	return t, nil
}
