package secrets

// Token is a lazy reference to a value inside a loaded Mapping. Creating a
// token never fails and never touches the data; the lookup happens on every
// Value call. Tokens can be stored, passed around, and resolved later, which
// makes them useful for configuration objects and generated accessors.
//
// A token borrows the Mapping it was created with; it does not copy it.
// Tokens with the same data and path are interchangeable.
type Token struct {
	data Mapping
	path string
}

// NewToken wraps data and a dotted path without resolving either.
func NewToken(data Mapping, path string) Token {
	return Token{data: data, path: path}
}

// Path returns the dotted path this token resolves.
func (t Token) Path() string {
	return t.path
}

// Value resolves the token against its data. Each call re-runs the lookup;
// callers wanting caching should cache the result themselves, or go through
// Store.Value which memoizes per path.
func (t Token) Value() (any, error) {
	return DeepGet(t.data, t.path)
}
