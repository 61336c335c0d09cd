// Package secrets provides loading, lookup, and inspection of a local TOML
// secrets file.
//
// The package is built around three core concepts:
//
//   - **Nested Mapping**: the TOML file parses into a tree of string-keyed
//     tables whose leaves are scalar values
//   - **Dotted Paths**: any value in the tree is addressed by a dot-separated
//     path such as "github.accounts.personal.account_id"
//   - **Lazy Tokens**: values can be represented as tokens that resolve to the
//     actual value only when read
//
// # Architecture Overview
//
// A Store owns one secrets file. The file is read and parsed once, on first
// access, and the parsed Mapping is memoized for the life of the store. Point
// lookups go through DeepGet, which walks the tree one path segment at a time.
// Full enumeration goes through Walk, which performs a depth-first traversal
// of every leaf, skipping metadata keys and unset placeholders.
//
//	Store ──► Mapping ──┬──► DeepGet (point lookup, Value/Token)
//	                    └──► Walk    (leaf enumeration)
//	                              └──► facet filtering ──► masking
//
// # File Location
//
// By default the secrets file is expected at ${HOME}/home_secret.toml. A
// custom path may be given to NewStore, which is the usual way to point a
// store at a test fixture.
//
// # Direct value access
//
//	hs := secrets.NewStore(secrets.DefaultFile())
//	apiKey, err := hs.Value("github.accounts.personal.secrets.api_token")
//
// # Token-based access
//
//	token, err := hs.TokenFor("github.accounts.personal.secrets.api_token")
//	...
//	apiKey, err := token.Value()
//
// # Error Handling
//
// Two error types cover the whole package:
//   - FileMissingError: the secrets file does not exist at the configured path
//   - NotFoundError: a dotted path does not exist in the loaded data
//
// Both support errors.As. Malformed TOML propagates unmodified from the
// parser. No errors are retried or recovered internally.
//
// A single Store is not safe for concurrent use; create one store per
// goroutine or guard access externally. Independent stores share no state.
package secrets
