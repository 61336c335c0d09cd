package secrets

import "fmt"

// NotFoundError reports a dotted path that could not be resolved against the
// loaded data. Path holds every segment consumed up to and including the one
// that was missing, so callers can see how far resolution got.
type NotFoundError struct {
	Path string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("key %q not found in the secrets data", e.Path)
}

// FileMissingError reports that the secrets file does not exist at the
// configured path. It is raised before any parse attempt.
type FileMissingError struct {
	Path string
}

func (e FileMissingError) Error() string {
	return fmt.Sprintf("secrets file not found at %s", e.Path)
}
