package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/systmms/homesecret/pkg/secrets"
)

// UserError represents an error that should be shown to the user with helpful context
type UserError struct {
	Message    string
	Suggestion string
	Details    string
	Err        error
}

func (e UserError) Error() string {
	var parts []string

	if e.Message != "" {
		parts = append(parts, e.Message)
	} else if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if e.Details != "" {
		parts = append(parts, "\n  Details: "+e.Details)
	}

	if e.Suggestion != "" {
		parts = append(parts, "\n  💡 Try: "+e.Suggestion)
	}

	return strings.Join(parts, "")
}

func (e UserError) Unwrap() error {
	return e.Err
}

// FlagError represents an invalid command-line flag or argument
type FlagError struct {
	Flag       string
	Value      interface{}
	Message    string
	Suggestion string
}

func (e FlagError) Error() string {
	msg := "Invalid usage"
	if e.Flag != "" {
		msg += fmt.Sprintf(" of '%s'", e.Flag)
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	msg += ": " + e.Message

	if e.Suggestion != "" {
		msg += "\n  💡 " + e.Suggestion
	}

	return msg
}

// Enrich adds a suggestion to the core secrets errors so CLI users see how to
// fix them. Errors it does not recognize pass through unmodified.
func Enrich(err error) error {
	if err == nil {
		return nil
	}

	var fileMissing secrets.FileMissingError
	if errors.As(err, &fileMissing) {
		return UserError{
			Message:    fmt.Sprintf("Secrets file not found at %s", fileMissing.Path),
			Suggestion: fmt.Sprintf("Create %s, or point at another file with --file", fileMissing.Path),
			Err:        err,
		}
	}

	var notFound secrets.NotFoundError
	if errors.As(err, &notFound) {
		return UserError{
			Message:    fmt.Sprintf("Key '%s' does not exist in the secrets file", notFound.Path),
			Suggestion: "Run 'homesecret list' to see the available keys",
			Err:        err,
		}
	}

	if strings.Contains(err.Error(), "toml") {
		return UserError{
			Message:    "Invalid TOML in the secrets file",
			Details:    err.Error(),
			Suggestion: "Check for unclosed tables, missing quotes, or stray characters",
			Err:        err,
		}
	}

	return err
}
