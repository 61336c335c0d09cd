package commands

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/homesecret/pkg/secrets"
)

func TestGetCommand_BasicUsage(t *testing.T) {
	t.Run("get string value", func(t *testing.T) {
		cfg := testConfig(t)

		cmd := NewGetCommand(cfg)
		output := captureOutput(t, cmd, []string{"github.accounts.personal.account_id"})

		// Raw output is just the value (no newline from fmt.Print)
		assert.Equal(t, "user123", output)
	})

	t.Run("get integer value", func(t *testing.T) {
		cfg := testConfig(t)

		cmd := NewGetCommand(cfg)
		output := captureOutput(t, cmd, []string{"db.mysql_dev.port"})

		assert.Equal(t, "3306", output)
	})

	t.Run("get boolean value", func(t *testing.T) {
		cfg := testConfig(t)

		cmd := NewGetCommand(cfg)
		output := captureOutput(t, cmd, []string{"db.mysql_dev.ssl_enabled"})

		assert.Equal(t, "true", output)
	})

	t.Run("placeholder values are still gettable", func(t *testing.T) {
		cfg := testConfig(t)

		cmd := NewGetCommand(cfg)
		output := captureOutput(t, cmd, []string{"github.accounts.personal.admin_email"})

		// Point lookup bypasses the enumeration filters.
		assert.Equal(t, "...", output)
	})
}

func TestGetCommand_JSONOutput(t *testing.T) {
	cfg := testConfig(t)

	cmd := NewGetCommand(cfg)
	output := captureOutput(t, cmd, []string{"github.accounts.personal.account_id", "--json"})

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &result))

	assert.Equal(t, "github.accounts.personal.account_id", result["path"])
	assert.Equal(t, "user123", result["value"])
	assert.Equal(t, cfg.File, result["file"])
}

func TestGetCommand_NotFound(t *testing.T) {
	cfg := testConfig(t)

	cmd := NewGetCommand(cfg)
	err := runExpectingError(t, cmd, []string{"github.accounts.personal.nope"})

	var notFound secrets.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "github.accounts.personal.nope", notFound.Path)
	assert.Contains(t, err.Error(), "homesecret list")
}

func TestGetCommand_FileMissing(t *testing.T) {
	cfg := missingConfig(t)

	cmd := NewGetCommand(cfg)
	err := runExpectingError(t, cmd, []string{"any.path"})

	var fileMissing secrets.FileMissingError
	require.True(t, errors.As(err, &fileMissing))
	assert.Contains(t, err.Error(), "--file")
}
