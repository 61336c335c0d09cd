package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/systmms/homesecret/internal/config"
	"github.com/systmms/homesecret/internal/logging"
)

const fixtureTOML = `
[github]
description = "GitHub platform"

[github.accounts.personal]
description = "Personal account"
account_id = "user123"
admin_email = "..."

[github.accounts.work]
account_id = "work-user"

[db.mysql_dev]
host = "dev.mysql.internal"
port = 3306
ssl_enabled = true
`

// testConfig writes the fixture secrets file and returns a config pointing
// at it.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "home_secret.toml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureTOML), 0600))
	return &config.Config{
		File:   path,
		Logger: logging.New(false, true),
	}
}

// missingConfig returns a config pointing at a file that does not exist.
func missingConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		File:   filepath.Join(t.TempDir(), "absent.toml"),
		Logger: logging.New(false, true),
	}
}

// captureOutput captures command stdout for testing
func captureOutput(t *testing.T, cmd *cobra.Command, args []string) string {
	t.Helper()

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set args and execute
	if args != nil {
		cmd.SetArgs(args)
	}

	err := cmd.Execute()
	if err != nil {
		_ = w.Close()
		os.Stdout = old
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		t.Logf("Command output before error: %s", buf.String())
		require.NoError(t, err)
	}

	// Restore stdout and read output
	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	return buf.String()
}

// runExpectingError executes the command and returns the error it produced.
func runExpectingError(t *testing.T, cmd *cobra.Command, args []string) error {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(args)

	err := cmd.Execute()

	_ = w.Close()
	os.Stdout = old
	_, _ = io.Copy(io.Discard, r)

	require.Error(t, err)
	return err
}
