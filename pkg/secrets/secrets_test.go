package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixtureTOML mirrors the shape of a real home_secret.toml: nested tables,
// description metadata, "..." placeholders, and an inline table.
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
description = "Dev MySQL instance"
host = "dev.mysql.internal"
port = 3306
ssl_enabled = true

[aws.accounts.prod.secrets.deployment]
creds = { access_key = "AKIAEXAMPLE", secret_key = "wJalrXUtnFEMI" }
`

// writeFixture writes the fixture secrets file into a temp dir and returns
// its path.
func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "home_secret.toml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureTOML), 0600))
	return path
}

// loadFixture parses the fixture into a Mapping.
func loadFixture(t *testing.T) Mapping {
	t.Helper()
	data, err := LoadFile(writeFixture(t))
	require.NoError(t, err)
	return data
}
