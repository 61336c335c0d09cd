package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/systmms/homesecret/internal/config"
	hserrors "github.com/systmms/homesecret/internal/errors"
)

func NewGetCommand(cfg *config.Config) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Get a single secret value",
		Long: `Retrieve and display the raw value at a dotted path.

By default only the value is printed, making the command suitable for
scripting. Intermediate paths resolve to the whole nested table.

Examples:
  # Get a single value
  homesecret get github.accounts.personal.account_id

  # Get value with metadata in JSON format
  homesecret get db.mysql_dev.port --json

  # Use in scripts
  export DB_PORT=$(homesecret get db.mysql_dev.port)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			store := cfg.Store()
			cfg.Logger.Debug("Resolving %q against %s", path, store.File())

			value, err := store.Value(path)
			if err != nil {
				return hserrors.Enrich(err)
			}

			// Output the result
			if jsonOutput {
				// JSON output with metadata
				output := map[string]interface{}{
					"path":  path,
					"value": value,
					"file":  store.File(),
				}

				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(output); err != nil {
					return fmt.Errorf("failed to encode JSON: %w", err)
				}
			} else {
				// Raw value output (default)
				fmt.Print(value)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format with metadata")

	return cmd
}
