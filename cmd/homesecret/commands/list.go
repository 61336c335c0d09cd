package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/systmms/homesecret/internal/config"
	hserrors "github.com/systmms/homesecret/internal/errors"
	"github.com/systmms/homesecret/pkg/secrets"
)

func NewListCommand(cfg *config.Config) *cobra.Command {
	var (
		format   string
		unmasked bool
	)

	cmd := &cobra.Command{
		Use:   "list [query terms...]",
		Short: "List secrets with masked values",
		Long: `Enumerate every secret leaf in the file, masked for safe inspection.

Query terms filter by substring of the dotted path, case- and
separator-insensitive ("My-API" matches "my_api"). All terms must match
(logical AND). Terms may be separated by spaces or commas.

Description entries and "..." placeholders are never listed.

Examples:
  homesecret list
  homesecret list github personal
  homesecret list mysql --format json
  homesecret list aws --unmasked`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			store := cfg.Store()
			cfg.Logger.Debug("Listing %s with query %q", store.File(), query)

			entries, err := secrets.Search(store, query)
			if err != nil {
				return hserrors.Enrich(err)
			}

			if unmasked {
				cfg.Logger.Warn("Printing unmasked secret values")
			}

			rows := make([]listRow, 0, len(entries))
			for _, entry := range entries {
				row := listRow{Path: entry.Path}
				if unmasked {
					row.Value = fmt.Sprintf("%v", entry.Value)
				} else {
					row.Value = secrets.Mask(entry.Value)
				}
				rows = append(rows, row)
			}

			switch format {
			case "table", "":
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "PATH\tVALUE")
				for _, row := range rows {
					fmt.Fprintf(w, "%s\t%s\n", row.Path, row.Value)
				}
				return w.Flush()
			case "json":
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(rows)
			case "yaml":
				encoder := yaml.NewEncoder(os.Stdout)
				defer encoder.Close()
				return encoder.Encode(rows)
			default:
				return hserrors.FlagError{
					Flag:       "--format",
					Value:      format,
					Message:    "unsupported output format",
					Suggestion: "Use table, json, or yaml",
				}
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, json, or yaml")
	cmd.Flags().BoolVar(&unmasked, "unmasked", false, "Print raw values instead of masked ones")

	return cmd
}

// listRow is one line of list output in any format.
type listRow struct {
	Path  string `json:"path" yaml:"path"`
	Value string `json:"value" yaml:"value"`
}
