package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/systmms/homesecret/internal/config"
	hserrors "github.com/systmms/homesecret/internal/errors"
	"github.com/systmms/homesecret/pkg/secrets"
)

func NewDoctorCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the secrets file and report its shape",
		Long: `Verify that the secrets file exists and parses.

This command checks:
- The secrets file exists at the configured location
- The file parses as TOML
- How many secret leaves, placeholders, and description entries it holds`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := cfg.Store()
			cfg.Logger.Info("Checking %s...", store.File())

			data, err := store.Data()
			if err != nil {
				cfg.Logger.Error("Secrets file error: %v", err)
				return hserrors.Enrich(err)
			}
			cfg.Logger.Info("Secrets file parsed successfully")

			leaves := secrets.Walk(data)
			placeholders, descriptions := countFiltered(data)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "File:\t%s\n", store.File())
			fmt.Fprintf(w, "Secret leaves:\t%d\n", len(leaves))
			fmt.Fprintf(w, "Unset placeholders:\t%d\n", placeholders)
			fmt.Fprintf(w, "Description entries:\t%d\n", descriptions)
			if err := w.Flush(); err != nil {
				return err
			}

			if placeholders > 0 {
				cfg.Logger.Warn("%d secret(s) still hold the %q placeholder", placeholders, secrets.Placeholder)
			}
			return nil
		},
	}

	return cmd
}

// countFiltered tallies the entries Walk skips: "..." placeholders and
// description keys, at any depth.
func countFiltered(m secrets.Mapping) (placeholders, descriptions int) {
	for key, value := range m {
		if key == secrets.DescriptionKey {
			descriptions++
			continue
		}
		switch v := value.(type) {
		case secrets.Mapping:
			p, d := countFiltered(v)
			placeholders += p
			descriptions += d
		case string:
			if v == secrets.Placeholder {
				placeholders++
			}
		}
	}
	return placeholders, descriptions
}
