package commands

import (
	"github.com/spf13/cobra"

	"github.com/systmms/homesecret/internal/config"
	hserrors "github.com/systmms/homesecret/internal/errors"
	"github.com/systmms/homesecret/internal/gen"
)

func NewGenCommand(cfg *config.Config) *cobra.Command {
	var (
		outputPath  string
		packageName string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go accessors for every secret path",
		Long: `Generate a Go source file exposing one named token per secret path.

The generated file declares a SecretTokens struct with one field per leaf in
the secrets file, a BindSecretTokens constructor, and a ValidateSecretTokens
self-check that resolves and prints every field.

An existing output file is never overwritten unless --force is given.

Examples:
  homesecret gen
  homesecret gen --out internal/appsecrets/tokens.go --package appsecrets
  homesecret gen --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := cfg.Store()
			cfg.Logger.Debug("Generating accessors from %s", store.File())

			err := gen.Generate(store, gen.Options{
				Package: packageName,
				Output:  outputPath,
				Force:   force,
			})
			if err != nil {
				return hserrors.Enrich(err)
			}

			out := outputPath
			if out == "" {
				out = gen.DefaultOutputFile
			}
			cfg.Logger.Info("Wrote %s", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputPath, "out", "", "Output file (default "+gen.DefaultOutputFile+")")
	cmd.Flags().StringVar(&packageName, "package", "main", "Package name for the generated file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the output file if it exists")

	return cmd
}
