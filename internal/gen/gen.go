// Package gen generates a Go source file giving named-attribute access to
// every secret discovered in the secrets file. Each leaf path becomes one
// struct field bound to a lazy token, plus a self-check routine that resolves
// and prints every field.
package gen

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"unicode"

	hserrors "github.com/systmms/homesecret/internal/errors"
	"github.com/systmms/homesecret/pkg/secrets"
)

// DefaultOutputFile is where the generated accessor lands unless overridden.
const DefaultOutputFile = "home_secret_gen.go"

// Options control the generated artifact.
type Options struct {
	Package string // package clause for the generated file; defaults to "main"
	Output  string // output path; defaults to DefaultOutputFile
	Force   bool   // overwrite an existing output file
}

type attribute struct {
	Name string
	Path string
}

type templateData struct {
	Package string
	Attrs   []attribute
}

// AttrName converts a dotted path into an exported Go identifier. Dots become
// double underscores so the full hierarchy stays visible in the name, dashes
// become single underscores, and anything else that cannot appear in an
// identifier is folded to an underscore.
func AttrName(path string) string {
	var b strings.Builder
	for i, r := range path {
		switch {
		case r == '.':
			b.WriteString("__")
		case r == '-':
			b.WriteRune('_')
		case unicode.IsLetter(r) || r == '_':
			if i == 0 {
				r = unicode.ToUpper(r)
			}
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteRune('X')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Generate enumerates the store's leaves and writes the accessor source file.
// It refuses to overwrite an existing file unless Force is set. Fails with
// FileMissingError if the backing secrets file is absent.
func Generate(store *secrets.Store, opts Options) error {
	if opts.Package == "" {
		opts.Package = "main"
	}
	if opts.Output == "" {
		opts.Output = DefaultOutputFile
	}

	data, err := store.Data()
	if err != nil {
		return err
	}

	entries := secrets.Walk(data)
	attrs := make([]attribute, 0, len(entries))
	for _, entry := range entries {
		attrs = append(attrs, attribute{Name: AttrName(entry.Path), Path: entry.Path})
	}

	if !opts.Force {
		if _, err := os.Stat(opts.Output); err == nil {
			return hserrors.UserError{
				Message:    fmt.Sprintf("Output file %s already exists", opts.Output),
				Suggestion: "Pass --force to overwrite it",
			}
		}
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, templateData{Package: opts.Package, Attrs: attrs}); err != nil {
		return fmt.Errorf("failed to render generated source: %w", err)
	}

	if err := os.WriteFile(opts.Output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Output, err)
	}
	return nil
}

var fileTemplate = template.Must(template.New("accessor").Parse(accessorTemplate))

const accessorTemplate = `// Code generated by homesecret gen. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"

	"github.com/systmms/homesecret/pkg/secrets"
)

// SecretTokens binds one lazy token per secret in the secrets file.
type SecretTokens struct {
{{- range .Attrs}}
	{{.Name}} secrets.Token
{{- end}}
}

// BindSecretTokens loads the secrets file at path and binds every token.
func BindSecretTokens(path string) (SecretTokens, error) {
	hs := secrets.NewStore(path)
	var s SecretTokens
{{- if .Attrs}}
	var err error
{{- range .Attrs}}
	if s.{{.Name}}, err = hs.TokenFor({{printf "%q" .Path}}); err != nil {
		return s, err
	}
{{- end}}
{{- else}}
	_ = hs
{{- end}}
	return s, nil
}

// ValidateSecretTokens resolves and prints every bound token.
func ValidateSecretTokens(path string) error {
	s, err := BindSecretTokens(path)
	if err != nil {
		return err
	}
{{- if not .Attrs}}
	_ = s
{{- end}}
	checks := []struct {
		name  string
		token secrets.Token
	}{
{{- range .Attrs}}
		{{"{"}}{{printf "%q" .Name}}, s.{{.Name}}{{"}"}},
{{- end}}
	}
	fmt.Println("Validate secrets:")
	for _, c := range checks {
		v, err := c.token.Value()
		if err != nil {
			return err
		}
		fmt.Printf("%s = %v\n", c.name, v)
	}
	return nil
}
`
