package keygen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"text/template"

	"github.com/opd-ai/xorint/keysched"
)

// Key is one derived key ready to be emitted.
type Key struct {
	Name  string
	Seed  uint32
	Value uint64
}

// DeriveKeys runs the Key Deriver over every key of m under salt. Width keys
// come first, in seed order, followed by named keys in manifest order.
func DeriveKeys(m *Manifest, salt string) (widths, named []Key) {
	if m.Widths {
		for _, s := range widthSeeds {
			widths = append(widths, Key{
				Name:  fmt.Sprintf("keyWidth%d", s),
				Seed:  s,
				Value: keysched.Derive(s, salt),
			})
		}
	}
	for _, k := range m.Keys {
		seed := k.ResolvedSeed()
		named = append(named, Key{
			Name:  k.Name,
			Seed:  seed,
			Value: keysched.Derive(seed, salt),
		})
	}
	return widths, named
}

var keyFile = template.Must(template.New("keys").Funcs(template.FuncMap{
	"hex64": func(v uint64) string { return fmt.Sprintf("0x%016x", v) },
	"hex32": func(v uint32) string { return fmt.Sprintf("0x%08x", v) },
}).Parse(`// Code generated by xorintgen. DO NOT EDIT.

package {{.Package}}
{{if .Widths}}
const (
{{- range .Widths}}
	{{.Name}} = {{hex64 .Value}}
{{- end}}
)
{{end}}
{{- range .Named}}
// {{.Name}} is a generated xorint key source (seed {{hex32 .Seed}}).
type {{.Name}} struct{}

// Key returns the derived key.
func ({{.Name}}) Key() uint64 { return {{hex64 .Value}} }
{{end}}`))

// Render produces the gofmt-formatted key file for m under salt. The salt
// itself is not written to the output.
func Render(m *Manifest, salt string) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	widths, named := DeriveKeys(m, salt)

	var buf bytes.Buffer
	err := keyFile.Execute(&buf, struct {
		Package string
		Widths  []Key
		Named   []Key
	}{m.Package, widths, named})
	if err != nil {
		return nil, fmt.Errorf("failed to render key file: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format key file: %w", err)
	}
	return src, nil
}

// WriteFile renders m and writes it to path.
func WriteFile(path string, m *Manifest, salt string) error {
	src, err := Render(m, salt)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}
