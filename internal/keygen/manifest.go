package keygen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/xorint/keysched"
)

var (
	// ErrInvalidManifest reports a manifest that cannot produce a key file.
	ErrInvalidManifest = errors.New("invalid key manifest")

	// ErrDuplicateKey reports two keys sharing a name or a seed.
	ErrDuplicateKey = errors.New("duplicate key")
)

// widthSeeds are the seeds of the width keys: the byte sizes of the
// supported integer types.
var widthSeeds = []uint32{1, 2, 4, 8}

// KeySpec describes one named key. Without an explicit seed the seed is
// derived from the name.
type KeySpec struct {
	Name string  `yaml:"name"`
	Seed *uint32 `yaml:"seed,omitempty"`
}

// ResolvedSeed returns the explicit seed or the seed derived from the name.
func (k KeySpec) ResolvedSeed() uint32 {
	if k.Seed != nil {
		return *k.Seed
	}
	return keysched.SeedOf(k.Name)
}

// Manifest lists the keys to generate for one Go package.
type Manifest struct {
	Package string    `yaml:"package"`
	Output  string    `yaml:"output"`
	Widths  bool      `yaml:"widths"`
	Keys    []KeySpec `yaml:"keys"`
}

// ReadManifest reads a YAML manifest without validating it, so callers can
// fill in fields before calling Validate. Unknown fields are rejected.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return decodeManifest(data)
}

// LoadManifest reads and validates a YAML manifest.
func LoadManifest(path string) (*Manifest, error) {
	m, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	m, err := decodeManifest(data)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeManifest(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return &m, nil
}

// Validate checks identifiers and uniqueness of names and seeds.
func (m *Manifest) Validate() error {
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("%w: package %q is not a Go identifier", ErrInvalidManifest, m.Package)
	}
	if !m.Widths && len(m.Keys) == 0 {
		return fmt.Errorf("%w: no keys to generate", ErrInvalidManifest)
	}

	names := make(map[string]bool, len(m.Keys))
	seeds := make(map[uint32]string, len(m.Keys)+len(widthSeeds))
	if m.Widths {
		for _, s := range widthSeeds {
			seeds[s] = fmt.Sprintf("width key %d", s)
		}
	}

	for _, k := range m.Keys {
		if !token.IsIdentifier(k.Name) || !token.IsExported(k.Name) {
			return fmt.Errorf("%w: key name %q is not an exported Go identifier", ErrInvalidManifest, k.Name)
		}
		if names[k.Name] {
			return fmt.Errorf("%w: name %s", ErrDuplicateKey, k.Name)
		}
		names[k.Name] = true

		seed := k.ResolvedSeed()
		if prev, ok := seeds[seed]; ok {
			return fmt.Errorf("%w: %s and %s both use seed %#x", ErrDuplicateKey, prev, k.Name, seed)
		}
		seeds[seed] = k.Name
	}
	return nil
}
