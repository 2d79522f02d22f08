// Package main provides xorintgen, the build step that derives xorint keys
// and writes them into a package as Go literals.
//
// # Usage
//
// Regenerate the width keys of the xorint package itself:
//
//	go run ./cmd/xorintgen -package xorint -widths -out zz_keys_generated.go
//
// Generate named key types for another package from a manifest:
//
//	//go:generate xorintgen -manifest keys.yaml
//
// # Configuration Options
//
//   - -manifest: YAML key manifest (optional when -widths is set)
//   - -package: package clause of the output (default: manifest package, then $GOPACKAGE)
//   - -out: output file (default: manifest output, then zz_keys_generated.go)
//   - -widths: also emit the per-width keys
//   - -salt: Build Salt (default: current UTC time in RFC 3339 form)
//   - -log-level: DEBUG, INFO, WARN or ERROR (default: INFO)
//
// Flags override the corresponding manifest fields. Every run without -salt
// rotates all keys, so a rebuild after go generate carries fresh keys.
package main
