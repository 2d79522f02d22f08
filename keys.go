package xorint

//go:generate go run ./cmd/xorintgen -package xorint -widths -out zz_keys_generated.go

// Keyer supplies the Derived Key for a family of containers. Implementations
// are zero-size types whose Key method returns a literal, so the key is an
// immediate at the call site and is never stored inside a container.
//
// cmd/xorintgen emits Keyer types for the named keys of a manifest.
type Keyer interface {
	Key() uint64
}

// SizeKey selects the width key of T, whose seed is the byte size of T.
// Signed and unsigned types of one width share a key.
type SizeKey[T Integer] struct{}

// Key returns the generated key for the width of T.
func (SizeKey[T]) Key() uint64 {
	return widthKey(widthOf[T]())
}

func widthKey(width uintptr) uint64 {
	switch width {
	case 1:
		return keyWidth1
	case 2:
		return keyWidth2
	case 4:
		return keyWidth4
	default:
		return keyWidth8
	}
}
