package xorint

// launder returns v unchanged. It is never inlined, so the compiler cannot
// see through it to constant-fold a plaintext back into the binary or keep a
// cached copy of it around the call.
//
//go:noinline
func launder(v uint64) uint64 {
	return v
}
