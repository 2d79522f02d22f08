package xorint

import (
	"crypto/subtle"
	"runtime"
)

// secureWipe zeroes temporaries that held key bytes or plaintext.
func secureWipe(data []byte) {
	if len(data) == 0 {
		return
	}

	// XOR the buffer with itself so the store is a data dependency the
	// compiler cannot drop as dead.
	subtle.XORBytes(data, data, data)
	runtime.KeepAlive(data)
}
