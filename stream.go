package xorint

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

var _ Value[uint64] = (*Stream[uint64, SizeKey[uint64]])(nil)

// Stream holds one integer XORed with its Derived Key and a runtime salt
// drawn fresh for every construction. Instances sharing a key therefore
// never share a ciphertext.
//
// A Stream is not safe for concurrent use.
type Stream[T Integer, K Keyer] struct {
	data  uint64
	salt  uint64
	state State
}

// NewStream encrypts v under the width key of T.
func NewStream[T Integer](v T) *Stream[T, SizeKey[T]] {
	return NewStreamWithKey[SizeKey[T]](v)
}

// NewStreamWithKey encrypts v under the key supplied by K.
func NewStreamWithKey[K Keyer, T Integer](v T) *Stream[T, K] {
	s := &Stream[T, K]{}
	s.Store(v)
	return s
}

// runtimeSalt reads 64 bits from the platform random source.
func runtimeSalt() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("xorint: reading runtime salt: %v", err))
	}
	return binary.LittleEndian.Uint64(buf[:])
}

func (s *Stream[T, K]) pad() uint64 {
	var k K
	return k.Key() ^ s.salt
}

// Store replaces the value under a new runtime salt.
func (s *Stream[T, K]) Store(v T) {
	s.salt = runtimeSalt()
	s.data = launder(widen(v) ^ s.pad())
	s.state = Encrypted
}

// Get returns the value without changing the stored ciphertext.
func (s *Stream[T, K]) Get() T {
	if s.state == Decrypted {
		return narrow[T](launder(s.data))
	}
	return narrow[T](launder(s.data ^ s.pad()))
}

// Toggle applies the XOR transform in place. XOR is an involution, so each
// call alternates the stored word between ciphertext and plaintext.
func (s *Stream[T, K]) Toggle() {
	s.data = launder(s.data ^ s.pad())
	s.state = s.state.flip()
}

// Rekey draws a new runtime salt and re-encrypts the stored value under it.
// The plaintext is never written back to the container. A Decrypted
// container is re-encrypted.
func (s *Stream[T, K]) Rekey() {
	salt := runtimeSalt()
	if s.state == Decrypted {
		s.Toggle()
	}
	// data = v ^ key ^ old; v ^ key ^ new = data ^ old ^ new
	s.data = launder(s.data ^ s.salt ^ salt)
	s.salt = salt
}

// State reports whether the stored word is ciphertext or plaintext.
func (s *Stream[T, K]) State() State {
	return s.state
}

// Bytes returns a copy of the stored ciphertext followed by the salt.
func (s *Stream[T, K]) Bytes() []byte {
	out := make([]byte, 16)
	binary.LittleEndian.PutUint64(out[:8], s.data)
	binary.LittleEndian.PutUint64(out[8:], s.salt)
	return out
}
