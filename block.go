package xorint

import (
	"encoding/binary"
	"errors"
)

// ErrTampered is returned by Block.Verify when the two broadcast halves of
// the decrypted block disagree.
var ErrTampered = errors.New("xorint: block integrity check failed")

var _ Value[int32] = (*Block[int32, SizeKey[int32]])(nil)

// Block holds one integer sealed as a single 128-bit cipher block.
//
// The value is broadcast into both 64-bit halves of the block before
// encryption; Get returns the low half. The key comes from K and is never
// stored in the container.
//
// A Block is not safe for concurrent use.
type Block[T Integer, K Keyer] struct {
	buf    [BlockSize]byte
	state  State
	cipher Cipher
}

// NewBlock seals v under the width key of T.
func NewBlock[T Integer](v T) *Block[T, SizeKey[T]] {
	return NewBlockWithKey[SizeKey[T]](v)
}

// NewBlockWithKey seals v under the key supplied by K.
func NewBlockWithKey[K Keyer, T Integer](v T) *Block[T, K] {
	b := &Block[T, K]{cipher: DefaultCipher()}
	b.seal(v)
	return b
}

func (b *Block[T, K]) seal(v T) {
	var k K
	c := newBlockCipher(b.cipher, k.Key())

	u := launder(widen(v))
	binary.LittleEndian.PutUint64(b.buf[:8], u)
	binary.LittleEndian.PutUint64(b.buf[8:], u)
	c.Encrypt(b.buf[:], b.buf[:])
	b.state = Encrypted
}

// open decrypts the stored block into dst.
func (b *Block[T, K]) open(dst *[BlockSize]byte) {
	if b.state == Decrypted {
		*dst = b.buf
		return
	}
	var k K
	newBlockCipher(b.cipher, k.Key()).Decrypt(dst[:], b.buf[:])
}

// Get decrypts and returns the value. The stored ciphertext is left
// untouched and the decrypted temporary is wiped before returning.
func (b *Block[T, K]) Get() T {
	var plain [BlockSize]byte
	b.open(&plain)
	u := launder(binary.LittleEndian.Uint64(plain[:8]))
	secureWipe(plain[:])
	return narrow[T](u)
}

// Toggle decrypts the stored block in place when it is Encrypted and
// encrypts it in place when it is Decrypted. Two calls restore the original
// ciphertext.
func (b *Block[T, K]) Toggle() {
	var k K
	c := newBlockCipher(b.cipher, k.Key())
	if b.state == Encrypted {
		c.Decrypt(b.buf[:], b.buf[:])
	} else {
		c.Encrypt(b.buf[:], b.buf[:])
	}
	b.state = b.state.flip()
}

// Store replaces the value, sealing it with the container's cipher.
func (b *Block[T, K]) Store(v T) {
	b.seal(v)
}

// Verify decrypts the block and checks that both halves still agree.
func (b *Block[T, K]) Verify() error {
	var plain [BlockSize]byte
	b.open(&plain)
	defer secureWipe(plain[:])

	lo := binary.LittleEndian.Uint64(plain[:8])
	hi := binary.LittleEndian.Uint64(plain[8:])
	if lo != hi {
		NewLogger("Block.Verify").
			WithFields(ContainerFields("block", widthOf[T](), b.state)).
			WithField("cipher", b.cipher.String()).
			Warn("Block integrity check failed")
		return ErrTampered
	}
	return nil
}

// State reports whether the stored block is ciphertext or plaintext.
func (b *Block[T, K]) State() State {
	return b.state
}

// Cipher reports the cipher the block was sealed with.
func (b *Block[T, K]) Cipher() Cipher {
	return b.cipher
}

// Bytes returns a copy of the stored block.
func (b *Block[T, K]) Bytes() []byte {
	out := make([]byte, BlockSize)
	copy(out, b.buf[:])
	return out
}
