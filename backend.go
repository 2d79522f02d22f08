package xorint

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"golang.org/x/crypto/twofish"
	"golang.org/x/sys/cpu"
)

// BlockSize is the size of a Block container's ciphertext.
const BlockSize = 16

// Cipher identifies the block cipher a Block container is sealed with.
type Cipher uint8

const (
	// CipherAES is AES-128. The standard library dispatches it to AES-NI,
	// ARMv8 AES or CPACF when the CPU has them.
	CipherAES Cipher = iota + 1
	// CipherTwofish is Twofish-128, used where no AES hardware exists.
	CipherTwofish
)

// String returns the cipher name.
func (c Cipher) String() string {
	switch c {
	case CipherAES:
		return "aes-128"
	case CipherTwofish:
		return "twofish-128"
	default:
		return fmt.Sprintf("cipher(%d)", uint8(c))
	}
}

func (c Cipher) valid() bool {
	return c == CipherAES || c == CipherTwofish
}

var defaultCipher atomic.Uint32

func init() {
	defaultCipher.Store(uint32(detectCipher()))
}

// hasAESHardware reports whether the CPU exposes AES instructions.
func hasAESHardware() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES || cpu.S390X.HasAES
}

func detectCipher() Cipher {
	c := CipherTwofish
	if hasAESHardware() {
		c = CipherAES
	}

	NewLogger("detectCipher").
		WithField("cipher", c.String()).
		WithField("aes_hardware", hasAESHardware()).
		Debug("Selected default block cipher")

	return c
}

// DefaultCipher returns the cipher new Block containers are sealed with.
func DefaultCipher() Cipher {
	return Cipher(defaultCipher.Load())
}

// SetDefaultCipher changes the cipher for Block containers constructed
// afterwards. Existing containers keep the cipher they were sealed with.
// Passing an unknown value restores the detected default.
func SetDefaultCipher(c Cipher) {
	if !c.valid() {
		c = detectCipher()
	}
	defaultCipher.Store(uint32(c))

	NewLogger("SetDefaultCipher").
		WithField("cipher", c.String()).
		Info("Default block cipher changed")
}

// newBlockCipher expands the 64-bit key into a 128-bit cipher key by
// repeating it and keys c with it.
func newBlockCipher(c Cipher, key uint64) cipher.Block {
	var raw [BlockSize]byte
	binary.LittleEndian.PutUint64(raw[:8], key)
	binary.LittleEndian.PutUint64(raw[8:], key)
	defer secureWipe(raw[:])

	var (
		b   cipher.Block
		err error
	)
	switch c {
	case CipherTwofish:
		b, err = twofish.NewCipher(raw[:])
	default:
		b, err = aes.NewCipher(raw[:])
	}
	if err != nil {
		panic(fmt.Sprintf("xorint: %s key setup: %v", c, err))
	}
	return b
}
