package xorint

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkStreamRoundTrip[T Integer](t *testing.T, values []T) {
	t.Helper()
	for _, v := range values {
		s := NewStream(v)
		assert.Equal(t, v, s.Get(), "round trip of %v", v)
		assert.Equal(t, Encrypted, s.State())

		raw := s.Bytes()
		assert.Len(t, raw, 16)
		assert.False(t, bytes.Equal(le64(v), raw[:8]), "stored word equals plaintext for %v", v)
	}
}

func TestStreamRoundTrip(t *testing.T) {
	checkStreamRoundTrip(t, int8Values)
	checkStreamRoundTrip(t, int16Values)
	checkStreamRoundTrip(t, int32Values)
	checkStreamRoundTrip(t, int64Values)
	checkStreamRoundTrip(t, uint8Values)
	checkStreamRoundTrip(t, uint16Values)
	checkStreamRoundTrip(t, uint32Values)
	checkStreamRoundTrip(t, uint64Values)
	checkStreamRoundTrip(t, intValues)
	checkStreamRoundTrip(t, uintValues)
}

func TestStreamHides1234(t *testing.T) {
	pattern := make([]byte, 4)
	binary.LittleEndian.PutUint32(pattern, 1234)

	s := NewStream(int32(1234))
	assert.Equal(t, int32(1234), s.Get())
	assert.False(t, bytes.Contains(s.Bytes()[:8], pattern))
}

func TestStreamSaltUniqueness(t *testing.T) {
	a := NewStream(uint32(42))
	b := NewStream(uint32(42))

	assert.NotEqual(t, a.salt, b.salt)
	assert.NotEqual(t, a.data, b.data)
	assert.Equal(t, a.Get(), b.Get())
}

func TestStreamKeyDiversity(t *testing.T) {
	// With the salts pinned equal, only the key separates the ciphertexts.
	a := NewStream(int16(5))
	b := NewStream(int32(5))
	a.salt, b.salt = 0, 0
	a.data = widen(int16(5)) ^ a.pad()
	b.data = widen(int32(5)) ^ b.pad()

	assert.NotEqual(t, a.data, b.data)
	assert.Equal(t, int16(5), a.Get())
	assert.Equal(t, int32(5), b.Get())

	named := NewStreamWithKey[testKeyA](int32(5))
	named.salt = 0
	named.data = widen(int32(5)) ^ named.pad()
	assert.NotEqual(t, b.data, named.data)
	assert.Equal(t, int32(5), named.Get())
}

func TestStreamToggleSymmetry(t *testing.T) {
	s := NewStream(int64(-1234))
	sealed := s.Bytes()

	s.Toggle()
	assert.Equal(t, Decrypted, s.State())
	assert.Equal(t, le64(int64(-1234)), s.Bytes()[:8])
	assert.Equal(t, int64(-1234), s.Get())

	s.Toggle()
	assert.Equal(t, Encrypted, s.State())
	assert.Equal(t, sealed, s.Bytes())
	assert.Equal(t, int64(-1234), s.Get())
}

func TestStreamGetIsNonDestructive(t *testing.T) {
	s := NewStream(uint8(200))
	before := s.Bytes()
	for i := 0; i < 3; i++ {
		require.Equal(t, uint8(200), s.Get())
	}
	assert.Equal(t, before, s.Bytes())
}

func TestStreamRekey(t *testing.T) {
	s := NewStream(uint32(0xcafe))
	before := s.Bytes()

	s.Rekey()
	assert.Equal(t, Encrypted, s.State())
	assert.Equal(t, uint32(0xcafe), s.Get())
	assert.NotEqual(t, before[8:], s.Bytes()[8:], "salt did not change")
	assert.NotEqual(t, before[:8], s.Bytes()[:8], "ciphertext did not change")
}

func TestStreamRekeyFromDecrypted(t *testing.T) {
	s := NewStream(int8(-3))
	s.Toggle()
	require.Equal(t, Decrypted, s.State())

	s.Rekey()
	assert.Equal(t, Encrypted, s.State())
	assert.Equal(t, int8(-3), s.Get())
	assert.False(t, bytes.Equal(le64(int8(-3)), s.Bytes()[:8]))
}

func TestStreamStore(t *testing.T) {
	s := NewStream(uint64(1))
	oldSalt := s.salt
	s.Toggle()

	s.Store(uint64(0xfeedfacecafebeef))
	assert.Equal(t, Encrypted, s.State())
	assert.Equal(t, uint64(0xfeedfacecafebeef), s.Get())
	assert.NotEqual(t, oldSalt, s.salt)
}

func TestStreamSatisfiesValue(t *testing.T) {
	var v Value[uint64] = NewStream(uint64(64))
	assert.Equal(t, uint64(64), v.Get())
	v.Toggle()
	assert.Equal(t, Decrypted, v.State())
	v.Toggle()
	assert.Equal(t, Encrypted, v.State())
}
