package xorint

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
)

type testKeyA struct{}

func (testKeyA) Key() uint64 { return 0x0123456789abcdef }

type testKeyB struct{}

func (testKeyB) Key() uint64 { return 0xfedcba9876543210 }

// useCipher sets the default cipher for the duration of the test.
func useCipher(t *testing.T, c Cipher) {
	t.Helper()
	prev := DefaultCipher()
	SetDefaultCipher(c)
	t.Cleanup(func() { SetDefaultCipher(prev) })
}

// captureLogs routes logrus output into a buffer until the test ends.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut := logrus.StandardLogger().Out
	prevLevel := logrus.GetLevel()
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
	})
	return &buf
}

// le64 returns the little-endian encoding of v widened to 64 bits.
func le64[T Integer](v T) []byte {
	out := make([]byte, 8)
	binary.LittleEndian.PutUint64(out, widen(v))
	return out
}

// broadcast returns the plaintext block a Block container seals for v.
func broadcast[T Integer](v T) []byte {
	return append(le64(v), le64(v)...)
}

var (
	int8Values   = []int8{0, 1, -1, 42, math.MinInt8, math.MaxInt8}
	int16Values  = []int16{0, 1, -1, 1234, math.MinInt16, math.MaxInt16}
	int32Values  = []int32{0, 1, -1, 1234, math.MinInt32, math.MaxInt32}
	int64Values  = []int64{0, 1, -1, 1234, math.MinInt64, math.MaxInt64}
	uint8Values  = []uint8{0, 1, 0x7f, 0x80, math.MaxUint8}
	uint16Values = []uint16{0, 1, 1234, 0x8000, math.MaxUint16}
	uint32Values = []uint32{0, 1, 1234, 0xdeadbeef, math.MaxUint32}
	uint64Values = []uint64{0, 1, 1234, 0xdeadbeefcafebabe, math.MaxUint64}
	intValues    = []int{0, 1, -1, 1234, math.MinInt, math.MaxInt}
	uintValues   = []uint{0, 1, 1234, math.MaxUint}
)
