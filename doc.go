// Package xorint keeps small integer constants out of reach of static
// binary analysis and casual memory scanning.
//
// A protected integer lives in a container that stores only its encrypted
// form. The container is decrypted at the point of use and the plaintext is
// handed straight back to the caller; the container itself keeps the
// ciphertext.
//
// This is obfuscation, not confidentiality. The keys ship inside the binary
// as immediates, so the scheme defeats grep and naive pattern matching but
// not a debugger.
//
// # Containers
//
// Two interchangeable strategies implement [Value]:
//
//   - [Block] seals the value as one 128-bit block with AES-128 or
//     Twofish-128, keyed by the Derived Key repeated across 16 bytes.
//     Sealing is deterministic for a given key and value.
//   - [Stream] XORs the value with the Derived Key and a 64-bit runtime
//     salt drawn from crypto/rand, so two containers holding the same value
//     differ.
//
//	limit := xorint.NewBlock(int32(1234))
//	if n > limit.Get() {
//	    // ...
//	}
//
//	magic := xorint.NewStream(uint64(0xC0FFEE))
//	send(magic.Get())
//
// # Keys
//
// Keys are derived at build time by [github.com/opd-ai/xorint/keysched] and
// emitted as Go literals by cmd/xorintgen. [SizeKey] selects one of the
// package's width keys, whose seed is the byte size of the wrapped type, so
// the same value wrapped as int16 and int32 is sealed under different keys.
// Run go generate to rotate them for a new build.
//
// Callers wanting independent keys per call site describe them in a key
// manifest and generate [Keyer] types into their own package:
//
//	//go:generate xorintgen -manifest keys.yaml
//
//	flags := xorint.NewStreamWithKey[FeatureKey](uint32(0b1011))
//
// # Toggle
//
// Every container tracks an explicit [State]. Toggle decrypts the stored
// representation in place when it is [Encrypted] and encrypts it when it is
// [Decrypted], so two calls always restore the original ciphertext. Get
// returns the right value in either state.
//
// # Thread Safety
//
// Containers are plain values with no internal locking. Concurrent Get,
// Toggle, Store or Rekey calls on one container are a data race and need
// external synchronization. [SetDefaultCipher] is safe to call at any time.
package xorint
