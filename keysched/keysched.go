// Package keysched derives the per-instantiation 64-bit keys used by xorint
// containers.
//
// The derivation is a pure function of a Seed and a Build Salt and is meant
// to run at build time (see cmd/xorintgen), so the resulting key only ever
// appears in a binary as an immediate operand.
package keysched

import "hash/fnv"

const (
	// OffsetBasis32 is the 32-bit FNV offset basis.
	OffsetBasis32 uint32 = 2166136261

	// Prime32 is the 32-bit FNV prime.
	Prime32 uint32 = 16777619
)

// Fold runs the FNV-1a step acc = (acc ^ b) * Prime32 over every byte of
// salt, starting from acc.
func Fold(acc uint32, salt string) uint32 {
	for i := 0; i < len(salt); i++ {
		acc = (acc ^ uint32(salt[i])) * Prime32
	}
	return acc
}

// Derive computes the 64-bit key for seed under salt.
//
// The high half is the salt folded from OffsetBasis32+seed, the low half is
// the salt folded again from the high half. Each fold step is a bijection on
// uint32, so distinct seeds always produce distinct keys for a given salt.
func Derive(seed uint32, salt string) uint64 {
	h1 := Fold(OffsetBasis32+seed, salt)
	h2 := Fold(h1, salt)
	return uint64(h1)<<32 | uint64(h2)
}

// SeedOf maps a key name to a seed with 32-bit FNV-1a.
func SeedOf(name string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return h.Sum32()
}
