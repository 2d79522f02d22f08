package xorint

import "unsafe"

// Integer is the set of types a container can wrap.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// widthOf reports the size of T in bytes.
func widthOf[T Integer]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// widen converts v to 64 bits. Signed values are sign-extended.
func widen[T Integer](v T) uint64 {
	return uint64(v)
}

// narrow truncates u back to T.
func narrow[T Integer](u uint64) T {
	return T(u)
}
