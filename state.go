package xorint

// State is the storage state of a container.
type State uint8

const (
	// Encrypted means the container holds only ciphertext. Every constructor
	// leaves a container in this state.
	Encrypted State = iota
	// Decrypted means Toggle has turned the stored bytes into plaintext.
	Decrypted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Encrypted:
		return "encrypted"
	case Decrypted:
		return "decrypted"
	default:
		return "unknown"
	}
}

// flip returns the opposite state.
func (s State) flip() State {
	if s == Encrypted {
		return Decrypted
	}
	return Encrypted
}

// Value is the behaviour shared by Block and Stream containers.
type Value[T Integer] interface {
	// Get returns the wrapped value.
	Get() T
	// Toggle flips the stored representation between Encrypted and Decrypted.
	Toggle()
	// State reports the current storage state.
	State() State
	// Bytes returns a copy of the stored representation.
	Bytes() []byte
}
