package util

type Byter interface {
	Bytes() []byte
}

// CopyBytes returns a copy of b; nil stays nil.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}

	n := make([]byte, len(b))
	copy(n, b)

	return n
}
