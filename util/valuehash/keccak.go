package valuehash

import (
	"bytes"

	"golang.org/x/crypto/sha3"
)

const keccak256Size int = 32

// Keccak256Hasher produces the legacy Keccak-256 digest, the one used
// before the SHA3 standardization changed the padding. It is not SHA3-256.
var Keccak256Hasher Hasher = HasherFunc(func(b []byte) Hash {
	return NewKeccak256(b)
})

type Keccak256 [keccak256Size]byte

func NewKeccak256(b []byte) Keccak256 {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(b)

	var k Keccak256
	copy(k[:], h.Sum(nil))

	return k
}

func (hs Keccak256) String() string {
	return toString(hs[:])
}

func (hs Keccak256) Empty() bool {
	return hs == Keccak256{}
}

func (hs Keccak256) IsValid([]byte) error {
	if hs.Empty() {
		return EmptyHashError.Call()
	}

	return nil
}

func (Keccak256) Size() int {
	return keccak256Size
}

func (hs Keccak256) Bytes() []byte {
	return hs[:]
}

func (hs Keccak256) Equal(h Hash) bool {
	if h == nil {
		return false
	}

	return bytes.Equal(hs[:], h.Bytes())
}
