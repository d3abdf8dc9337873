package valuehash

import (
	"fmt"

	"github.com/spikeekips/nemaddress/util"
	"github.com/spikeekips/nemaddress/util/isvalid"
)

var (
	EmptyHashError   = util.NewError("empty hash")
	InvalidHashError = util.NewError("invalid hash")
)

type Hash interface {
	isvalid.IsValider
	util.Byter
	// NOTE String() value is the base58 encoded of Bytes()
	fmt.Stringer
	Size() int
	Equal(Hash) bool
	Empty() bool
}

// Hasher computes the digest of the given bytes.
type Hasher interface {
	Sum([]byte) Hash
}

type HasherFunc func([]byte) Hash

func (f HasherFunc) Sum(b []byte) Hash {
	return f(b)
}
