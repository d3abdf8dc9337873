package address

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"github.com/spikeekips/nemaddress/util"
	"github.com/spikeekips/nemaddress/util/valuehash"
)

const (
	AddressLength     = 40
	PayloadSize       = 25
	PublicKeyHashSize = 20
	ChecksumSize      = 4
	// checksummedSize is the network id and the public key hash.
	checksummedSize = 1 + PublicKeyHashSize
	separator       = "-"
)

var (
	WrongLengthError      = util.NewError("wrong address length")
	ChecksumMismatchError = util.NewError("checksum mismatch")
	NetworkMismatchError  = util.NewError("network mismatch")
)

// Payload is the decoded address,
// <1: network id><20: public key hash><4: checksum>.
type Payload [PayloadSize]byte

// normalize removes the separators; false means the result can not be an
// address.
func normalize(s string) (string, bool) {
	n := strings.ReplaceAll(s, separator, "")

	return n, len(n) == AddressLength
}

func decodePayload(dec Decoder, s string) (Payload, error) {
	n, ok := normalize(s)
	if !ok {
		return Payload{}, WrongLengthError.Errorf("length=%d", len(n))
	}

	b, err := dec.Decode(n)
	switch {
	case err != nil:
		if errors.Is(err, DecodeError) {
			return Payload{}, err
		}

		return Payload{}, DecodeError.Wrap(err)
	case len(b) != PayloadSize:
		return Payload{}, DecodeError.Errorf("decoded length=%d", len(b))
	}

	var p Payload
	copy(p[:], b)

	return p, nil
}

func (p Payload) NetworkID() NetworkID {
	return NetworkID(int8(p[0])) //nolint:gosec
}

func (p Payload) PublicKeyHash() []byte {
	return util.CopyBytes(p[1:checksummedSize])
}

func (p Payload) Checksum() []byte {
	return util.CopyBytes(p[checksummedSize:])
}

// ExpectedChecksum is the first 4 bytes of the digest of network id and
// public key hash; nil when the hasher gives no usable digest.
func (p Payload) ExpectedChecksum(hasher valuehash.Hasher) []byte {
	d := hasher.Sum(p[:checksummedSize])
	if d == nil {
		return nil
	}

	h := d.Bytes()
	if len(h) < ChecksumSize {
		return nil
	}

	return h[:ChecksumSize]
}

func (p Payload) VerifyChecksum(hasher valuehash.Hasher) bool {
	expected := p.ExpectedChecksum(hasher)
	if expected == nil {
		return false
	}

	return bytes.Equal(expected, p[checksummedSize:])
}
