// Package address validates NEM account addresses.
package address

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spikeekips/nemaddress/util/isvalid"
	"github.com/spikeekips/nemaddress/util/valuehash"
)

const prettyGroupSize = 6

// Address is a decoded and checksum-verified account address.
type Address struct {
	p Payload
}

var EmptyAddress = Address{}

// ParseAddress parses s with the default decoder and Keccak-256. The error
// tells why s is not an address and it always wraps isvalid.InvalidError.
func ParseAddress(s string) (Address, error) {
	return DefaultValidator.Parse(s)
}

func (ad Address) Payload() Payload {
	return ad.p
}

func (ad Address) NetworkID() NetworkID {
	return ad.p.NetworkID()
}

func (ad Address) PublicKeyHash() []byte {
	return ad.p.PublicKeyHash()
}

func (ad Address) Checksum() []byte {
	return ad.p.Checksum()
}

func (ad Address) Empty() bool {
	return ad.p == Payload{}
}

// IsValid checks the embedded checksum with Keccak-256.
func (ad Address) IsValid([]byte) error {
	if ad.Empty() {
		return isvalid.InvalidError.Errorf("empty address")
	}

	if !ad.p.VerifyChecksum(valuehash.Keccak256Hasher) {
		return isvalid.InvalidError.Wrap(ChecksumMismatchError.Errorf("address=%q", ad.String()))
	}

	return nil
}

func (ad Address) Equal(b Address) bool {
	return bytes.Equal(ad.p[:], b.p[:])
}

func (ad Address) String() string {
	if ad.Empty() {
		return ""
	}

	return encodePayload(ad.p[:])
}

// Pretty returns the address in groups of 6 characters joined by "-".
func (ad Address) Pretty() string {
	s := ad.String()
	if len(s) < 1 {
		return s
	}

	var sb strings.Builder
	for i := 0; i < len(s); i += prettyGroupSize {
		if i > 0 {
			_, _ = sb.WriteString(separator)
		}

		end := i + prettyGroupSize
		if end > len(s) {
			end = len(s)
		}

		_, _ = sb.WriteString(s[i:end])
	}

	return sb.String()
}

func (ad Address) MarshalText() ([]byte, error) {
	return []byte(ad.String()), nil
}

func (ad *Address) UnmarshalText(b []byte) error {
	i, err := ParseAddress(string(b))
	if err != nil {
		return err
	}

	*ad = i

	return nil
}

func (ad Address) MarshalZerologObject(e *zerolog.Event) {
	e.
		Str("address", ad.String()).
		Stringer("network", ad.NetworkID()).
		Str("public_key_hash", hex.EncodeToString(ad.PublicKeyHash())).
		Stringer("checksum", valuehash.NewBytes(ad.Checksum()))
}
