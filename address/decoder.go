package address

import (
	"encoding/base32"
	"strings"

	"github.com/spikeekips/nemaddress/util"
)

var DecodeError = util.NewError("failed to decode address")

var addressEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Decoder turns the normalized address string into raw bytes.
type Decoder interface {
	Decode(string) ([]byte, error)
}

type DecoderFunc func(string) ([]byte, error)

func (f DecoderFunc) Decode(s string) ([]byte, error) {
	return f(s)
}

// Base32Decoder decodes RFC 4648 base32, upper case and without padding.
type Base32Decoder struct{}

func (Base32Decoder) Decode(s string) ([]byte, error) {
	// NOTE encoding/base32 silently drops newlines
	if strings.ContainsAny(s, "\r\n") {
		return nil, DecodeError.Errorf("newline found")
	}

	b, err := addressEncoding.DecodeString(s)
	if err != nil {
		return nil, DecodeError.Wrap(err)
	}

	return b, nil
}

func encodePayload(b []byte) string {
	return addressEncoding.EncodeToString(b)
}
