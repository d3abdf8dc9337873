package address

import (
	"encoding/json"
	"reflect"

	"github.com/spikeekips/nemaddress/util"
	"github.com/spikeekips/nemaddress/util/isvalid"
	"github.com/spikeekips/nemaddress/util/logging"
	"github.com/spikeekips/nemaddress/util/valuehash"
)

var DefaultValidator = NewValidator(nil, nil)

// Validator checks address strings. It has no state except the decoder, the
// hasher and the logger, so one Validator can be shared by goroutines once the
// logger is set.
type Validator struct {
	*logging.Logging
	decoder Decoder
	hasher  valuehash.Hasher
}

// NewValidator returns Validator; nil decoder means base32 and nil hasher
// means Keccak-256.
func NewValidator(decoder Decoder, hasher valuehash.Hasher) *Validator {
	if decoder == nil {
		decoder = Base32Decoder{}
	}

	if hasher == nil {
		hasher = valuehash.Keccak256Hasher
	}

	return &Validator{
		Logging: logging.NewModuleLogging("address-validator"),
		decoder: decoder,
		hasher:  hasher,
	}
}

func (v *Validator) Parse(s string) (Address, error) {
	p, err := decodePayload(v.decoder, s)
	if err != nil {
		return EmptyAddress, isvalid.InvalidError.Wrap(err)
	}

	if !p.VerifyChecksum(v.hasher) {
		return EmptyAddress, isvalid.InvalidError.Wrap(ChecksumMismatchError.Errorf(
			"expected=%s embedded=%s",
			valuehash.NewBytes(p.ExpectedChecksum(v.hasher)),
			valuehash.NewBytes(p.Checksum()),
		))
	}

	return Address{p: p}, nil
}

// Check returns nil when s is an address of one of the networks. The error
// wraps isvalid.InvalidError and one of WrongLengthError, DecodeError,
// ChecksumMismatchError or NetworkMismatchError.
func (v *Validator) Check(s string, ids NetworkIDs) error {
	ad, err := v.Parse(s)
	if err != nil {
		return err
	}

	if !ids.Match(ad.p[0]) {
		return isvalid.InvalidError.Wrap(NetworkMismatchError.Errorf(
			"network=%s, not in %v", ad.NetworkID(), ids.Strings()))
	}

	return nil
}

func (v *Validator) IsValid(s string, ids ...NetworkID) bool {
	if err := v.Check(s, ids); err != nil {
		v.traceInvalid(s, err)

		return false
	}

	return true
}

func (v *Validator) traceInvalid(s string, err error) {
	if !v.IsTraceLog() {
		return
	}

	v.Log().Trace().Err(err).Str("address", s).Msg("invalid address")
}

// IsValidAddress reports whether address is a well formed, checksum-correct
// address. With networkIDs, the address also has to belong to one of them.
// Malformed input never panics or errors; it is just false.
func IsValidAddress(address string, networkIDs ...NetworkID) bool {
	return DefaultValidator.IsValid(address, networkIDs...)
}

// CheckAddress is IsValidAddress for values of unknown type, like decoded
// json. address must be a string and networkIDs must be nil or a collection of
// integers; otherwise util.InvalidArgumentError is returned. Only the low 8
// bits of each network id are compared. Validation failures are still
// (false, nil).
func CheckAddress(address interface{}, networkIDs interface{}) (bool, error) {
	s, err := addressFromInterface(address)
	if err != nil {
		return false, err
	}

	ids, err := networkIDsFromInterface(networkIDs)
	if err != nil {
		return false, err
	}

	return IsValidAddress(s, ids...), nil
}

func addressFromInterface(i interface{}) (string, error) {
	if i == nil {
		return "", util.InvalidArgumentError.Errorf("address must be string, not nil")
	}

	if _, ok := i.(json.Number); ok {
		return "", util.InvalidArgumentError.Errorf("address must be string, not number")
	}

	v := reflect.ValueOf(i)
	if v.Kind() != reflect.String {
		return "", util.InvalidArgumentError.Errorf("address must be string, not %T", i)
	}

	return v.String(), nil
}

func networkIDsFromInterface(i interface{}) (NetworkIDs, error) {
	switch t := i.(type) {
	case nil:
		return nil, nil
	case NetworkIDs:
		return t, nil
	case []NetworkID:
		return NetworkIDs(t), nil
	}

	var values []reflect.Value

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		values = make([]reflect.Value, v.Len())
		for j := 0; j < v.Len(); j++ {
			values[j] = v.Index(j)
		}
	case reflect.Map:
		values = make([]reflect.Value, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			values = append(values, iter.Value())
		}
	default:
		return nil, util.InvalidArgumentError.Errorf("network ids must be a collection of integers, not %T", i)
	}

	ids := make(NetworkIDs, len(values))
	for j := range values {
		id, err := networkIDFromValue(values[j])
		if err != nil {
			return nil, util.InvalidArgumentError.Wrap(err)
		}

		ids[j] = id
	}

	return ids, nil
}

func networkIDFromValue(v reflect.Value) (NetworkID, error) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, InvalidNetworkIDError.Errorf("nil network id")
		}

		v = v.Elem()
	}

	if n, ok := v.Interface().(json.Number); ok {
		i, err := n.Int64()
		if err != nil {
			return 0, InvalidNetworkIDError.Errorf("network id must be integer, not %q", n.String())
		}

		return TruncateNetworkID(i), nil
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return TruncateNetworkID(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NetworkID(int8(uint8(v.Uint()))), nil //nolint:gosec
	default:
		return 0, InvalidNetworkIDError.Errorf("network id must be integer, not %s", v.Type())
	}
}
