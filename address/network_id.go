package address

import (
	"math"
	"strconv"
	"strings"

	"github.com/spikeekips/nemaddress/util"
)

var InvalidNetworkIDError = util.NewError("invalid network id")

// NetworkID is the first byte of the decoded address. It is signed, so the
// test network, -104, is the byte 0x98.
type NetworkID int8

const (
	MainNetworkID  NetworkID = 104
	MijinNetworkID NetworkID = 96
	TestNetworkID  NetworkID = -104
)

var networkIDNames = map[NetworkID]string{
	MainNetworkID:  "mainnet",
	MijinNetworkID: "mijin",
	TestNetworkID:  "testnet",
}

// NetworkIDFromInt accepts both the signed and the unsigned spelling of a
// byte, so 152 and -104 give the same NetworkID.
func NetworkIDFromInt(i int64) (NetworkID, error) {
	if i < math.MinInt8 || i > math.MaxUint8 {
		return 0, InvalidNetworkIDError.Errorf("%d is out of 8 bits", i)
	}

	return NetworkID(int8(uint8(i))), nil //nolint:gosec
}

// TruncateNetworkID keeps the low 8 bits of i.
func TruncateNetworkID(i int64) NetworkID {
	return NetworkID(int8(i)) //nolint:gosec
}

func ParseNetworkID(s string) (NetworkID, error) {
	t := strings.ToLower(strings.TrimSpace(s))

	switch t {
	case "mainnet", "main":
		return MainNetworkID, nil
	case "mijin", "mijinnet":
		return MijinNetworkID, nil
	case "testnet", "test":
		return TestNetworkID, nil
	}

	i, err := strconv.ParseInt(t, 10, 64)
	if err != nil {
		return 0, InvalidNetworkIDError.Errorf("unknown network, %q", s)
	}

	return NetworkIDFromInt(i)
}

func (ni NetworkID) Byte() byte {
	return byte(ni)
}

func (ni NetworkID) String() string {
	if s, found := networkIDNames[ni]; found {
		return s
	}

	return strconv.FormatInt(int64(ni), 10)
}

func (ni NetworkID) MarshalText() ([]byte, error) {
	return []byte(ni.String()), nil
}

func (ni *NetworkID) UnmarshalText(b []byte) error {
	i, err := ParseNetworkID(string(b))
	if err != nil {
		return err
	}

	*ni = i

	return nil
}

// NetworkIDs is the set of accepted networks. Empty NetworkIDs accepts every
// network.
type NetworkIDs []NetworkID

func ParseNetworkIDs(ss []string) (NetworkIDs, error) {
	if len(ss) < 1 {
		return nil, nil
	}

	ids := make(NetworkIDs, len(ss))
	for i := range ss {
		j, err := ParseNetworkID(ss[i])
		if err != nil {
			return nil, err
		}

		ids[i] = j
	}

	return ids, nil
}

func (ids NetworkIDs) Match(b byte) bool {
	if len(ids) < 1 {
		return true
	}

	for i := range ids {
		if ids[i].Byte() == b {
			return true
		}
	}

	return false
}

func (ids NetworkIDs) Strings() []string {
	ss := make([]string, len(ids))
	for i := range ids {
		ss[i] = ids[i].String()
	}

	return ss
}
