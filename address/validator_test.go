package address

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spikeekips/nemaddress/util"
	"github.com/spikeekips/nemaddress/util/isvalid"
	"github.com/stretchr/testify/suite"
)

var (
	testnetAddress  = "TDZMWOCMABLGHB37KJJLVXRUXSMOXR4K4PUMZRTA"
	testnetAddress1 = "TB6EFML3BRJOMNVLW7K3RVJSBPQIEOSPL3EV3PE6"
	mainnetAddress  = "NARMZPEN6RMA7CWCKBHPT5BS44BKUK3QWE7EW7WD"
	mijinAddress    = "MAAQEAYEAUDAOCAJBIFQYDIOB4IBCEQTCRBYQZNN"
	// network id byte is 0x80
	minNetworkAddress = "QAAQEAYEAUDAOCAJBIFQYDIOB4IBCEQTCQKDDFCN"
)

type testValidator struct {
	suite.Suite
}

func (t *testValidator) TestValid() {
	cases := []string{
		testnetAddress,
		testnetAddress1,
		mainnetAddress,
		mijinAddress,
		minNetworkAddress,
		"TDZMWO-CMABLG-HB37KJ-JLVXRU-XSMOXR-4K4PUM-ZRTA",
		"-T-B-6-E-F-M-L-3-B-R-J-O-M-N-V-L-W-7-K-3-R-V-J-S-B-P-Q-I-E-O-S-P-L-3-E-V-3-P-E-6-",
		"----------NARMZPEN6RMA7CWCKB----HPT5BS44BKUK3QWE7EW7WD------------",
	}

	for i := range cases {
		t.True(IsValidAddress(cases[i]), "%d: %q", i, cases[i])
	}
}

func (t *testValidator) TestInvalid() {
	cases := []string{
		"",
		"TDZMWOCMABLGHB37KJJLVXRUXSMOXR4K4PUMZRTB",
		"TB6EFML3BRJOMNVLW7K3RVJSBPQIEOSPL3EV3PE7",
		"NARMZPEN6RMA7CWCKBHPT5BS44BKUK3QWE7EW7WC",
		"TDZMWO_CMABLG_HB37KJ_JLVXRU_XSMOXR_4K4PUM_ZRTA",
		"TB6EFML3BRJOMNVLW7K3RVJSBPQIEOSPL3EV3PE",
		"MARMZPEN6RMA7CWCKBHPT5BS44BKUK3QWE7EW7WD",
		"tdzmwocmablghb37kjjlvxruxsmoxr4k4pumzrta",
		"TDZMWOCMABLGHB37KJJLVXRUXSMOXR4K4PUMZRTA0",
		"TDZMWO CMABLGHB37KJJLVXRUXSMOXR4K4PUMZRTA",
	}

	for i := range cases {
		t.False(IsValidAddress(cases[i]), "%d: %q", i, cases[i])
	}
}

func (t *testValidator) TestIdempotent() {
	for _, s := range []string{testnetAddress, "TDZMWOCMABLGHB37KJJLVXRUXSMOXR4K4PUMZRTB"} {
		a := IsValidAddress(s, MainNetworkID)
		b := IsValidAddress(s, MainNetworkID)
		t.Equal(a, b)

		t.Equal(IsValidAddress(s), IsValidAddress(s))
	}
}

func (t *testValidator) TestSeparatorInsensitive() {
	r := rand.New(rand.NewSource(10)) //nolint:gosec

	for _, s := range []string{testnetAddress, testnetAddress1, mainnetAddress, mijinAddress} {
		for i := 0; i < 30; i++ {
			var sb strings.Builder
			for j := 0; j <= len(s); j++ {
				_, _ = sb.WriteString(strings.Repeat(separator, r.Intn(3)))
				if j < len(s) {
					_ = sb.WriteByte(s[j])
				}
			}

			t.True(IsValidAddress(sb.String()), "%q", sb.String())
		}
	}
}

func (t *testValidator) TestLengthInvariant() {
	for i := 0; i < 80; i++ {
		if i == AddressLength {
			continue
		}

		s := strings.Repeat("A", i)
		t.False(IsValidAddress(s), "length=%d", i)
		t.False(IsValidAddress(s+"--"), "length=%d", i)
	}

	t.False(IsValidAddress(testnetAddress[:39]))
	t.False(IsValidAddress(testnetAddress + "A"))
}

func (t *testValidator) TestChecksumSensitive() {
	for _, s := range []string{testnetAddress, testnetAddress1, mainnetAddress, mijinAddress, minNetworkAddress} {
		last := s[len(s)-1]

		for _, c := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567" {
			if byte(c) == last {
				continue
			}

			flipped := s[:len(s)-1] + string(c)
			t.False(IsValidAddress(flipped), "%q", flipped)
		}
	}
}

func (t *testValidator) TestNetwork() {
	t.True(IsValidAddress(mainnetAddress))
	t.True(IsValidAddress(mainnetAddress, MainNetworkID))
	t.False(IsValidAddress(mainnetAddress, TestNetworkID))
	t.True(IsValidAddress(mainnetAddress, TestNetworkID, MainNetworkID))
	t.True(IsValidAddress(mainnetAddress, MainNetworkID, TestNetworkID))

	t.True(IsValidAddress(testnetAddress, TestNetworkID))
	t.True(IsValidAddress(testnetAddress1, TestNetworkID, MainNetworkID))
	t.False(IsValidAddress(testnetAddress, MainNetworkID))
	t.False(IsValidAddress(testnetAddress1, MijinNetworkID))
	t.False(IsValidAddress(mainnetAddress, TestNetworkID))
	t.False(IsValidAddress(testnetAddress, NetworkID(10)))

	t.True(IsValidAddress(mijinAddress, MijinNetworkID))
	t.True(IsValidAddress(minNetworkAddress, NetworkID(-128)))
}

func (t *testValidator) TestCheck() {
	t.NoError(DefaultValidator.Check(testnetAddress, nil))

	cases := []struct {
		s   string
		ids NetworkIDs
		e   *util.NError
	}{
		{s: "", e: WrongLengthError},
		{s: "TDZMWOCMABLGHB37KJJLVXRUXSMOXR4K4PUMZRT1", e: DecodeError},
		{s: "TDZMWOCMABLGHB37KJJLVXRUXSMOXR4K4PUMZRTB", e: ChecksumMismatchError},
		{s: testnetAddress, ids: NetworkIDs{MainNetworkID}, e: NetworkMismatchError},
	}

	for i, c := range cases {
		err := DefaultValidator.Check(c.s, c.ids)
		t.True(errors.Is(err, isvalid.InvalidError), "%d: %q", i, c.s)
		t.True(errors.Is(err, c.e), "%d: %q; %+v", i, c.s, err)
	}
}

func (t *testValidator) TestCustomCollaborators() {
	v := NewValidator(fixedDecoder(fixedPayload()), fixedHasher([]byte{0x01, 0x02, 0x03, 0x04}))

	t.True(v.IsValid(strings.Repeat("A", 40)))
	t.True(v.IsValid(strings.Repeat("A", 40), MainNetworkID))
	t.False(v.IsValid(strings.Repeat("A", 40), TestNetworkID))
	t.False(v.IsValid(strings.Repeat("A", 39)))

	v = NewValidator(fixedDecoder(fixedPayload()), fixedHasher([]byte{0x04, 0x03, 0x02, 0x01}))
	t.False(v.IsValid(strings.Repeat("A", 40)))
}

func (t *testValidator) TestConcurrent() {
	done := make(chan bool, 100)

	for i := 0; i < 100; i++ {
		i := i
		go func() {
			if i%2 == 0 {
				done <- IsValidAddress(mainnetAddress, MainNetworkID)
			} else {
				done <- !IsValidAddress(mainnetAddress, TestNetworkID)
			}
		}()
	}

	for i := 0; i < 100; i++ {
		t.True(<-done)
	}
}

func (t *testValidator) TestTraceLog() {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer

	v := NewValidator(nil, nil)
	t.False(v.IsTraceLog())
	t.False(v.IsValid(strings.Repeat("A", 39)))

	_ = v.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	t.False(v.IsValid(strings.Repeat("A", 39)))
	t.Empty(buf.String())

	_ = v.SetLogger(zerolog.New(&buf).Level(zerolog.TraceLevel))
	t.True(v.IsTraceLog())
	t.False(v.IsValid(strings.Repeat("A", 39)))
	t.Contains(buf.String(), `"module":"address-validator"`)
	t.Contains(buf.String(), "wrong address length")

	buf.Reset()
	t.True(v.IsValid(mainnetAddress))
	t.Empty(buf.String())
}

func TestValidator(t *testing.T) {
	suite.Run(t, new(testValidator))
}

type testCheckAddress struct {
	suite.Suite
}

func (t *testCheckAddress) TestValid() {
	cases := []struct {
		name string
		s    string
		ids  interface{}
	}{
		{name: "nil ids", s: testnetAddress},
		{name: "empty ids", s: testnetAddress, ids: []int{}},
		{name: "int", s: testnetAddress, ids: []int{-104}},
		{name: "unsigned byte", s: testnetAddress, ids: []int{152}},
		{name: "int8", s: mainnetAddress, ids: []int8{104}},
		{name: "bytes", s: testnetAddress, ids: []byte{0x98}},
		{name: "NetworkIDs", s: testnetAddress1, ids: NetworkIDs{TestNetworkID, MainNetworkID}},
		{name: "[]NetworkID", s: mainnetAddress, ids: []NetworkID{MainNetworkID}},
		{name: "array", s: mainnetAddress, ids: [2]int64{-104, 104}},
		{name: "interfaces", s: mainnetAddress, ids: []interface{}{int64(-104), uint16(104)}},
		{name: "map", s: mainnetAddress, ids: map[string]int{"10": -104, "hoge": 104}},
		{name: "json number", s: mainnetAddress, ids: []interface{}{json.Number("104")}},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func() {
			ok, err := CheckAddress(c.s, c.ids)
			t.NoError(err)
			t.True(ok)
		})
	}
}

func (t *testCheckAddress) TestInvalidAddressIsNotError() {
	cases := []struct {
		name string
		s    string
		ids  interface{}
	}{
		{name: "empty", s: ""},
		{name: "checksum", s: "TDZMWOCMABLGHB37KJJLVXRUXSMOXR4K4PUMZRTB"},
		{name: "wrong network", s: testnetAddress, ids: []int{104}},
		{name: "mijin", s: testnetAddress1, ids: []int{96}},
		{name: "unknown network", s: testnetAddress, ids: []int{10}},
		{name: "huge ids", s: testnetAddress1, ids: []int{10, 100000000}},
		{name: "negative huge ids", s: mainnetAddress, ids: []int64{10, 100000000, -100000000}},
		{name: "illegal character", s: "TDZMWOCMABLGHB37KJJLVXRUXSMOXR4K4PUMZRT1"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func() {
			ok, err := CheckAddress(c.s, c.ids)
			t.NoError(err)
			t.False(ok)
		})
	}
}

type stringer struct{}

func (stringer) String() string {
	return testnetAddress
}

type namedString string

func (t *testCheckAddress) TestNamedString() {
	ok, err := CheckAddress(namedString(testnetAddress), nil)
	t.NoError(err)
	t.True(ok)
}

func (t *testCheckAddress) TestInvalidArgumentAddress() {
	cases := []struct {
		name string
		a    interface{}
	}{
		{name: "bool", a: true},
		{name: "nil", a: nil},
		{name: "slice", a: []string{}},
		{name: "struct", a: struct{}{}},
		{name: "stringer", a: stringer{}},
		{name: "bytes", a: []byte(testnetAddress)},
		{name: "int", a: 104},
		{name: "json number", a: json.Number("104")},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func() {
			ok, err := CheckAddress(c.a, nil)
			t.False(ok)
			t.True(errors.Is(err, util.InvalidArgumentError), "%+v", err)
			t.Contains(err.Error(), "address must be string")
		})
	}
}

func (t *testCheckAddress) TestInvalidArgumentNetworkIDs() {
	cases := []struct {
		name string
		ids  interface{}
	}{
		{name: "string element", ids: []string{"1"}},
		{name: "nil element", ids: []interface{}{nil}},
		{name: "bool element", ids: []interface{}{true}},
		{name: "struct element", ids: []interface{}{struct{}{}}},
		{name: "nested", ids: []interface{}{[]int{}}},
		{name: "float element", ids: []interface{}{float64(104)}},
		{name: "json fraction", ids: []interface{}{json.Number("1.5")}},
		{name: "mixed", ids: []interface{}{104, "104"}},
		{name: "not collection", ids: 104},
		{name: "string", ids: "mainnet"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func() {
			// checked before the address is decoded
			ok, err := CheckAddress("", c.ids)
			t.False(ok)
			t.True(errors.Is(err, util.InvalidArgumentError), "%+v", err)
		})
	}
}

func TestCheckAddress(t *testing.T) {
	suite.Run(t, new(testCheckAddress))
}
