package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type testReadlines struct {
	suite.Suite
}

func (t *testReadlines) TestLines() {
	r := strings.NewReader("a\nbb\r\n\nccc")

	var lines []string
	t.NoError(Readlines(r, func(b []byte) error {
		lines = append(lines, string(b))

		return nil
	}))

	t.Equal([]string{"a", "bb", "ccc"}, lines)
}

func (t *testReadlines) TestEmpty() {
	var called bool
	t.NoError(Readlines(bytes.NewReader(nil), func([]byte) error {
		called = true

		return nil
	}))

	t.False(called)
}

func (t *testReadlines) TestCallbackError() {
	e := NewError("stop")

	err := Readlines(strings.NewReader("a\nb\n"), func([]byte) error {
		return e.Call()
	})
	t.True(errors.Is(err, e))
}

func TestReadlines(t *testing.T) {
	suite.Run(t, new(testReadlines))
}
