package util

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Readlines calls callback with every line of r. Trailing "\r\n" is removed
// and empty lines are skipped.
func Readlines(r io.Reader, callback func([]byte) error) error {
	br := bufio.NewReader(r)
	for {
		l, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		if i := bytes.TrimRight(l, "\r\n"); len(i) > 0 {
			if cerr := callback(i); cerr != nil {
				return cerr
			}
		}

		if err != nil {
			return nil
		}
	}
}
