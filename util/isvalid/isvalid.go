package isvalid

import "github.com/spikeekips/nemaddress/util"

var InvalidError = util.NewError("invalid")

type IsValider interface {
	IsValid([]byte) error
}
