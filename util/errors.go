package util

// InvalidArgumentError is returned when a caller passes arguments of the
// wrong shape, for example a non-string address. It is never used for
// addresses which merely fail validation.
var InvalidArgumentError = NewError("invalid argument")
