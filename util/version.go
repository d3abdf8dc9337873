package util

import (
	"strings"

	"golang.org/x/mod/semver"
)

var InvalidVersionError = NewError("invalid version")

type Version string

func (vs Version) String() string {
	return string(vs)
}

// GO returns golang style semver string.
func (vs Version) GO() string {
	s := string(vs)
	if strings.HasPrefix(s, "v") {
		return s
	}

	return "v" + s
}

func (vs Version) IsValid([]byte) error {
	if !semver.IsValid(vs.GO()) {
		return InvalidVersionError.Errorf("version, %q", vs)
	}

	return nil
}

func (vs Version) Major() string {
	return semver.Major(vs.GO())
}
