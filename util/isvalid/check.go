package isvalid

// Check runs IsValid of each IsValider in order and stops at the first
// failure. The returned error wraps InvalidError and the failure.
func Check(b []byte, allowNil bool, vs ...IsValider) error {
	for i, v := range vs {
		if v == nil {
			if allowNil {
				continue
			}

			return InvalidError.Errorf("%dth: nil can not be checked", i)
		}

		if err := v.IsValid(b); err != nil {
			return InvalidError.Errorf("%T: %w", v, err)
		}
	}

	return nil
}

// CheckFunc is Check for plain funcs, like the field checks of a struct.
func CheckFunc(fs ...func() error) error {
	for i := range fs {
		if fs[i] == nil {
			return InvalidError.Errorf("%dth: nil func", i)
		}

		if err := fs[i](); err != nil {
			return InvalidError.Wrap(err)
		}
	}

	return nil
}
