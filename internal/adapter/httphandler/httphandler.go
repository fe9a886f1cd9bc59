package httphandler

import "fmt"

func errBadParam(name, value string, err error) error {
	if err != nil {
		return fmt.Errorf("param %q: invalid value %q: %w", name, value, err)
	}
	return fmt.Errorf("param %q: invalid value %q", name, value)
}
