package runner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when the requested mode is not one of the
// closed mode set. Matchable with errors.Is.
var ErrUnknownMode = errors.New("unknown mode")

// ValidationError reports a rejected run: a missing required parameter
// or an invalid parameter combination. No network I/O has happened and
// no report exists when one of these is returned.
type ValidationError struct {
	Mode    Mode
	Missing []Param
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		flags := make([]string, len(e.Missing))
		for i, p := range e.Missing {
			flags[i] = "--" + string(p)
		}
		return fmt.Sprintf("%s required for %s mode", strings.Join(flags, ", "), e.Mode)
	}
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid parameters for %s mode", e.Mode)
}

// IsValidation reports whether err is a parameter-validation failure
// (including an unknown mode), the only fatal error category.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrUnknownMode)
}
