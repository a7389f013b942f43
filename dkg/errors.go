package dkg

import (
	"fmt"
)

// InitializationError reports invalid parameters or a rejected Pedersen
// split during participant construction.
type InitializationError struct {
	Msg   string
	Cause error
}

func (e *InitializationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dkg: initialization: %s: %v", e.Msg, e.Cause)
	}
	return "dkg: initialization: " + e.Msg
}

func (e *InitializationError) Unwrap() error { return e.Cause }

// RoundError reports a protocol failure in a specific round: a call out
// of order, missing input, an echo disagreement, or a verification
// failure. A RoundError from rounds 2 or 3 may aggregate the reasons
// individual peers were dropped.
type RoundError struct {
	Round int
	Msg   string
	Cause error
}

func (e *RoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dkg: round %d: %s: %v", e.Round, e.Msg, e.Cause)
	}
	return fmt.Sprintf("dkg: round %d: %s", e.Round, e.Msg)
}

func (e *RoundError) Unwrap() error { return e.Cause }

// SerializationError reports a wire message that failed to decode.
type SerializationError struct {
	Cause error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("dkg: serialization: %v", e.Cause)
}

func (e *SerializationError) Unwrap() error { return e.Cause }

func initErr(format string, args ...interface{}) error {
	return &InitializationError{Msg: fmt.Sprintf(format, args...)}
}

func roundErr(round int, format string, args ...interface{}) error {
	return &RoundError{Round: round, Msg: fmt.Sprintf(format, args...)}
}

func roundErrCause(round int, cause error, format string, args ...interface{}) error {
	return &RoundError{Round: round, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

func serdeErr(cause error) error {
	return &SerializationError{Cause: cause}
}
