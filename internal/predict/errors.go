package predict

import "errors"

// Kind classifies a prediction failure for the caller.
type Kind string

const (
	// KindNetwork covers transport failures and non-2xx responses from the
	// completion endpoint.
	KindNetwork Kind = "network"
	// KindSchema means the endpoint answered but produced nothing usable.
	KindSchema Kind = "schema"
	// KindUnreachable is the catch-all surfaced to the user.
	KindUnreachable Kind = "unreachable"
)

// Error wraps a prediction failure with its kind. The informational board
// never returns these; only the prediction path fails loud.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind in err's chain, or "" if err is not a
// prediction failure.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
