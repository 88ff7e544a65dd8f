// Package input - Validated field input for the interactive session
// Every read ends in either a value or a Stop; quitting is never an error.
package input

// Stop is the reason a read produced no value
type Stop int

const (
	Proceed       Stop = iota // a value was produced
	QuitConfirmed             // operator typed End and answered yes
	Interrupted               // the session context was cancelled
	InputClosed               // the input stream reached EOF
)

// String returns the stop name
func (s Stop) String() string {
	switch s {
	case Proceed:
		return "proceed"
	case QuitConfirmed:
		return "quit_confirmed"
	case Interrupted:
		return "interrupted"
	case InputClosed:
		return "input_closed"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of reading one field: a Value when Stop is
// Proceed, otherwise only the Stop is meaningful.
type Result[T any] struct {
	Value T
	Stop  Stop
}

// OK reports whether the result carries a value
func (r Result[T]) OK() bool {
	return r.Stop == Proceed
}

func value[T any](v T) Result[T] {
	return Result[T]{Value: v, Stop: Proceed}
}

func stopped[T any](s Stop) Result[T] {
	return Result[T]{Stop: s}
}
