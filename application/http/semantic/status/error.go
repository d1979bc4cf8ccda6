package status

import "strconv"

// Error is a failure that should reach the client as Status.
type Error struct {
	cause  error
	Status Status
}

func NewError(err error, status Status) Error {
	return Error{cause: err, Status: status}
}

func (e Error) Error() string {
	cause := ""
	if e.cause != nil {
		cause = e.cause.Error()
	}

	return strconv.FormatUint(uint64(e.Status.Code), 10) + " " +
		e.Status.ReasonPhrase + ": " + strconv.Quote(cause)
}

// Cause is the error the status was derived from. It may be nil.
func (e Error) Cause() error { return e.cause }

func (e Error) Unwrap() error { return e.cause }
