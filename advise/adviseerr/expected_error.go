package adviseerr

import (
	"fmt"
)

// ExpectedErr represents a class of expected errors that advise can produce: they describe an outcome the user asked
// to be told about rather than a failure of the tool.
type ExpectedErr struct {
	Err error
}

// NewExpectedErr generates a new ExpectedErr.
func NewExpectedErr(msgFormat string, args ...interface{}) ExpectedErr {
	return ExpectedErr{
		Err: fmt.Errorf(msgFormat, args...),
	}
}

// Error returns a string representing the underlying error condition.
func (e ExpectedErr) Error() string {
	return e.Err.Error()
}
