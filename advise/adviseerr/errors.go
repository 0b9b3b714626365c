package adviseerr

var (
	// ErrAboveSeverityThreshold indicates that an advisor result matched the configured --fail-on criteria (an issue at
	// or above the given severity, or any vulnerability when requested).
	ErrAboveSeverityThreshold = NewExpectedErr("discovered advisor findings at or above the severity threshold")
)
