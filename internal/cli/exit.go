package cli

import "fmt"

// Setup-failure exit codes. Result counts (failed+missing) are capped
// below these so a pre-flight failure can never look like a test count.
const (
	// ExitLogOpen means the check log could not be opened
	ExitLogOpen = 123
	// ExitNoTests means no curated list existed and the scan found nothing
	ExitNoTests = 124
	// ExitPreflight means the regression environment is not configured
	ExitPreflight = 125
)

// ExitError carries a specific process exit code out of a command.
type ExitError struct {
	Code int
	Msg  string
}

func (e *ExitError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Exitf builds an ExitError with a formatted message
func Exitf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Msg: fmt.Sprintf(format, args...)}
}
