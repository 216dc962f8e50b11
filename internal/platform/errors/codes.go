// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Birth input errors
	CodeInvalidDate  Code = "INVALID_DATE"
	CodeInvalidTime  Code = "INVALID_TIME"
	CodeInvalidPlace Code = "INVALID_PLACE"

	// Lookup errors
	CodeInvalidSign  Code = "INVALID_SIGN"
	CodeInvalidCount Code = "INVALID_COUNT"

	// Profile errors
	CodeProfileNotFound Code = "PROFILE_NOT_FOUND"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// Exit codes returned by the command for each error family.
const (
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitNotFound     = 3
)

// ExitCode maps domain codes to process exit codes.
func (c Code) ExitCode() int {
	switch c {
	// Invalid input - validation failures, bad flags
	case CodeInvalidDate,
		CodeInvalidTime,
		CodeInvalidPlace,
		CodeInvalidSign,
		CodeInvalidCount:
		return ExitInvalidInput

	// Not found - nothing stored under the requested key
	case CodeNotFound,
		CodeProfileNotFound:
		return ExitNotFound

	default:
		return ExitFailure
	}
}

// IsInvalidInput reports whether the code describes rejected caller input.
func (c Code) IsInvalidInput() bool {
	return c.ExitCode() == ExitInvalidInput
}
