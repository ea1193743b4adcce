// Package errors provides structured error handling for gfshare.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes for CLI consumers of this package.
const (
	ExitSuccess = 0 // Successful execution
	ExitGeneral = 1 // General/unknown error
	ExitInput   = 2 // Invalid input (ArgumentError, ShareFormatError)
	ExitConfig  = 3 // Bad field configuration (ConfigError)
	ExitRNG     = 4 // Broken or rejected random source (RNGError)
	ExitInit    = 5 // Operation attempted before a successful Init (InitError)
)

// Kind identifies which layer of the library raised an error, matching
// the error kinds the library's design groups failures into.
type Kind string

// Error kinds.
const (
	KindConfig      Kind = "CONFIG"       // invalid bits, invalid padding multiple, no CSPRNG available
	KindArgument    Kind = "ARGUMENT"     // invalid n/k, invalid share id, mixed-bits share sets, non-hex input
	KindRNG         Kind = "RNG"          // injected RNG returns wrong type/length/characters
	KindShareFormat Kind = "SHARE_FORMAT" // malformed public share string
	KindInit        Kind = "INIT"         // called before a successful Init, or Init could not select an RNG
	KindGeneral     Kind = "GENERAL"
)

// Error is the structured error type used throughout gfshare.
type Error struct {
	Kind       Kind              // Which layer raised this
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for the caller
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI consumers
}

func (e *Error) Error() string {
	msg := e.Message

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Suggestion != "" {
		msg = fmt.Sprintf("%s - %s", msg, e.Suggestion)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for Error: two Errors match if they share a Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors, one family per error kind in the library's design.
var (
	// ConfigError sentinels.
	ErrBitsOutOfRange = &Error{
		Kind: KindConfig, Code: "BITS_OUT_OF_RANGE",
		Message: "bits must be in [3,20]", ExitCode: ExitConfig,
	}
	ErrPaddingMultiple = &Error{
		Kind: KindConfig, Code: "PADDING_MULTIPLE",
		Message: "padding multiple must be in (1,1024]", ExitCode: ExitConfig,
	}
	ErrNoCSPRNG = &Error{
		Kind: KindConfig, Code: "NO_CSPRNG",
		Message: "no CSPRNG available in this environment", ExitCode: ExitConfig,
	}

	// ArgumentError sentinels.
	ErrThresholdTooSmall = &Error{
		Kind: KindArgument, Code: "THRESHOLD_TOO_SMALL",
		Message: "threshold k must be at least 2", ExitCode: ExitInput,
	}
	ErrSharesBelowThreshold = &Error{
		Kind: KindArgument, Code: "SHARES_BELOW_THRESHOLD",
		Message: "share count n must be at least k", ExitCode: ExitInput,
	}
	ErrSharesExceedMax = &Error{
		Kind: KindArgument, Code: "SHARES_EXCEED_MAX",
		Message: "share count n cannot exceed the field's max", ExitCode: ExitInput,
	}
	ErrSecretEmpty = &Error{
		Kind: KindArgument, Code: "SECRET_EMPTY",
		Message: "secret must be a non-empty hex string", ExitCode: ExitInput,
	}
	ErrNotHex = &Error{
		Kind: KindArgument, Code: "NOT_HEX",
		Message: "value contains non-hex characters", ExitCode: ExitInput,
	}
	ErrInvalidShareID = &Error{
		Kind: KindArgument, Code: "INVALID_SHARE_ID",
		Message: "share id out of range", ExitCode: ExitInput,
	}
	ErrMixedBits = &Error{
		Kind: KindArgument, Code: "MIXED_BITS",
		Message: "all shares must share the same field size", ExitCode: ExitInput,
	}
	ErrDuplicateShareID = &Error{
		Kind: KindArgument, Code: "DUPLICATE_SHARE_ID",
		Message: "duplicate share id in input set", ExitCode: ExitInput,
	}
	ErrNoShares = &Error{
		Kind: KindArgument, Code: "NO_SHARES",
		Message: "no shares provided", ExitCode: ExitInput,
	}
	ErrNotEnoughShares = &Error{
		Kind: KindArgument, Code: "NOT_ENOUGH_SHARES",
		Message: "fewer shares were provided than the threshold requires", ExitCode: ExitInput,
	}

	// RNGError sentinels.
	ErrRNGWrongLength = &Error{
		Kind: KindRNG, Code: "RNG_WRONG_LENGTH",
		Message: "RNG returned a string of the wrong length", ExitCode: ExitRNG,
	}
	ErrRNGNotBinary = &Error{
		Kind: KindRNG, Code: "RNG_NOT_BINARY",
		Message: "RNG returned characters other than '0'/'1'", ExitCode: ExitRNG,
	}
	ErrRNGUnknownSource = &Error{
		Kind: KindRNG, Code: "RNG_UNKNOWN_SOURCE",
		Message: "unknown RNG source name", ExitCode: ExitRNG,
	}
	ErrRNGUnavailable = &Error{
		Kind: KindRNG, Code: "RNG_UNAVAILABLE",
		Message: "no secure RNG source is available on this host", ExitCode: ExitRNG,
	}

	// ShareFormatError sentinels.
	ErrShareBitsOutOfRange = &Error{
		Kind: KindShareFormat, Code: "SHARE_BITS_OUT_OF_RANGE",
		Message: "Invalid share: bits out of range", ExitCode: ExitInput,
	}
	ErrShareIDOutOfRange = &Error{
		Kind: KindShareFormat, Code: "SHARE_ID_OUT_OF_RANGE",
		Message: "Invalid share: id out of range", ExitCode: ExitInput,
	}
	ErrShareDataNotHex = &Error{
		Kind: KindShareFormat, Code: "SHARE_DATA_NOT_HEX",
		Message: "Invalid share: data is not hex", ExitCode: ExitInput,
	}
	ErrShareTooShort = &Error{
		Kind: KindShareFormat, Code: "SHARE_TOO_SHORT",
		Message: "Invalid share: string is too short", ExitCode: ExitInput,
	}

	// InitError sentinels.
	ErrNotInitialized = &Error{
		Kind: KindInit, Code: "NOT_INITIALIZED",
		Message: "Initialization failed.", ExitCode: ExitInit,
	}
	ErrInitRNGSelection = &Error{
		Kind: KindInit, Code: "INIT_RNG_SELECTION",
		Message: "Initialization failed.", Suggestion: "could not select a default RNG source",
		ExitCode: ExitInit,
	}

	// General.
	ErrGeneral = &Error{Kind: KindGeneral, Code: "GENERAL_ERROR", Message: "an error occurred", ExitCode: ExitGeneral}
	ErrDivideByZero = &Error{
		Kind: KindGeneral, Code: "DIVIDE_BY_ZERO",
		Message: "division by zero in field arithmetic", ExitCode: ExitGeneral,
	}
)

// New creates a new Error with the given kind, code, and message.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message, ExitCode: ExitGeneral}
}

// Wrap wraps err with additional context, preserving its kind/code/exit code.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var e *Error
	if errors.As(err, &e) {
		return &Error{
			Kind:       e.Kind,
			Code:       e.Code,
			Message:    fmt.Sprintf("%s: %s", msg, e.Message),
			Details:    e.Details,
			Suggestion: e.Suggestion,
			Cause:      err,
			ExitCode:   e.ExitCode,
		}
	}

	return &Error{Kind: KindGeneral, Code: "GENERAL_ERROR", Message: msg, Cause: err, ExitCode: ExitGeneral}
}

// WithDetails attaches details to err, returning a new Error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return &Error{
			Kind: e.Kind, Code: e.Code, Message: e.Message,
			Details: details, Suggestion: e.Suggestion, Cause: e.Cause, ExitCode: e.ExitCode,
		}
	}

	return &Error{Kind: KindGeneral, Code: "GENERAL_ERROR", Message: err.Error(), Details: details, Cause: err, ExitCode: ExitGeneral}
}

// WithSuggestion attaches an actionable suggestion to err.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return &Error{
			Kind: e.Kind, Code: e.Code, Message: e.Message,
			Details: e.Details, Suggestion: suggestion, Cause: e.Cause, ExitCode: e.ExitCode,
		}
	}

	return &Error{Kind: KindGeneral, Code: "GENERAL_ERROR", Message: err.Error(), Suggestion: suggestion, Cause: err, ExitCode: ExitGeneral}
}

// ExitCode returns the CLI exit code appropriate for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode
	}

	return ExitGeneral
}

// Code returns the machine-readable code for err, or "GENERAL_ERROR".
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
