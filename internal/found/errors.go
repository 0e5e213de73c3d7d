// Package found defines the error kinds shared across found's pipeline
// stages and executors.
package found

import "fmt"

// Kind discriminates the category of a found.Error, matching the error kinds
// named in the system design: CLI/argument problems, I/O failures, data file
// validation failures, and pipeline-framework contract violations.
type Kind int

const (
	// InvalidArgument covers CLI syntax errors, out-of-range Euler
	// components, and negative focal lengths.
	InvalidArgument Kind = iota
	// IOFailure covers missing files, truncated files, and decoder errors.
	IOFailure
	// InvalidMagic means a data file's header did not start with "FOUN".
	InvalidMagic
	// InvalidVersion means a data file declared an unsupported version.
	InvalidVersion
	// InvalidHeader means a data file's stream yielded fewer than the 48
	// bytes (magic, version, count, CRC, attitude) that precede the
	// location records.
	InvalidHeader
	// ChecksumMismatch means a data file's header CRC did not verify.
	ChecksumMismatch
	// InsufficientLimb means edge detection produced fewer than three
	// candidate points.
	InsufficientLimb
	// DegenerateGeometry means the limb rays failed to determine a circle.
	DegenerateGeometry
	// PipelineNotReady means Run was invoked before Complete.
	PipelineNotReady
	// PipelineAlreadyReady means AddStage/Complete was invoked after
	// Complete.
	PipelineAlreadyReady
	// InputTypeMismatch means the first stage's input type disagreed with
	// the pipeline's declared input type.
	InputTypeMismatch
)

// String returns a human-readable name for k.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case IOFailure:
		return "IOFailure"
	case InvalidMagic:
		return "InvalidMagic"
	case InvalidVersion:
		return "InvalidVersion"
	case InvalidHeader:
		return "InvalidHeader"
	case ChecksumMismatch:
		return "ChecksumMismatch"
	case InsufficientLimb:
		return "InsufficientLimb"
	case DegenerateGeometry:
		return "DegenerateGeometry"
	case PipelineNotReady:
		return "PipelineNotReady"
	case PipelineAlreadyReady:
		return "PipelineAlreadyReady"
	case InputTypeMismatch:
		return "InputTypeMismatch"
	default:
		return "Unknown"
	}
}

// Error is the error type returned across found's package boundaries. It
// carries a Kind so executors can map failures to the exit codes in the CLI
// contract without string-matching error text.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New constructs an *Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf constructs an *Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Is allows errors.Is(err, found.New(kind, "")) to match purely on Kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
