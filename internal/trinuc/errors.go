package trinuc

import "fmt"

// ErrorKind classifies a per-mutation failure.
type ErrorKind int

const (
	MalformedToken ErrorKind = iota + 1
	PositionOutOfRange
	ReferenceMismatch
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case MalformedToken:
		return "malformed_token"
	case PositionOutOfRange:
		return "position_out_of_range"
	case ReferenceMismatch:
		return "reference_mismatch"
	default:
		return "unknown"
	}
}

// MutationError describes why a single mutation token could not be
// contextualised. It is carried in an Outcome and never aborts a batch.
type MutationError struct {
	Kind    ErrorKind
	Message string
}

func (e *MutationError) Error() string {
	return e.Message
}

// Is matches another *MutationError of the same kind, so callers can
// compare against ErrMalformedToken and friends with errors.Is.
func (e *MutationError) Is(target error) bool {
	t, ok := target.(*MutationError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrMalformedToken     = &MutationError{Kind: MalformedToken}
	ErrPositionOutOfRange = &MutationError{Kind: PositionOutOfRange}
	ErrReferenceMismatch  = &MutationError{Kind: ReferenceMismatch}
)

func errMalformed() *MutationError {
	return &MutationError{Kind: MalformedToken, Message: "Invalid mutation format"}
}

func errOutOfRange(pos string, length int) *MutationError {
	return &MutationError{
		Kind:    PositionOutOfRange,
		Message: fmt.Sprintf("Position %s out of range (sequence length: %d)", pos, length),
	}
}

func errMismatch(pos int, expected, found byte) *MutationError {
	return &MutationError{
		Kind:    ReferenceMismatch,
		Message: fmt.Sprintf("Reference mismatch at position %d: expected %c, found %c", pos, expected, found),
	}
}
