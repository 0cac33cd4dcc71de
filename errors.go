package pgqb

import "fmt"

// BuildError wraps a construction-time failure with the class of error
// that caused it, so callers can branch with errors.Is against the
// Kind sentinels below instead of string-matching messages.
type BuildError struct {
	Kind    error
	Message string
	Err     error
}

func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

func (e *BuildError) Is(target error) bool {
	return target == e.Kind
}

// Error-class sentinels, matched via errors.Is against BuildError.Kind.
var (
	// ErrInvalidOperator: an operator string is neither whitelisted nor
	// safely symbolic (see validateOperator in quote.go).
	ErrInvalidOperator = fmt.Errorf("pgqb: invalid operator")

	// ErrInvalidUUID: a UUID literal helper rejected non-conforming hex.
	ErrInvalidUUID = fmt.Errorf("pgqb: invalid uuid literal")

	// ErrInvalidAggregateConfiguration: an argumentless aggregate call
	// (e.g. count(*)) requested DISTINCT or ORDER BY. It is also the
	// kind returned for an ordered-set aggregate without exactly one
	// WITHIN GROUP item, an invalid window frame, a window call without
	// exactly one OVER form, DISTINCT combined with DISTINCT ON, and a
	// lock or ORDER BY on a combined set-operation result.
	ErrInvalidAggregateConfiguration = fmt.Errorf("pgqb: invalid aggregate configuration")

	// ErrMissingOffsetForFetch: FETCH was specified without OFFSET.
	ErrMissingOffsetForFetch = fmt.Errorf("pgqb: fetch clause requires offset")

	// ErrScalarArity: .Scalar() was called on a subquery whose
	// projection is not exactly one column wide.
	ErrScalarArity = fmt.Errorf("pgqb: scalar subquery must project exactly one column")

	// ErrDuplicateWindowName: two Window(name) calls used the same name
	// within one query.
	ErrDuplicateWindowName = fmt.Errorf("pgqb: duplicate window name")
)

func invalidOperator(op string) *BuildError {
	return &BuildError{Kind: ErrInvalidOperator, Message: fmt.Sprintf("%q", op)}
}

func invalidUUID(literal string) *BuildError {
	return &BuildError{Kind: ErrInvalidUUID, Message: fmt.Sprintf("%q", literal)}
}

func invalidAggregateConfiguration(fn string, reason string) *BuildError {
	return &BuildError{Kind: ErrInvalidAggregateConfiguration, Message: fmt.Sprintf("%s: %s", fn, reason)}
}

func missingOffsetForFetch() *BuildError {
	return &BuildError{Kind: ErrMissingOffsetForFetch, Message: "FETCH without OFFSET"}
}

func scalarArityError(n int) *BuildError {
	return &BuildError{Kind: ErrScalarArity, Message: fmt.Sprintf("projection has %d columns", n)}
}

func duplicateWindowName(name string) *BuildError {
	return &BuildError{Kind: ErrDuplicateWindowName, Message: name}
}
