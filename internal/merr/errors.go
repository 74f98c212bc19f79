// Package merr implements the two error taxonomies of spec §7: UserError,
// reported to the terminal with a message and a non-zero exit, and
// InternalError, an invariant violation in the Differ or Interface Model.
//
// UserError is a single error type whose failure mode is one Kind from a
// closed set of string codes; InternalError is a separate type with no Kind.
package merr

import "fmt"

// Kind discriminates the UserError taxonomy of spec §7.
type Kind string

const (
	BadVersion         Kind = "BadVersion"
	BadName            Kind = "BadName"
	NotFoundPackage    Kind = "NotFound(package)"
	NotFoundVersion    Kind = "NotFound(version)"
	NotFoundDependency Kind = "NotFound(dependency)"
	DuplicateVersion   Kind = "DuplicateVersion"
	AlreadyDependency  Kind = "AlreadyDependency"
	NotDependency      Kind = "NotDependency"
	NoLock             Kind = "NoLock"
	NoSolution         Kind = "NoSolution"
	AlreadyExists      Kind = "AlreadyExists"
	IOFailure          Kind = "IOFailure"
)

// UserError is reported to the terminal with a message and causes a
// non-zero exit. The CLI layer (cmd/myxa) is the sole layer that converts
// these into terminal output; the Differ, Solver, Index, and Lifecycle
// return them, they do not print.
type UserError struct {
	K    Kind
	Msg  string
	Wrap error
}

func (e *UserError) Error() string {
	if e.Wrap != nil {
		return fmt.Sprintf("%s: %s: %v", e.K, e.Msg, e.Wrap)
	}
	return fmt.Sprintf("%s: %s", e.K, e.Msg)
}

func (e *UserError) Unwrap() error { return e.Wrap }

// User constructs a UserError of the given kind.
func User(k Kind, format string, args ...interface{}) *UserError {
	return &UserError{K: k, Msg: fmt.Sprintf(format, args...)}
}

// Wrapf constructs a UserError of the given kind, wrapping an underlying
// error (e.g. an os.PathError from the persistence layer).
func Wrapf(k Kind, err error, format string, args ...interface{}) *UserError {
	return &UserError{K: k, Msg: fmt.Sprintf(format, args...), Wrap: err}
}

// Is reports whether err is a UserError of kind k.
func Is(err error, k Kind) bool {
	ue, ok := err.(*UserError)
	return ok && ue.K == k
}

// InternalError signals an invariant violation in the Differ or Interface
// Model: an unexpected node kind at a position that should be structurally
// impossible given well-formed input. In debug mode the CLI layer turns
// these into a panic; otherwise it reports them like any other error.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string { return "internal error: " + e.Msg }

// Internal constructs an InternalError.
func Internal(format string, args ...interface{}) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}
