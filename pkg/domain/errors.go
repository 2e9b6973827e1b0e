package domain

import "errors"

// Kind is the category an error belongs to. Every domain error carries exactly
// one kind, which the transport layers use to pick a status code.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindPayment      Kind = "payment"
)

// Error is a typed domain error. Two errors match under errors.Is when they
// share kind and code; a target without a code matches any error of its kind.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

// New creates a domain error of the given kind.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is the same error or the category sentinel of e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code == "" {
		return t.Kind == e.Kind
	}
	return t.Kind == e.Kind && t.Code == e.Code
}

// Common domain errors
var (
	// ErrValidation matches every validation failure.
	ErrValidation = &Error{Kind: KindValidation, Message: "validation error"}
	// ErrConflict matches every uniqueness or state conflict.
	ErrConflict = &Error{Kind: KindConflict, Message: "conflict"}
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = &Error{Kind: KindNotFound, Message: "resource not found"}
	// ErrUnauthorized is returned when a caller is not authorized to perform an action
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
	// ErrPayment matches every payment gate failure.
	ErrPayment = &Error{Kind: KindPayment, Message: "payment error"}

	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = New(KindConflict, "already_exists", "resource already exists")
)

// KindOf extracts the kind of a domain error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}

// CodeOf returns the code of a domain error in err's chain, or "".
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
