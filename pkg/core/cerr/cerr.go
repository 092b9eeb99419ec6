package cerr

import (
	"errors"
	"fmt"
)

// Category classifies an engine error by how the caller is expected
// to react to it.
type Category int

const (
	// CategoryDeclined marks expected, recoverable rejections such as
	// an insufficient balance or a half-fare trip attempted too soon.
	CategoryDeclined Category = iota + 1
	// CategoryPolicyViolation marks misuse of a card, such as a
	// franchise used outside its permitted hours.
	CategoryPolicyViolation
	// CategoryNotFound marks a lookup of an unknown card, line, or
	// rider.
	CategoryNotFound
)

// String returns a short label of the category.
func (c Category) String() string {
	switch c {
	case CategoryDeclined:
		return "declined"
	case CategoryPolicyViolation:
		return "policy-violation"
	case CategoryNotFound:
		return "not-found"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Error wraps an error with its engine category, so callers can react
// by category instead of matching on error strings. The wrapped error
// stays reachable through errors.Is and errors.As.
type Error struct {
	Err      error
	Category Category
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Category, e.Err.Error())
}

// Declined wraps err as an expected, recoverable rejection.
func Declined(err error) *Error {
	return &Error{Err: err, Category: CategoryDeclined}
}

// PolicyViolation wraps err as a card misuse which callers should
// propagate rather than recover from.
func PolicyViolation(err error) *Error {
	return &Error{Err: err, Category: CategoryPolicyViolation}
}

// NotFound wraps err as a failed lookup.
func NotFound(err error) *Error {
	return &Error{Err: err, Category: CategoryNotFound}
}

// Is reports whether err carries the given category anywhere in its
// chain.
func Is(err error, c Category) bool {
	var e *Error
	return errors.As(err, &e) && e.Category == c
}
