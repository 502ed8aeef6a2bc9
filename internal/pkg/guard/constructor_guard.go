// Package guard detects values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands and queries so that a zero value can be
// told apart from one produced by its New... function.
//
// Example:
//
//	type GetBatchesQuery struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewGetBatchesQuery() GetBatchesQuery {
//	    return GetBatchesQuery{guard: guard.NewConstructorGuard()}
//	}
//
//	func (q GetBatchesQuery) Validate() error {
//	    return q.guard.Validate(ErrGetBatchesQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
