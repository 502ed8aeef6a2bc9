package errs

import (
	"errors"
	"fmt"
)

var (
	ErrStructural   = errors.New("structural error")
	ErrFormat       = errors.New("format error")
	ErrBusinessRule = errors.New("business rule violated")
)

// StructuralError reports a required field that is missing or malformed at a level
// where the order cannot be classified.
type StructuralError struct {
	Field  string
	Reason string
	Cause  error
}

func NewStructuralError(field, reason string) *StructuralError {
	return &StructuralError{
		Field:  field,
		Reason: reason,
	}
}

func NewStructuralErrorWithCause(field, reason string, cause error) *StructuralError {
	return &StructuralError{
		Field:  field,
		Reason: reason,
		Cause:  cause,
	}
}

func (e *StructuralError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", ErrStructural, e.Field, e.Reason)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

// FormatError reports a present value that does not have the expected shape.
type FormatError struct {
	Field    string
	Value    string
	Expected string
	Cause    error
}

func NewFormatError(field, value, expected string) *FormatError {
	return &FormatError{
		Field:    field,
		Value:    value,
		Expected: expected,
	}
}

func NewFormatErrorWithCause(field, value, expected string, cause error) *FormatError {
	return &FormatError{
		Field:    field,
		Value:    value,
		Expected: expected,
		Cause:    cause,
	}
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("%s: %s: %q does not match %s", ErrFormat, e.Field, sanitize(e.Value), e.Expected)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// BusinessRuleError reports a violated consistency rule. Expected and Actual are
// optional diagnostics; both are set for amount comparisons.
type BusinessRuleError struct {
	Rule     string
	Field    string
	Expected any
	Actual   any
	Cause    error
}

func NewBusinessRuleError(rule, field string) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:  rule,
		Field: field,
	}
}

func NewBusinessRuleErrorWithValues(rule, field string, expected, actual any) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:     rule,
		Field:    field,
		Expected: expected,
		Actual:   actual,
	}
}

func NewBusinessRuleErrorWithCause(rule, field string, cause error) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:  rule,
		Field: field,
		Cause: cause,
	}
}

func (e *BusinessRuleError) Error() string {
	msg := fmt.Sprintf("%s: %s (%s)", ErrBusinessRule, e.Rule, e.Field)
	if e.Expected != nil || e.Actual != nil {
		msg = fmt.Sprintf("%s: expected %v, actual %v", msg, e.Expected, e.Actual)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *BusinessRuleError) Unwrap() error {
	return ErrBusinessRule
}
