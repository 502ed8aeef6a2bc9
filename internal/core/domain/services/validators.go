package services

import (
	"fmt"
	"regexp"
	"strings"

	"orderaudit/internal/core/domain/model/order"
	"orderaudit/internal/pkg/errs"
)

// Whitespace covers ASCII space characters, vertical tab and Unicode separators.
var emailPattern = regexp.MustCompile(`^[^@\s\v\p{Z}]+@[^@\s\v\p{Z}]+\.[^@\s\v\p{Z}]+$`)

// ValidateID fails with a StructuralError when the order id is blank.
func ValidateID(o *order.Order) error {
	if strings.TrimSpace(o.ID()) == "" {
		return errs.NewStructuralError("id", RuleMissingID)
	}
	return nil
}

// ValidateStatus fails with a StructuralError when the status is not PAID, PENDING or
// CANCELLED.
func ValidateStatus(o *order.Order) error {
	return o.Status().Validate()
}

// ValidateEmail accepts an absent email and fails with a FormatError when a present
// email does not look like local-part@domain.tld.
func ValidateEmail(c order.Customer) error {
	email, ok := c.Email()
	if !ok {
		return nil
	}
	if !emailPattern.MatchString(email) {
		return errs.NewFormatError("customer.email", email, EmailPatternDescription)
	}
	return nil
}

// ValidateLine returns every finding for a line: non-positive quantity, negative price
// and missing (empty) sku are reported independently. index locates the line in the order.
func ValidateLine(index int, line order.Line) []error {
	var findings []error

	if line.Quantity() <= 0 {
		findings = append(findings, errs.NewBusinessRuleErrorWithCause(
			RuleNonPositiveQuantity,
			lineField(index, "quantity"),
			fmt.Errorf("%d is not greater than 0", line.Quantity()),
		))
	}

	if line.UnitPrice().IsNegative() {
		findings = append(findings, errs.NewBusinessRuleErrorWithCause(
			RuleNegativePrice,
			lineField(index, "unitPrice"),
			fmt.Errorf("%s is less than 0", line.UnitPrice()),
		))
	}

	if line.SKU() == "" {
		findings = append(findings, errs.NewStructuralError(lineField(index, "sku"), RuleMissingSKU))
	}

	return findings
}

// ValidateShippingFee fails with a BusinessRuleError when the fee is negative.
func ValidateShippingFee(s order.Shipping) error {
	if s.Fee().IsNegative() {
		return errs.NewBusinessRuleErrorWithCause(
			RuleNegativeShippingFee,
			"shipping.fee",
			fmt.Errorf("%s is less than 0", s.Fee()),
		)
	}
	return nil
}

func lineField(index int, name string) string {
	return fmt.Sprintf("lines[%d].%s", index, name)
}
