package services

import "github.com/shopspring/decimal"

// Rule names carried by findings.
const (
	RuleNonPositiveQuantity = "non-positive quantity"
	RuleNegativePrice       = "negative price"
	RuleMissingSKU          = "missing sku"
	RuleMissingID           = "missing order id"
	RuleDuplicateID         = "duplicate order id"
	RuleMissingLines        = "missing required line items"
	RuleNotCaptured         = "paid order not captured"
	RuleRefundMismatch      = "refund/line-total mismatch"
	RuleNegativeShippingFee = "negative shipping fee"
	EmailPatternDescription = "local-part@domain.tld"
)

// RefundTolerance is the absolute tolerance of every refund-vs-line-total comparison.
// The comparison is inclusive.
var RefundTolerance = decimal.RequireFromString("0.001")
