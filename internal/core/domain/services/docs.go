// Package services contains the validation and aggregation engine.
//
// Field validators (ValidateID, ValidateStatus, ValidateEmail, ValidateLine,
// ValidateShippingFee) check one field or a small group of fields. Cross-field checkers
// (CheckLinesRequired, CheckPaymentCaptured, CheckRefundConsistency) check rules that span
// several parts of an order. OrderInspector runs all of them on one order without
// short-circuiting. Aggregator computes whole-set figures and ReportBuilder combines both
// into a report.
//
// Every function here is pure over the immutable record model, so orders can be inspected
// in parallel.
package services
