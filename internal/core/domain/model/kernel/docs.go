// Package kernel provides the value objects shared by the order audit domain.
//
// The package includes:
//   - UUID: identifier of a stored batch of orders, wrapping github.com/google/uuid
//   - Money: a decimal amount used for prices, fees, refunds and line totals
//
// Both types are immutable and safe for concurrent use.
package kernel
