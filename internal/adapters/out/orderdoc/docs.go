// Package orderdoc translates serialized order documents into the order model.
//
// A document is an object with an "orders" collection, encoded as JSON or YAML:
//
//	{"orders": [{"id": "A-1001", "status": "PAID",
//	  "customer": {"id": "C-1", "email": "alice@example.com"},
//	  "lines": [{"sku": "PEN-RED", "qty": 2, "price": 20}],
//	  "payment": {"captured": true}, "shipping": {"fee": 4.99}}]}
//
// Absent fields stay absent in the model: a missing "lines" key differs from an
// empty list and a missing "email" differs from an empty string. A document without
// the "orders" key is malformed and fails with ErrOrdersMissing before any order is
// inspected.
package orderdoc
