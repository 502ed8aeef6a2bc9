package report

import "encoding/json"

type problemJSON struct {
	OrderID string   `json:"orderId"`
	Issues  []string `json:"issues"`
}

type skuQuantityJSON struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type reportJSON struct {
	TotalOrders       int                 `json:"totalOrders"`
	TotalLineItems    int                 `json:"totalLineItems"`
	InvalidOrders     int                 `json:"invalidOrders"`
	OrderIDs          []string            `json:"orderIds"`
	Problems          []problemJSON       `json:"problems"`
	GMVByOrder        *map[string]float64 `json:"gmvByOrder,omitempty"`
	TopSKUs           *[]skuQuantityJSON  `json:"topSkus,omitempty"`
	CorrectlyRefunded []string            `json:"correctlyRefunded"`
	ContactIssues     []string            `json:"contactIssues"`
	Uncaptured        []string            `json:"uncaptured"`
	Summary           string              `json:"summary"`
}

// MarshalJSON renders the report. Optional aggregates are omitted when not requested.
// When an order id repeats, gmvByOrder keeps the first occurrence.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		TotalOrders:       r.totalOrders,
		TotalLineItems:    r.totalLineItems,
		InvalidOrders:     r.InvalidOrders(),
		OrderIDs:          nonNil(r.orderIDs),
		Problems:          make([]problemJSON, 0, len(r.problems)),
		CorrectlyRefunded: nonNil(r.correctlyRefunded),
		ContactIssues:     nonNil(r.contactIssues),
		Uncaptured:        nonNil(r.uncaptured),
		Summary:           r.Summary(),
	}

	for _, p := range r.problems {
		out.Problems = append(out.Problems, problemJSON{OrderID: p.orderID, Issues: p.Issues()})
	}

	if r.gmvByOrder != nil {
		gmv := make(map[string]float64, len(r.gmvByOrder))
		for _, g := range r.gmvByOrder {
			if _, seen := gmv[g.orderID]; seen {
				continue
			}
			gmv[g.orderID] = g.gmv.Float64()
		}
		out.GMVByOrder = &gmv
	}

	if r.topSKUs != nil {
		top := make([]skuQuantityJSON, 0, len(r.topSKUs))
		for _, s := range r.topSKUs {
			top = append(top, skuQuantityJSON{SKU: s.sku, Quantity: s.quantity})
		}
		out.TopSKUs = &top
	}

	return json.Marshal(out)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
