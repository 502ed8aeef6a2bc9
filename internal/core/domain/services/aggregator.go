package services

import (
	"sort"
	"strings"

	"orderaudit/internal/core/domain/model/kernel"
	"orderaudit/internal/core/domain/model/order"
	"orderaudit/internal/core/domain/model/report"
)

// Aggregator computes whole-set figures. It holds no state between calls.
type Aggregator struct{}

func NewAggregator() Aggregator {
	return Aggregator{}
}

// OrderIDs returns the order ids in input order.
func (Aggregator) OrderIDs(orders []*order.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids
}

// LineCount counts every line of every order, invalid lines included.
func (Aggregator) LineCount(orders []*order.Order) int {
	count := 0
	for _, o := range orders {
		count += o.Lines().Len()
	}
	return count
}

// GMV returns the sum of quantity x unit price over all lines of o; 0 without lines.
func (Aggregator) GMV(o *order.Order) kernel.Money {
	return o.Lines().Total()
}

// GMVByOrder returns the GMV of each order in input order.
func (a Aggregator) GMVByOrder(orders []*order.Order) []report.OrderGMV {
	gmv := make([]report.OrderGMV, 0, len(orders))
	for _, o := range orders {
		gmv = append(gmv, report.NewOrderGMV(o.ID(), a.GMV(o)))
	}
	return gmv
}

// TopSKUs sums quantities of lines with quantity > 0 per SKU and returns the k largest,
// descending by quantity and ascending by SKU on ties. Lines with an empty SKU are
// not ranked. k <= 0 returns an empty ranking.
func (Aggregator) TopSKUs(orders []*order.Order, k int) []report.SKUQuantity {
	if k <= 0 {
		return []report.SKUQuantity{}
	}

	totals := make(map[string]int)
	for _, o := range orders {
		for _, line := range o.Lines().All() {
			if line.Quantity() <= 0 || line.SKU() == "" {
				continue
			}
			totals[line.SKU()] += line.Quantity()
		}
	}

	skus := make([]string, 0, len(totals))
	for sku := range totals {
		skus = append(skus, sku)
	}
	sort.Slice(skus, func(i, j int) bool {
		if totals[skus[i]] != totals[skus[j]] {
			return totals[skus[i]] > totals[skus[j]]
		}
		return skus[i] < skus[j]
	})

	if k > len(skus) {
		k = len(skus)
	}
	ranking := make([]report.SKUQuantity, 0, k)
	for _, sku := range skus[:k] {
		ranking = append(ranking, report.NewSKUQuantity(sku, totals[sku]))
	}
	return ranking
}

// CorrectlyRefunded returns the ids of CANCELLED orders whose refund matches their line
// total.
func (Aggregator) CorrectlyRefunded(orders []*order.Order) []string {
	ids := []string{}
	for _, o := range orders {
		if IsCorrectlyRefunded(o) {
			ids = append(ids, o.ID())
		}
	}
	return ids
}

// ContactIssues returns the ids of orders whose customer cannot be reached: email absent
// or without an '@'. This is looser than ValidateEmail.
func (Aggregator) ContactIssues(orders []*order.Order) []string {
	ids := []string{}
	for _, o := range orders {
		email, ok := o.Customer().Email()
		if !ok || !strings.Contains(email, "@") {
			ids = append(ids, o.ID())
		}
	}
	return ids
}

// Uncaptured returns the ids of PAID orders whose payment is absent or not captured.
func (Aggregator) Uncaptured(orders []*order.Order) []string {
	ids := []string{}
	for _, o := range orders {
		if CheckPaymentCaptured(o) != nil {
			ids = append(ids, o.ID())
		}
	}
	return ids
}
