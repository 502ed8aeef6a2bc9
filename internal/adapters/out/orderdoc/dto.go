package orderdoc

import (
	"fmt"

	"orderaudit/internal/core/domain/model/kernel"
	"orderaudit/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type documentDTO struct {
	Orders *[]orderDTO `json:"orders" yaml:"orders"`
}

type orderDTO struct {
	ID       string       `json:"id" yaml:"id"`
	Status   string       `json:"status" yaml:"status"`
	Customer customerDTO  `json:"customer" yaml:"customer"`
	Lines    *[]lineDTO   `json:"lines" yaml:"lines"`
	Payment  *paymentDTO  `json:"payment" yaml:"payment"`
	Refund   *refundDTO   `json:"refund" yaml:"refund"`
	Shipping *shippingDTO `json:"shipping" yaml:"shipping"`
}

type customerDTO struct {
	ID    string  `json:"id" yaml:"id"`
	Email *string `json:"email" yaml:"email"`
}

type lineDTO struct {
	SKU   string   `json:"sku" yaml:"sku"`
	Qty   quantity `json:"qty" yaml:"qty"`
	Price amount   `json:"price" yaml:"price"`
}

type paymentDTO struct {
	Captured bool `json:"captured" yaml:"captured"`
}

type refundDTO struct {
	Amount amount `json:"amount" yaml:"amount"`
}

type shippingDTO struct {
	Fee amount `json:"fee" yaml:"fee"`
}

// amount keeps the literal digits of a JSON or YAML number.
type amount struct {
	decimal.Decimal
}

func (a *amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		a.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return err
	}
	a.Decimal = d
	return nil
}

// quantity accepts any integral number, so 2 and 2.0 are the same quantity.
type quantity int

func (q *quantity) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*q = 0
		return nil
	}
	return q.parse(string(data))
}

func (q *quantity) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*q = 0
		return nil
	}
	return q.parse(node.Value)
}

func (q *quantity) parse(value string) error {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("quantity %q: %w", value, err)
	}
	if !d.Equal(d.Truncate(0)) {
		return fmt.Errorf("quantity %s is not a whole number", value)
	}
	*q = quantity(d.IntPart())
	return nil
}

func (dto orderDTO) toDomain() *order.Order {
	customer := order.NewCustomer(dto.Customer.ID)
	if dto.Customer.Email != nil {
		customer = order.NewCustomerWithEmail(dto.Customer.ID, *dto.Customer.Email)
	}

	lines := order.AbsentLines()
	if dto.Lines != nil {
		items := make([]order.Line, 0, len(*dto.Lines))
		for _, l := range *dto.Lines {
			items = append(items, order.NewLine(l.SKU, int(l.Qty), kernel.MoneyFromDecimal(l.Price.Decimal)))
		}
		lines = order.NewLines(items...)
	}

	var payment *order.Payment
	if dto.Payment != nil {
		p := order.NewPayment(dto.Payment.Captured)
		payment = &p
	}

	var refund *order.Refund
	if dto.Refund != nil {
		r := order.NewRefund(kernel.MoneyFromDecimal(dto.Refund.Amount.Decimal))
		refund = &r
	}

	fee := kernel.ZeroMoney()
	if dto.Shipping != nil {
		fee = kernel.MoneyFromDecimal(dto.Shipping.Fee.Decimal)
	}

	return order.NewOrder(
		dto.ID,
		order.Status(dto.Status),
		customer,
		order.NewShipping(fee),
		lines,
		payment,
		refund,
	)
}
