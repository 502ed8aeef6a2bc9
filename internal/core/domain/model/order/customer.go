package order

// Customer is the buyer of an order. Email is optional: an absent email differs from
// an empty string.
type Customer struct {
	id       string
	email    string
	hasEmail bool
}

// NewCustomer returns a customer without an email.
func NewCustomer(id string) Customer {
	return Customer{id: id}
}

// NewCustomerWithEmail returns a customer whose email is present, even when empty.
func NewCustomerWithEmail(id, email string) Customer {
	return Customer{
		id:       id,
		email:    email,
		hasEmail: true,
	}
}

// ID returns the customer identifier.
func (c Customer) ID() string {
	return c.id
}

// Email returns the email and whether it was present in the source.
func (c Customer) Email() (string, bool) {
	return c.email, c.hasEmail
}
