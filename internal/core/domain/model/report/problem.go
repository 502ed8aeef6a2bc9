package report

// Problem lists the findings recorded for one order, in the order the rules ran.
type Problem struct {
	orderID  string
	findings []error
}

// NewProblem returns a problem for orderID. findings is copied.
func NewProblem(orderID string, findings []error) Problem {
	copied := make([]error, len(findings))
	copy(copied, findings)
	return Problem{
		orderID:  orderID,
		findings: copied,
	}
}

func (p Problem) OrderID() string {
	return p.orderID
}

// Findings returns a copy of the typed findings.
func (p Problem) Findings() []error {
	copied := make([]error, len(p.findings))
	copy(copied, p.findings)
	return copied
}

// Issues renders every finding as text.
func (p Problem) Issues() []string {
	issues := make([]string, 0, len(p.findings))
	for _, f := range p.findings {
		issues = append(issues, f.Error())
	}
	return issues
}
