package customer

import (
	"credit-approval/internal/domain/credit"
	"strings"
	"time"
)

type Customer struct {
	ID            int64
	FirstName     string
	LastName      string
	Age           int
	PhoneNumber   int64
	MonthlySalary float64
	ApprovedLimit int64
	CreatedAt     time.Time
}

// Registration is a validated sign-up request.
type Registration struct {
	FirstName     string
	LastName      string
	Age           int
	PhoneNumber   int64
	MonthlyIncome float64
}

func NewCustomer(reg Registration) *Customer {
	return &Customer{
		FirstName:     strings.TrimSpace(reg.FirstName),
		LastName:      strings.TrimSpace(reg.LastName),
		Age:           reg.Age,
		PhoneNumber:   reg.PhoneNumber,
		MonthlySalary: reg.MonthlyIncome,
		ApprovedLimit: credit.ApprovedLimit(reg.MonthlyIncome),
	}
}

func (c *Customer) Name() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c *Customer) Applicant() credit.Applicant {
	return credit.Applicant{
		MonthlySalary: c.MonthlySalary,
		ApprovedLimit: float64(c.ApprovedLimit),
	}
}
