package event

import (
	"time"

	"github.com/google/uuid"
)

type CustomerPayload struct {
	CustomerID    int64   `json:"customerId"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Age           int     `json:"age"`
	MonthlySalary float64 `json:"monthlySalary"`
	ApprovedLimit int64   `json:"approvedLimit"`
}

type CustomerRegisteredEvent struct {
	EventID   string          `json:"eventId"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   CustomerPayload `json:"payload"`
}

type LoanPayload struct {
	LoanID             int64     `json:"loanId"`
	CustomerID         int64     `json:"customerId"`
	LoanAmount         float64   `json:"loanAmount"`
	InterestRate       float64   `json:"interestRate"`
	Tenure             int       `json:"tenure"`
	MonthlyInstallment float64   `json:"monthlyInstallment"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
}

type LoanIssuedEvent struct {
	EventID   string      `json:"eventId"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   LoanPayload `json:"payload"`
}

func NewCustomerRegisteredEvent(payload CustomerPayload) CustomerRegisteredEvent {
	return CustomerRegisteredEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

func NewLoanIssuedEvent(payload LoanPayload) LoanIssuedEvent {
	return LoanIssuedEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}
