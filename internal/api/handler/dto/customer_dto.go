package dto

import (
	"credit-approval/internal/domain/customer"
	"credit-approval/internal/pkg/apperrors"
	"encoding/json"
	"strings"
)

// maxMonthlyIncome is the largest value customers.monthly_salary holds.
const maxMonthlyIncome = 9_999_999_999_999.99

type RegisterCustomerRequest struct {
	FirstName     *string  `json:"first_name"`
	LastName      *string  `json:"last_name"`
	Age           *int     `json:"age"`
	MonthlyIncome *float64 `json:"monthly_income"`
	PhoneNumber   *int64   `json:"phone_number"`
}

// Validate reports every failing field at once.
func (r *RegisterCustomerRequest) Validate() (customer.Registration, error) {
	var errs apperrors.ValidationErrors

	if r.FirstName == nil || strings.TrimSpace(*r.FirstName) == "" {
		errs.Add("first_name", "is required")
	}
	if r.LastName == nil || strings.TrimSpace(*r.LastName) == "" {
		errs.Add("last_name", "is required")
	}
	switch {
	case r.Age == nil:
		errs.Add("age", "is required")
	case *r.Age <= 0:
		errs.Add("age", "must be greater than 0")
	}
	switch {
	case r.MonthlyIncome == nil:
		errs.Add("monthly_income", "is required")
	case *r.MonthlyIncome <= 0:
		errs.Add("monthly_income", "must be greater than 0")
	case *r.MonthlyIncome > maxMonthlyIncome:
		errs.Add("monthly_income", "must not exceed 9999999999999.99")
	}
	if r.PhoneNumber == nil {
		errs.Add("phone_number", "is required")
	}

	if err := errs.OrNil(); err != nil {
		return customer.Registration{}, err
	}
	return customer.Registration{
		FirstName:     *r.FirstName,
		LastName:      *r.LastName,
		Age:           *r.Age,
		PhoneNumber:   *r.PhoneNumber,
		MonthlyIncome: *r.MonthlyIncome,
	}, nil
}

type RegisterCustomerResponse struct {
	CustomerID    int64       `json:"customer_id"`
	Name          string      `json:"name"`
	Age           int         `json:"age"`
	MonthlyIncome json.Number `json:"monthly_income" swaggertype:"number"`
	ApprovedLimit int64       `json:"approved_limit"`
	PhoneNumber   int64       `json:"phone_number"`
}

func NewRegisterCustomerResponse(c *customer.Customer) RegisterCustomerResponse {
	return RegisterCustomerResponse{
		CustomerID:    c.ID,
		Name:          c.Name(),
		Age:           c.Age,
		MonthlyIncome: money(c.MonthlySalary),
		ApprovedLimit: c.ApprovedLimit,
		PhoneNumber:   c.PhoneNumber,
	}
}

type CustomerResponse struct {
	CustomerID    int64       `json:"customer_id"`
	FirstName     string      `json:"first_name"`
	LastName      string      `json:"last_name"`
	Age           int         `json:"age"`
	PhoneNumber   int64       `json:"phone_number"`
	MonthlySalary json.Number `json:"monthly_salary" swaggertype:"number"`
	ApprovedLimit int64       `json:"approved_limit"`
}

func NewCustomerResponse(c *customer.Customer) CustomerResponse {
	if c == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{
		CustomerID:    c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Age:           c.Age,
		PhoneNumber:   c.PhoneNumber,
		MonthlySalary: money(c.MonthlySalary),
		ApprovedLimit: c.ApprovedLimit,
	}
}
