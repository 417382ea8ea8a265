package dto

import (
	"credit-approval/internal/domain/credit"
	"credit-approval/internal/domain/loan"
	"credit-approval/internal/pkg/apperrors"
	"encoding/json"
)

// Upper bounds keep requests inside the loans column types.
const (
	maxLoanAmount   = 1_000_000_000_000
	maxInterestRate = 9999.99
	maxTenureMonths = 1200
)

// LoanRequest is the body of both /check-eligibility and /create-loan.
type LoanRequest struct {
	CustomerID   *int64   `json:"customer_id"`
	LoanAmount   *float64 `json:"loan_amount"`
	InterestRate *float64 `json:"interest_rate"`
	Tenure       *int     `json:"tenure"`
}

func (r *LoanRequest) Validate() (loan.Application, error) {
	var errs apperrors.ValidationErrors

	switch {
	case r.CustomerID == nil:
		errs.Add("customer_id", "is required")
	case *r.CustomerID <= 0:
		errs.Add("customer_id", "must be greater than 0")
	}
	switch {
	case r.LoanAmount == nil:
		errs.Add("loan_amount", "is required")
	case *r.LoanAmount <= 0:
		errs.Add("loan_amount", "must be greater than 0")
	case *r.LoanAmount > maxLoanAmount:
		errs.Add("loan_amount", "must not exceed 1000000000000")
	}
	switch {
	case r.InterestRate == nil:
		errs.Add("interest_rate", "is required")
	case *r.InterestRate < 0:
		errs.Add("interest_rate", "must be greater than or equal to 0")
	case *r.InterestRate > maxInterestRate:
		errs.Add("interest_rate", "must not exceed 9999.99")
	}
	switch {
	case r.Tenure == nil:
		errs.Add("tenure", "is required")
	case *r.Tenure <= 0:
		errs.Add("tenure", "must be greater than 0")
	case *r.Tenure > maxTenureMonths:
		errs.Add("tenure", "must not exceed 1200 months")
	}

	if err := errs.OrNil(); err != nil {
		return loan.Application{}, err
	}
	return loan.Application{
		CustomerID: *r.CustomerID,
		Amount:     *r.LoanAmount,
		Rate:       *r.InterestRate,
		Tenure:     *r.Tenure,
	}, nil
}

type EligibilityResponse struct {
	CustomerID            int64             `json:"customer_id"`
	Approval              bool              `json:"approval"`
	InterestRate          json.Number       `json:"interest_rate" swaggertype:"number"`
	CorrectedInterestRate *json.Number      `json:"corrected_interest_rate" swaggertype:"number"`
	Tenure                int               `json:"tenure"`
	MonthlyInstallment    json.Number       `json:"monthly_installment" swaggertype:"number"`
	CreditScore           *int              `json:"credit_score,omitempty"`
	Breakdown             *credit.Breakdown `json:"score_breakdown,omitempty"`
	Reason                string            `json:"reason"`
}

func NewEligibilityResponse(e *loan.Eligibility) EligibilityResponse {
	d := e.Decision
	resp := EligibilityResponse{
		CustomerID:         e.Application.CustomerID,
		Approval:           d.Approved,
		InterestRate:       rate(e.Application.Rate),
		Tenure:             e.Application.Tenure,
		MonthlyInstallment: money(d.MonthlyInstallment),
		Reason:             string(d.Reason),
	}
	if d.Approved {
		corrected := rate(d.CorrectedRate)
		resp.CorrectedInterestRate = &corrected
	}
	if d.Score != nil {
		score := d.Score.Value
		resp.CreditScore = &score
		breakdown := d.Score.Breakdown
		resp.Breakdown = &breakdown
	}
	return resp
}

type CreateLoanResponse struct {
	LoanID             *int64      `json:"loan_id"`
	CustomerID         int64       `json:"customer_id"`
	LoanApproved       bool        `json:"loan_approved"`
	Message            string      `json:"message"`
	MonthlyInstallment json.Number `json:"monthly_installment" swaggertype:"number"`
}

func NewCreateLoanResponse(r *loan.IssueResult) CreateLoanResponse {
	resp := CreateLoanResponse{
		CustomerID:         r.CustomerID,
		LoanApproved:       r.Approved,
		Message:            r.Message,
		MonthlyInstallment: money(r.MonthlyInstallment),
	}
	if r.Approved {
		id := r.LoanID
		resp.LoanID = &id
	}
	return resp
}

type LoanDetailResponse struct {
	LoanID           int64            `json:"loan_id"`
	Customer         CustomerResponse `json:"customer"`
	LoanAmount       json.Number      `json:"loan_amount" swaggertype:"number"`
	InterestRate     json.Number      `json:"interest_rate" swaggertype:"number"`
	MonthlyRepayment json.Number      `json:"monthly_repayment" swaggertype:"number"`
	Tenure           int              `json:"tenure"`
}

func NewLoanDetailResponse(d *loan.LoanDetail) LoanDetailResponse {
	return LoanDetailResponse{
		LoanID:           d.Loan.ID,
		Customer:         NewCustomerResponse(d.Customer),
		LoanAmount:       money(d.Loan.Amount),
		InterestRate:     rate(d.Loan.InterestRate),
		MonthlyRepayment: money(d.Loan.MonthlyRepayment),
		Tenure:           d.Loan.Tenure,
	}
}

type LoanSummaryResponse struct {
	LoanID           int64       `json:"loan_id"`
	LoanAmount       json.Number `json:"loan_amount" swaggertype:"number"`
	InterestRate     json.Number `json:"interest_rate" swaggertype:"number"`
	MonthlyRepayment json.Number `json:"monthly_repayment" swaggertype:"number"`
	RepaymentsLeft   int         `json:"repayments_left"`
}

func NewLoanSummaryResponses(summaries []loan.LoanSummary) []LoanSummaryResponse {
	resp := make([]LoanSummaryResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = LoanSummaryResponse{
			LoanID:           s.Loan.ID,
			LoanAmount:       money(s.Loan.Amount),
			InterestRate:     rate(s.Loan.InterestRate),
			MonthlyRepayment: money(s.Loan.MonthlyRepayment),
			RepaymentsLeft:   s.RepaymentsLeft,
		}
	}
	return resp
}
