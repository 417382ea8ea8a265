package handler

import (
	"credit-approval/internal/api/handler/dto"
	"credit-approval/internal/domain/loan"
	"credit-approval/internal/pkg/apperrors"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

const (
	msgCustomerNotFound = "Customer not found"
	msgLoanNotFound     = "Loan not found"
)

type LoanHandler struct {
	service loan.LoanService
	logger  *slog.Logger
}

func NewLoanHandler(s loan.LoanService, l *slog.Logger) *LoanHandler {
	if s == nil {
		panic("loan service cannot be nil")
	}
	return &LoanHandler{
		service: s,
		logger:  l.With("component", "LoanHandler"),
	}
}

func (h *LoanHandler) decodeApplication(w http.ResponseWriter, r *http.Request) (loan.Application, bool) {
	var req dto.LoanRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return loan.Application{}, false
	}
	app, err := req.Validate()
	if err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, err)
		return loan.Application{}, false
	}
	return app, true
}

func (h *LoanHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	h.logger.Log(r.Context(), logLevelFor(err), "Loan service call failed", slog.Any("error", err))
	if errors.Is(err, apperrors.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, notFound)
		return
	}
	respondError(w, err)
}

// CheckEligibility handles POST /check-eligibility
// @Summary Check loan eligibility
// @Description Scores the customer's credit history and returns the decision, the corrected interest rate and the monthly installment. A rejection is a 200 with approval=false.
// @Tags Loans
// @Accept json
// @Produce json
// @Param request body dto.LoanRequest true "Loan request"
// @Success 200 {object} dto.EligibilityResponse "Eligibility decision"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or field errors"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /check-eligibility [post]
// @Security BearerAuth
func (h *LoanHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	app, ok := h.decodeApplication(w, r)
	if !ok {
		return
	}

	eligibility, err := h.service.CheckEligibility(r.Context(), app)
	if err != nil {
		h.handleServiceError(w, r, err, msgCustomerNotFound)
		return
	}

	h.logger.InfoContext(r.Context(), "Eligibility checked",
		slog.Int64("customerID", app.CustomerID),
		slog.Bool("approved", eligibility.Decision.Approved),
		slog.String("reason", string(eligibility.Decision.Reason)),
	)
	respondJSON(w, http.StatusOK, dto.NewEligibilityResponse(eligibility))
}

// CreateLoan handles POST /create-loan
// @Summary Create a loan
// @Description Runs the eligibility check and, when approved, books the loan at the corrected rate starting today.
// @Tags Loans
// @Accept json
// @Produce json
// @Param request body dto.LoanRequest true "Loan request"
// @Success 201 {object} dto.CreateLoanResponse "Loan approved and created"
// @Success 200 {object} dto.CreateLoanResponse "Loan not approved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or field errors"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /create-loan [post]
// @Security BearerAuth
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	app, ok := h.decodeApplication(w, r)
	if !ok {
		return
	}

	result, err := h.service.IssueLoan(r.Context(), app)
	if err != nil {
		h.handleServiceError(w, r, err, msgCustomerNotFound)
		return
	}

	status := http.StatusOK
	if result.Approved {
		status = http.StatusCreated
		h.logger.InfoContext(r.Context(), "Loan created", slog.Int64("loanID", result.LoanID), slog.Int64("customerID", result.CustomerID))
	} else {
		h.logger.InfoContext(r.Context(), "Loan not approved", slog.Int64("customerID", result.CustomerID), slog.String("reason", string(result.Decision.Reason)))
	}
	respondJSON(w, status, dto.NewCreateLoanResponse(result))
}

// ViewLoan handles GET /view-loan/{loanID}
// @Summary View a loan
// @Description Returns a loan with its owning customer.
// @Tags Loans
// @Produce json
// @Param loanID path int true "Loan ID" Minimum(1)
// @Success 200 {object} dto.LoanDetailResponse "Loan details"
// @Failure 400 {object} dto.ErrorResponse "Invalid loan ID"
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /view-loan/{loanID} [get]
// @Security BearerAuth
func (h *LoanHandler) ViewLoan(w http.ResponseWriter, r *http.Request) {
	loanID, err := getIDFromURL(r, "loanID")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get loan ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	detail, err := h.service.GetLoan(r.Context(), loanID)
	if err != nil {
		h.handleServiceError(w, r, err, msgLoanNotFound)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewLoanDetailResponse(detail))
}

// ViewCustomerLoans handles GET /view-loans/{customerID}
// @Summary View a customer's loans
// @Description Lists every loan of a customer with the number of repayments left.
// @Tags Loans
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Success 200 {array} dto.LoanSummaryResponse "Customer loans"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /view-loans/{customerID} [get]
// @Security BearerAuth
func (h *LoanHandler) ViewCustomerLoans(w http.ResponseWriter, r *http.Request) {
	customerID, err := getIDFromURL(r, "customerID")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	summaries, err := h.service.ListCustomerLoans(r.Context(), customerID)
	if err != nil {
		h.handleServiceError(w, r, err, msgCustomerNotFound)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewLoanSummaryResponses(summaries))
}
