package loan

import (
	"credit-approval/internal/domain/credit"
	"time"
)

type Loan struct {
	ID               int64
	CustomerID       int64
	Amount           float64
	Tenure           int
	InterestRate     float64
	MonthlyRepayment float64
	EMIsPaidOnTime   int
	StartDate        time.Time
	EndDate          time.Time
}

// IsActive reports whether the loan is still running on asOf. A loan
// ending on asOf is active.
func (l *Loan) IsActive(asOf time.Time) bool {
	return !dateOnly(l.EndDate).Before(dateOnly(asOf))
}

// AddMonths moves a date by whole calendar months, clamping the day to the
// end of the target month (Jan 31 + 1 month = Feb 28).
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(first); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// RepaymentsLeft counts the monthly installments between today and the end
// date, with a partial month counting as one. It is 0 once the end date has
// passed and on the end date itself.
func RepaymentsLeft(endDate, today time.Time) int {
	end, from := dateOnly(endDate), dateOnly(today)
	if from.After(end) {
		return 0
	}

	months := (end.Year()-from.Year())*12 + int(end.Month()-from.Month())
	for months > 0 && AddMonths(from, months).After(end) {
		months--
	}
	if AddMonths(from, months).Before(end) {
		months++
	}
	return months
}

// ActiveAsOf returns the loans whose end date is on or after asOf.
func ActiveAsOf(loans []Loan, asOf time.Time) []Loan {
	active := make([]Loan, 0, len(loans))
	for _, l := range loans {
		if l.IsActive(asOf) {
			active = append(active, l)
		}
	}
	return active
}

// Summarize aggregates one snapshot of a customer's loans for scoring.
func Summarize(loans []Loan, asOf time.Time) credit.History {
	var h credit.History
	for _, l := range loans {
		h.LoanCount++
		h.TotalPrincipal += l.Amount
		h.TotalTenure += l.Tenure
		h.TotalPaidOnTime += l.EMIsPaidOnTime
		if l.StartDate.Year() == asOf.Year() {
			h.CurrentYearLoans++
		}
	}
	for _, l := range ActiveAsOf(loans, asOf) {
		h.ActivePrincipal += l.Amount
		h.ActiveInstallments += l.MonthlyRepayment
	}
	return h
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(firstOfMonth time.Time) int {
	return firstOfMonth.AddDate(0, 1, -1).Day()
}
