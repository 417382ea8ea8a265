package loan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{name: "same day next month", start: date(2024, time.March, 15), months: 1, expected: date(2024, time.April, 15)},
		{name: "clamps to february in leap year", start: date(2024, time.January, 31), months: 1, expected: date(2024, time.February, 29)},
		{name: "clamps to february", start: date(2023, time.January, 31), months: 1, expected: date(2023, time.February, 28)},
		{name: "clamps to thirty day month", start: date(2024, time.August, 31), months: 1, expected: date(2024, time.September, 30)},
		{name: "crosses year", start: date(2024, time.November, 30), months: 3, expected: date(2025, time.February, 28)},
		{name: "long tenure", start: date(2024, time.May, 10), months: 120, expected: date(2034, time.May, 10)},
		{name: "zero months", start: date(2024, time.May, 10), months: 0, expected: date(2024, time.May, 10)},
		{name: "drops time of day", start: time.Date(2024, time.May, 10, 18, 30, 0, 0, time.UTC), months: 1, expected: date(2024, time.June, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddMonths(tt.start, tt.months))
		})
	}
}

func TestRepaymentsLeft(t *testing.T) {
	today := date(2024, time.March, 15)

	tests := []struct {
		name     string
		end      time.Time
		expected int
	}{
		{name: "ended in the past", end: date(2024, time.March, 14), expected: 0},
		{name: "ends today", end: today, expected: 0},
		{name: "ends tomorrow", end: date(2024, time.March, 16), expected: 1},
		{name: "exactly one month", end: date(2024, time.April, 15), expected: 1},
		{name: "one month and a day", end: date(2024, time.April, 16), expected: 2},
		{name: "less than a month across month boundary", end: date(2024, time.April, 10), expected: 1},
		{name: "exactly a year", end: date(2025, time.March, 15), expected: 12},
		{name: "year and partial month", end: date(2025, time.March, 20), expected: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RepaymentsLeft(tt.end, today))
		})
	}
}

func TestRepaymentsLeft_MonthEndClamp(t *testing.T) {
	assert.Equal(t, 1, RepaymentsLeft(date(2023, time.February, 28), date(2023, time.January, 31)))
	assert.Equal(t, 12, RepaymentsLeft(AddMonths(date(2024, time.January, 31), 12), date(2024, time.January, 31)))
}

func TestActiveAsOf(t *testing.T) {
	asOf := date(2024, time.June, 1)
	loans := []Loan{
		{ID: 1, EndDate: date(2024, time.May, 31)},
		{ID: 2, EndDate: asOf},
		{ID: 3, EndDate: date(2026, time.January, 1)},
	}

	active := ActiveAsOf(loans, time.Date(2024, time.June, 1, 23, 59, 0, 0, time.UTC))

	assert.Len(t, active, 2)
	assert.Equal(t, int64(2), active[0].ID)
	assert.Equal(t, int64(3), active[1].ID)
}

func TestSummarize(t *testing.T) {
	asOf := date(2024, time.June, 1)
	loans := []Loan{
		{Amount: 100000, Tenure: 12, EMIsPaidOnTime: 12, MonthlyRepayment: 8800, StartDate: date(2022, time.January, 1), EndDate: date(2023, time.January, 1)},
		{Amount: 200000, Tenure: 24, EMIsPaidOnTime: 3, MonthlyRepayment: 9500, StartDate: date(2024, time.February, 1), EndDate: date(2026, time.February, 1)},
		{Amount: 50000, Tenure: 6, EMIsPaidOnTime: 0, MonthlyRepayment: 8500, StartDate: date(2024, time.May, 1), EndDate: date(2024, time.November, 1)},
	}

	h := Summarize(loans, asOf)

	assert.Equal(t, 3, h.LoanCount)
	assert.Equal(t, 350000.0, h.TotalPrincipal)
	assert.Equal(t, 42, h.TotalTenure)
	assert.Equal(t, 15, h.TotalPaidOnTime)
	assert.Equal(t, 2, h.CurrentYearLoans)
	assert.Equal(t, 250000.0, h.ActivePrincipal)
	assert.Equal(t, 18000.0, h.ActiveInstallments)
}

func TestSummarize_ActiveTotalsMatchActiveAsOf(t *testing.T) {
	asOf := date(2024, time.June, 1)
	loans := []Loan{
		{Amount: 1000, MonthlyRepayment: 100, StartDate: date(2023, time.June, 1), EndDate: asOf},
		{Amount: 2000, MonthlyRepayment: 200, StartDate: date(2023, time.May, 1), EndDate: date(2024, time.May, 31)},
	}

	h := Summarize(loans, asOf)
	active := ActiveAsOf(loans, asOf)

	require.Len(t, active, 1)
	assert.Equal(t, active[0].Amount, h.ActivePrincipal)
	assert.Equal(t, active[0].MonthlyRepayment, h.ActiveInstallments)
}

func TestSummarize_NoLoans(t *testing.T) {
	h := Summarize(nil, date(2024, time.June, 1))

	assert.Zero(t, h)
}
