package credit

import "math"

const (
	baselineScore = 25.0

	onTimeWeight  = 30.0
	perLoanPoints = 5.0
	loanCountCap  = 20.0
	activityCap   = 20.0
	volumeWeight  = 15.0
)

// History is the aggregate of a customer's loans as of one date.
type History struct {
	LoanCount          int
	TotalPrincipal     float64
	TotalTenure        int
	TotalPaidOnTime    int
	CurrentYearLoans   int
	ActivePrincipal    float64
	ActiveInstallments float64
}

type Breakdown struct {
	OnTime    float64 `json:"on_time"`
	LoanCount float64 `json:"loan_count"`
	Activity  float64 `json:"current_year_activity"`
	Volume    float64 `json:"volume"`
	Baseline  float64 `json:"baseline"`
}

type ScoreResult struct {
	Value     int
	Rejected  bool
	Breakdown Breakdown
}

// Score rates a customer's history against their approved limit. Active
// exposure above the limit is a hard rejection with a zero score; any other
// history scores at least the baseline. The total is not capped at 100.
func Score(approvedLimit float64, h History) ScoreResult {
	if h.ActivePrincipal > approvedLimit {
		return ScoreResult{Value: 0, Rejected: true}
	}

	b := Breakdown{Baseline: baselineScore}

	if h.TotalTenure > 0 {
		b.OnTime = float64(h.TotalPaidOnTime) / float64(h.TotalTenure) * onTimeWeight
	}

	b.LoanCount = math.Min(float64(h.LoanCount)*perLoanPoints, loanCountCap)
	b.Activity = math.Min(float64(h.CurrentYearLoans)*perLoanPoints, activityCap)

	if approvedLimit > 0 && h.TotalPrincipal <= approvedLimit {
		b.Volume = math.Min(h.TotalPrincipal/approvedLimit*volumeWeight, volumeWeight)
	}

	total := b.Baseline + b.OnTime + b.LoanCount + b.Activity + b.Volume
	return ScoreResult{Value: int(math.RoundToEven(total)), Breakdown: b}
}
