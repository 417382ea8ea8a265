package credit

import "math"

type Reason string

const (
	ReasonDebtBurden      Reason = "debt_burden"
	ReasonExposureLimit   Reason = "exposure_limit"
	ReasonLowScore        Reason = "low_score"
	ReasonDegenerateTerms Reason = "degenerate_terms"

	ReasonPrimeTier    Reason = "prime_tier"
	ReasonStandardTier Reason = "standard_tier"
	ReasonSubprimeTier Reason = "subprime_tier"
)

const (
	maxSalaryBurden = 0.5

	standardTierRateFloor = 12.0
	subprimeTierRateFloor = 16.0
)

type Applicant struct {
	MonthlySalary float64
	ApprovedLimit float64
}

type Request struct {
	Amount float64
	Rate   float64
	Tenure int
}

type Decision struct {
	Approved           bool
	CorrectedRate      float64
	MonthlyInstallment float64
	Reason             Reason
	// Score is nil when the debt-burden guard rejected before scoring.
	Score *ScoreResult
}

// Evaluate decides a loan request. The first matching rule wins: the
// debt-burden guard, then the score tiers. Rejections keep the requested
// rate and carry a zero installment.
func Evaluate(a Applicant, h History, req Request) Decision {
	if h.ActiveInstallments > a.MonthlySalary*maxSalaryBurden {
		return reject(req, ReasonDebtBurden, nil)
	}

	score := Score(a.ApprovedLimit, h)
	if score.Rejected {
		return reject(req, ReasonExposureLimit, &score)
	}

	var (
		rate   float64
		reason Reason
	)
	switch {
	case score.Value > 50:
		rate, reason = req.Rate, ReasonPrimeTier
	case score.Value > 30:
		rate, reason = math.Max(req.Rate, standardTierRateFloor), ReasonStandardTier
	case score.Value > 10:
		rate, reason = math.Max(req.Rate, subprimeTierRateFloor), ReasonSubprimeTier
	default:
		return reject(req, ReasonLowScore, &score)
	}

	installment := MonthlyInstallment(req.Amount, rate, req.Tenure)
	if IsDegenerate(installment) {
		return reject(req, ReasonDegenerateTerms, &score)
	}

	return Decision{
		Approved:           true,
		CorrectedRate:      rate,
		MonthlyInstallment: RoundMoney(installment),
		Reason:             reason,
		Score:              &score,
	}
}

func reject(req Request, reason Reason, score *ScoreResult) Decision {
	return Decision{
		Approved:      false,
		CorrectedRate: req.Rate,
		Reason:        reason,
		Score:         score,
	}
}
