package monitoring

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordEligibilityDecision(t *testing.T) {
	Business.EligibilityDecisions.Reset()

	RecordEligibilityDecision(true, "prime_tier")
	RecordEligibilityDecision(false, "debt_burden")
	RecordEligibilityDecision(false, "debt_burden")

	expected := `
		# HELP credit_approval_eligibility_decisions_total Total number of eligibility decisions by outcome and reason.
		# TYPE credit_approval_eligibility_decisions_total counter
		credit_approval_eligibility_decisions_total{approved="false",reason="debt_burden"} 2
		credit_approval_eligibility_decisions_total{approved="true",reason="prime_tier"} 1
	`
	if err := testutil.CollectAndCompare(Business.EligibilityDecisions, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics for eligibility decisions: %v", err)
	}
}

func TestRecordIngestRows(t *testing.T) {
	Business.IngestRows.Reset()

	RecordIngestRows("loan", "inserted", 3)
	RecordIngestRows("loan", "skipped", 0)

	assert.Equal(t, 3.0, testutil.ToFloat64(Business.IngestRows.WithLabelValues("loan", "inserted")))
	assert.Equal(t, 1, testutil.CollectAndCount(Business.IngestRows))
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(Business.LoansIssued)
	RecordLoanIssued()
	assert.Equal(t, before+1, testutil.ToFloat64(Business.LoansIssued))

	before = testutil.ToFloat64(Business.CustomersRegistered)
	RecordCustomerRegistered()
	assert.Equal(t, before+1, testutil.ToFloat64(Business.CustomersRegistered))
}

func TestRecordDBQuery(t *testing.T) {
	DB.QueryDuration.Reset()

	RecordDBQuery("find_customer", "success", 5*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(DB.QueryDuration))
}
