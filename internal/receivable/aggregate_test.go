package receivable

import (
	"testing"
	"time"

	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoice(client, amount string, age int, date time.Time) domain.Invoice {
	a := decimal.RequireFromString(amount)
	return domain.Invoice{
		DocumentDate: date,
		ClientName:   client,
		Amount:       a,
		AgeDays:      age,
		AgeBucket:    ClassifyAge(age),
		RiskTier:     ClassifyRisk(age, a),
	}
}

func sampleInvoices() []domain.Invoice {
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 18, 0, 0, 0, 0, time.UTC)
	apr := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	return []domain.Invoice{
		invoice("CLIENTE A", "27.30", 10, apr),
		invoice("CLIENTE B", "53.44", 45, feb),
		invoice("CLIENTE A", "120.00", 75, feb),
		invoice("CLIENTE C", "60.00", 120, jan),
		invoice("CLIENTE D", "10.00", 95, jan),
	}
}

func TestComputeMetrics(t *testing.T) {
	m := ComputeMetrics(sampleInvoices())

	assert.Equal(t, 5, m.InvoiceCount)
	assert.Equal(t, "270.74", m.TotalAmount.StringFixed(2))
	assert.Equal(t, 4, m.UniqueClients)
	assert.Equal(t, "54.15", m.MeanAmount.StringFixed(2))
	assert.Equal(t, "53.44", m.MedianAmount.StringFixed(2))
	assert.Equal(t, "120.00", m.MaxAmount.StringFixed(2))
	assert.Equal(t, "10.00", m.MinAmount.StringFixed(2))
	assert.Equal(t, 69.0, m.MeanAgeDays)
}

func TestComputeMetrics_EvenMedian(t *testing.T) {
	d := time.Now()
	m := ComputeMetrics([]domain.Invoice{
		invoice("A", "10", 1, d),
		invoice("B", "20", 1, d),
		invoice("C", "40", 1, d),
		invoice("D", "30", 1, d),
	})
	assert.Equal(t, "25", m.MedianAmount.String())
}

func TestComputeMetrics_Empty(t *testing.T) {
	m := ComputeMetrics(nil)

	assert.Equal(t, 0, m.InvoiceCount)
	assert.True(t, m.TotalAmount.IsZero())
	assert.True(t, m.MeanAmount.IsZero())
	assert.True(t, m.MedianAmount.IsZero())
	assert.Equal(t, 0.0, m.MeanAgeDays)
}

func TestByAgeBucket(t *testing.T) {
	rows := ByAgeBucket(sampleInvoices())
	require.Len(t, rows, 4)

	assert.Equal(t, domain.AgeBucket0To30, rows[0].Bucket)
	assert.Equal(t, 1, rows[0].Count)
	assert.Equal(t, "27.3", rows[0].Amount.String())
	assert.Equal(t, 10.1, rows[0].Percent)

	assert.Equal(t, domain.AgeBucket61To90, rows[2].Bucket)
	assert.Equal(t, "120", rows[2].Amount.String())

	assert.Equal(t, domain.AgeBucketOver90, rows[3].Bucket)
	assert.Equal(t, 2, rows[3].Count)
	assert.Equal(t, "35", rows[3].Mean.String())
}

func TestByAgeBucket_SumsToTotal(t *testing.T) {
	invoices := sampleInvoices()

	sum := decimal.Zero
	count := 0
	for _, row := range ByAgeBucket(invoices) {
		sum = sum.Add(row.Amount)
		count += row.Count
	}

	assert.True(t, sum.Equal(Total(invoices)))
	assert.Equal(t, len(invoices), count)
}

func TestByAgeBucket_Empty(t *testing.T) {
	rows := ByAgeBucket(nil)
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.True(t, row.Amount.IsZero())
		assert.Equal(t, 0.0, row.Percent)
	}
}

func TestByRiskTier(t *testing.T) {
	summary := ByRiskTier(sampleInvoices())
	require.Len(t, summary, 3)

	assert.Equal(t, "60", summary.Amount(domain.RiskTierHigh).String())
	assert.Equal(t, "130", summary.Amount(domain.RiskTierMedium).String())
	assert.Equal(t, "80.74", summary.Amount(domain.RiskTierLow).String())
	assert.Equal(t, 2, summary[2].Count)
}

func TestByRiskTier_MissingTierIsZero(t *testing.T) {
	summary := ByRiskTier([]domain.Invoice{invoice("A", "5", 1, time.Now())})

	assert.True(t, summary.Amount(domain.RiskTierHigh).IsZero())
	assert.True(t, RiskSummary(nil).Amount(domain.RiskTierMedium).IsZero())
}

func TestByClient_SortedDescending(t *testing.T) {
	rows := ByClient(sampleInvoices())
	require.Len(t, rows, 4)

	assert.Equal(t, "CLIENTE A", rows[0].Client)
	assert.Equal(t, "147.3", rows[0].Amount.String())
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, 54.4, rows[0].Percent)

	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Amount.GreaterThan(rows[i-1].Amount))
	}
}

func TestByClient_TiesKeepNameOrder(t *testing.T) {
	d := time.Now()
	rows := ByClient([]domain.Invoice{
		invoice("ZETA", "10", 1, d),
		invoice("ALFA", "10", 1, d),
		invoice("MEDIO", "10", 1, d),
	})

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ALFA", "MEDIO", "ZETA"}, []string{rows[0].Client, rows[1].Client, rows[2].Client})
}

func TestTopClients(t *testing.T) {
	invoices := sampleInvoices()

	top := TopClients(invoices, 2)
	require.Len(t, top, 2)
	assert.Equal(t, ByClient(invoices)[:2], top)

	assert.Len(t, TopClients(invoices, 50), 4)
	assert.Len(t, TopClients(invoices, 0), 4)
	assert.Empty(t, TopClients(nil, 10))
}

func TestHighRiskClients(t *testing.T) {
	rows := HighRiskClients(sampleInvoices())
	require.Len(t, rows, 1)
	assert.Equal(t, "CLIENTE C", rows[0].Client)
	assert.Equal(t, 100.0, rows[0].Percent)
}

func TestByMonthAndQuarter(t *testing.T) {
	months := ByMonth(sampleInvoices())
	require.Len(t, months, 3)
	assert.Equal(t, "2025-01", months[0].Period)
	assert.Equal(t, 2, months[0].Count)
	assert.Equal(t, "35", months[0].Mean.String())
	assert.Equal(t, "2025-02", months[1].Period)
	assert.Equal(t, "173.44", months[1].Amount.String())
	assert.Equal(t, "2025-04", months[2].Period)

	quarters := ByQuarter(sampleInvoices())
	require.Len(t, quarters, 2)
	assert.Equal(t, "2025-Q1", quarters[0].Period)
	assert.Equal(t, 4, quarters[0].Count)
	assert.Equal(t, "2025-Q2", quarters[1].Period)
}

func TestCriticalAlerts(t *testing.T) {
	alerts := CriticalAlerts(sampleInvoices())
	assert.Equal(t, 2, alerts.CriticalCount)
	assert.Equal(t, "70", alerts.CriticalAmount.String())
}

func TestBuildDashboard_Empty(t *testing.T) {
	dash := BuildDashboard([]domain.Invoice{}, 10)

	assert.Equal(t, 0, dash.Metrics.InvoiceCount)
	assert.Len(t, dash.Aging, 4)
	assert.Len(t, dash.Risk, 3)
	assert.Empty(t, dash.TopClients)
	assert.Equal(t, 0, dash.Alerts.CriticalCount)
}
