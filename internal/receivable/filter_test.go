package receivable

import (
	"testing"
	"time"

	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_ZeroValueMatchesAll(t *testing.T) {
	invoices := sampleInvoices()
	assert.Equal(t, invoices, Filter{}.Apply(invoices))
	assert.Equal(t, invoices, Filter{AgeBucket: "All", RiskTier: "All"}.Apply(invoices))
}

func TestFilter_Constraints(t *testing.T) {
	invoices := sampleInvoices()
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 18, 0, 0, 0, 0, time.UTC)
	minAmount := decimal.NewFromInt(50)
	maxAmount := decimal.NewFromInt(60)

	tests := []struct {
		name    string
		filter  Filter
		clients []string
	}{
		{"date range inclusive", Filter{DateFrom: &from, DateTo: &to}, []string{"CLIENTE B", "CLIENTE A"}},
		{"amount range inclusive", Filter{MinAmount: &minAmount, MaxAmount: &maxAmount}, []string{"CLIENTE B", "CLIENTE C"}},
		{"age bucket", Filter{AgeBucket: ">90"}, []string{"CLIENTE C", "CLIENTE D"}},
		{"risk tier", Filter{RiskTier: "Medium"}, []string{"CLIENTE A", "CLIENTE D"}},
		{"client contains, any case", Filter{Client: "te a"}, []string{"CLIENTE A", "CLIENTE A"}},
		{"conjunctive", Filter{Client: "cliente", AgeBucket: ">90", RiskTier: "High"}, []string{"CLIENTE C"}},
		{"no match", Filter{Client: "nobody"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(invoices)
			clients := make([]string, 0, len(got))
			for _, inv := range got {
				clients = append(clients, inv.ClientName)
			}
			assert.Equal(t, tt.clients, clients)
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	invoices := sampleInvoices()
	minAmount := decimal.NewFromInt(20)
	f := Filter{MinAmount: &minAmount, Client: "cliente", RiskTier: "Medium"}

	once := f.Apply(invoices)
	twice := f.Apply(once)

	assert.Equal(t, once, twice)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	invoices := sampleInvoices()
	before := make([]domain.Invoice, len(invoices))
	copy(before, invoices)

	out := Filter{RiskTier: "High"}.Apply(invoices)
	require.Len(t, out, 1)
	out[0].ClientName = "CHANGED"

	assert.Equal(t, before, invoices)
}

func TestFilter_EmptyResultAggregatesToZero(t *testing.T) {
	out := Filter{Client: "nobody"}.Apply(sampleInvoices())

	assert.NotNil(t, out)
	assert.Equal(t, 0, ComputeMetrics(out).InvoiceCount)
	assert.Empty(t, TopClients(out, 10))
}

func TestFilter_Validate(t *testing.T) {
	low := decimal.NewFromInt(1)
	high := decimal.NewFromInt(10)
	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, Filter{}.Validate())
	assert.NoError(t, Filter{AgeBucket: "31-60", RiskTier: "Low", MinAmount: &low, MaxAmount: &high}.Validate())

	assert.ErrorIs(t, Filter{AgeBucket: "90+"}.Validate(), domain.ErrInvalidFilter)
	assert.ErrorIs(t, Filter{RiskTier: "Critical"}.Validate(), domain.ErrInvalidFilter)
	assert.ErrorIs(t, Filter{MinAmount: &high, MaxAmount: &low}.Validate(), domain.ErrInvalidFilter)
	assert.ErrorIs(t, Filter{DateFrom: &late, DateTo: &early}.Validate(), domain.ErrInvalidFilter)
}
