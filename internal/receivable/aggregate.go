package receivable

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/shopspring/decimal"
)

const DefaultTopClients = 10

var hundred = decimal.NewFromInt(100)

func Total(invoices []domain.Invoice) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		total = total.Add(inv.Amount)
	}
	return total
}

func ComputeMetrics(invoices []domain.Invoice) domain.Metrics {
	metrics := domain.Metrics{
		TotalAmount:  decimal.Zero,
		MeanAmount:   decimal.Zero,
		MedianAmount: decimal.Zero,
		MaxAmount:    decimal.Zero,
		MinAmount:    decimal.Zero,
	}
	if len(invoices) == 0 {
		return metrics
	}

	clients := make(map[string]struct{})
	amounts := make([]decimal.Decimal, 0, len(invoices))
	ageSum := 0

	for _, inv := range invoices {
		clients[inv.ClientName] = struct{}{}
		amounts = append(amounts, inv.Amount)
		ageSum += inv.AgeDays
	}

	slices.SortFunc(amounts, func(a, b decimal.Decimal) int { return a.Cmp(b) })

	total := decimal.Sum(amounts[0], amounts[1:]...)
	n := len(amounts)

	metrics.InvoiceCount = n
	metrics.TotalAmount = total
	metrics.UniqueClients = len(clients)
	metrics.MeanAmount = mean(total, n)
	metrics.MinAmount = amounts[0]
	metrics.MaxAmount = amounts[n-1]
	metrics.MeanAgeDays = math.Round(float64(ageSum)/float64(n)*10) / 10

	if n%2 == 1 {
		metrics.MedianAmount = amounts[n/2]
	} else {
		metrics.MedianAmount = amounts[n/2-1].Add(amounts[n/2]).Div(decimal.NewFromInt(2))
	}

	return metrics
}

// ByAgeBucket reports every bucket, in age order, including empty ones.
func ByAgeBucket(invoices []domain.Invoice) []domain.BucketSummary {
	index := make(map[domain.AgeBucket]int, len(domain.AgeBuckets))
	rows := make([]domain.BucketSummary, len(domain.AgeBuckets))
	for i, bucket := range domain.AgeBuckets {
		index[bucket] = i
		rows[i] = domain.BucketSummary{Bucket: bucket, Amount: decimal.Zero, Mean: decimal.Zero}
	}

	total := decimal.Zero
	for _, inv := range invoices {
		row := &rows[index[inv.AgeBucket]]
		row.Amount = row.Amount.Add(inv.Amount)
		row.Count++
		total = total.Add(inv.Amount)
	}

	for i := range rows {
		rows[i].Mean = mean(rows[i].Amount, rows[i].Count)
		rows[i].Percent = percent(rows[i].Amount, total)
	}

	return rows
}

// RiskSummary holds one row per tier in High, Medium, Low order.
type RiskSummary []domain.TierSummary

// Amount returns the tier's sum, or zero for a tier that is not present.
func (s RiskSummary) Amount(tier domain.RiskTier) decimal.Decimal {
	for _, row := range s {
		if row.Tier == tier {
			return row.Amount
		}
	}
	return decimal.Zero
}

func ByRiskTier(invoices []domain.Invoice) RiskSummary {
	rows := make(RiskSummary, len(domain.RiskTiers))
	index := make(map[domain.RiskTier]int, len(domain.RiskTiers))
	for i, tier := range domain.RiskTiers {
		index[tier] = i
		rows[i] = domain.TierSummary{Tier: tier, Amount: decimal.Zero}
	}

	for _, inv := range invoices {
		row := &rows[index[inv.RiskTier]]
		row.Amount = row.Amount.Add(inv.Amount)
		row.Count++
	}

	return rows
}

// ByClient sums amounts per client, largest first. Equal sums keep the
// alphabetical grouping order.
func ByClient(invoices []domain.Invoice) []domain.ClientTotal {
	groups := make(map[string]*domain.ClientTotal)
	total := decimal.Zero

	for _, inv := range invoices {
		group, ok := groups[inv.ClientName]
		if !ok {
			group = &domain.ClientTotal{Client: inv.ClientName, Amount: decimal.Zero}
			groups[inv.ClientName] = group
		}
		group.Amount = group.Amount.Add(inv.Amount)
		group.Count++
		total = total.Add(inv.Amount)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)

	rows := make([]domain.ClientTotal, 0, len(names))
	for _, name := range names {
		row := *groups[name]
		row.Percent = percent(row.Amount, total)
		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(a, b domain.ClientTotal) int {
		return b.Amount.Cmp(a.Amount)
	})

	return rows
}

// TopClients returns at most n clients from the ByClient ranking. Shares are
// relative to the whole collection, not to the top n.
func TopClients(invoices []domain.Invoice, n int) []domain.ClientTotal {
	if n <= 0 {
		n = DefaultTopClients
	}

	rows := ByClient(invoices)
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

func HighRiskClients(invoices []domain.Invoice) []domain.ClientTotal {
	high := Filter{RiskTier: string(domain.RiskTierHigh)}.Apply(invoices)
	return ByClient(high)
}

func ByMonth(invoices []domain.Invoice) []domain.PeriodSummary {
	return byPeriod(invoices, func(inv domain.Invoice) string {
		return fmt.Sprintf("%04d-%02d", inv.DocumentDate.Year(), int(inv.DocumentDate.Month()))
	})
}

func ByQuarter(invoices []domain.Invoice) []domain.PeriodSummary {
	return byPeriod(invoices, func(inv domain.Invoice) string {
		quarter := (int(inv.DocumentDate.Month())-1)/3 + 1
		return fmt.Sprintf("%04d-Q%d", inv.DocumentDate.Year(), quarter)
	})
}

// byPeriod groups by a sortable period key; keys sort chronologically.
func byPeriod(invoices []domain.Invoice, key func(domain.Invoice) string) []domain.PeriodSummary {
	groups := make(map[string]*domain.PeriodSummary)

	for _, inv := range invoices {
		k := key(inv)
		group, ok := groups[k]
		if !ok {
			group = &domain.PeriodSummary{Period: k, Amount: decimal.Zero}
			groups[k] = group
		}
		group.Amount = group.Amount.Add(inv.Amount)
		group.Count++
	}

	rows := make([]domain.PeriodSummary, 0, len(groups))
	for _, group := range groups {
		group.Mean = mean(group.Amount, group.Count)
		rows = append(rows, *group)
	}

	slices.SortFunc(rows, func(a, b domain.PeriodSummary) int {
		return strings.Compare(a.Period, b.Period)
	})

	return rows
}

// CriticalAlerts counts invoices older than 90 days.
func CriticalAlerts(invoices []domain.Invoice) domain.Alerts {
	alerts := domain.Alerts{CriticalAmount: decimal.Zero}
	for _, inv := range invoices {
		if inv.AgeDays > highRiskMinAge {
			alerts.CriticalCount++
			alerts.CriticalAmount = alerts.CriticalAmount.Add(inv.Amount)
		}
	}
	return alerts
}

func BuildDashboard(invoices []domain.Invoice, topN int) domain.Dashboard {
	return domain.Dashboard{
		Metrics:    ComputeMetrics(invoices),
		Aging:      ByAgeBucket(invoices),
		Risk:       ByRiskTier(invoices),
		TopClients: TopClients(invoices, topN),
		Alerts:     CriticalAlerts(invoices),
	}
}

func mean(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// percent is part/total*100 rounded to one decimal place; 0 when total is 0.
func percent(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return part.Div(total).Mul(hundred).Round(1).InexactFloat64()
}
