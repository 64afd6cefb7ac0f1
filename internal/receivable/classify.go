package receivable

import (
	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	highRiskMinAmount   = decimal.NewFromInt(50)
	mediumRiskMinAmount = decimal.NewFromInt(100)
)

const (
	highRiskMinAge   = 90
	mediumRiskMinAge = 60
)

func ClassifyAge(days int) domain.AgeBucket {
	switch {
	case days <= 30:
		return domain.AgeBucket0To30
	case days <= 60:
		return domain.AgeBucket31To60
	case days <= 90:
		return domain.AgeBucket61To90
	default:
		return domain.AgeBucketOver90
	}
}

// ClassifyRisk evaluates the tiers in order. High needs both an old invoice
// and a meaningful amount; Medium needs either condition.
func ClassifyRisk(days int, amount decimal.Decimal) domain.RiskTier {
	if days > highRiskMinAge && amount.GreaterThan(highRiskMinAmount) {
		return domain.RiskTierHigh
	}
	if days > mediumRiskMinAge || amount.GreaterThan(mediumRiskMinAmount) {
		return domain.RiskTierMedium
	}
	return domain.RiskTierLow
}
