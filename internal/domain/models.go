package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AgeBucket string

const (
	AgeBucket0To30  AgeBucket = "0-30"
	AgeBucket31To60 AgeBucket = "31-60"
	AgeBucket61To90 AgeBucket = "61-90"
	AgeBucketOver90 AgeBucket = ">90"
)

// AgeBuckets lists the buckets in ascending age order.
var AgeBuckets = []AgeBucket{AgeBucket0To30, AgeBucket31To60, AgeBucket61To90, AgeBucketOver90}

func (b AgeBucket) Valid() bool {
	for _, known := range AgeBuckets {
		if b == known {
			return true
		}
	}
	return false
}

type RiskTier string

const (
	RiskTierHigh   RiskTier = "High"
	RiskTierMedium RiskTier = "Medium"
	RiskTierLow    RiskTier = "Low"
)

var RiskTiers = []RiskTier{RiskTierHigh, RiskTierMedium, RiskTierLow}

func (t RiskTier) Valid() bool {
	return t == RiskTierHigh || t == RiskTierMedium || t == RiskTierLow
}

// SelectorAll disables an age-bucket or risk-tier filter.
const SelectorAll = "All"

type Invoice struct {
	LineNumber   int             `json:"line_number"`
	DocumentDate time.Time       `json:"document_date"`
	Text         string          `json:"text"`
	ClientName   string          `json:"client_name"`
	Amount       decimal.Decimal `json:"amount"`
	AgeDays      int             `json:"age_days"`
	AgeBucket    AgeBucket       `json:"age_bucket"`
	RiskTier     RiskTier        `json:"risk_tier"`
}

type DropReason string

const (
	DropReasonShortRow          DropReason = "short_row"
	DropReasonEmptyAmount       DropReason = "empty_amount"
	DropReasonInvalidAmount     DropReason = "invalid_amount"
	DropReasonNonPositiveAmount DropReason = "non_positive_amount"
	DropReasonInvalidDate       DropReason = "invalid_date"
)

type LoadReport struct {
	RowsRead       int                `json:"rows_read"`
	InvoicesLoaded int                `json:"invoices_loaded"`
	RowsDropped    int                `json:"rows_dropped"`
	DropReasons    map[DropReason]int `json:"drop_reasons"`
}

func NewLoadReport() LoadReport {
	return LoadReport{DropReasons: make(map[DropReason]int)}
}

func (r *LoadReport) Drop(reason DropReason) {
	if r.DropReasons == nil {
		r.DropReasons = make(map[DropReason]int)
	}
	r.RowsDropped++
	r.DropReasons[reason]++
}

// Dataset is the result of loading one file. It is never mutated after the
// load completes; readers get copies of Invoices.
type Dataset struct {
	Hash          string     `json:"hash"`
	ReferenceDate time.Time  `json:"reference_date"`
	Invoices      []Invoice  `json:"-"`
	Report        LoadReport `json:"report"`
	LoadedAt      time.Time  `json:"loaded_at"`
}

// CacheKey identifies a parsed dataset: the same bytes loaded on a different
// reference date produce different ages, so both are part of the key.
func CacheKey(hash string, referenceDate time.Time) string {
	return hash + "@" + referenceDate.Format("2006-01-02")
}

func (d *Dataset) CacheKey() string {
	return CacheKey(d.Hash, d.ReferenceDate)
}

type Session struct {
	ID          string    `json:"id"`
	DatasetHash string    `json:"dataset_hash"`
	CreatedAt   time.Time `json:"created_at"`
	LastAccess  time.Time `json:"last_access"`
}

type UploadResult struct {
	SessionID string     `json:"session_id"`
	Hash      string     `json:"dataset_hash"`
	Cached    bool       `json:"cached"`
	Report    LoadReport `json:"report"`
}

type TrendPeriod string

const (
	TrendPeriodMonth   TrendPeriod = "month"
	TrendPeriodQuarter TrendPeriod = "quarter"
)

type Metrics struct {
	InvoiceCount  int             `json:"invoice_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	UniqueClients int             `json:"unique_clients"`
	MeanAmount    decimal.Decimal `json:"mean_amount"`
	MedianAmount  decimal.Decimal `json:"median_amount"`
	MaxAmount     decimal.Decimal `json:"max_amount"`
	MinAmount     decimal.Decimal `json:"min_amount"`
	MeanAgeDays   float64         `json:"mean_age_days"`
}

type BucketSummary struct {
	Bucket  AgeBucket       `json:"bucket"`
	Amount  decimal.Decimal `json:"amount"`
	Count   int             `json:"count"`
	Mean    decimal.Decimal `json:"mean"`
	Percent float64         `json:"percent"`
}

type TierSummary struct {
	Tier   RiskTier        `json:"tier"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

type ClientTotal struct {
	Client  string          `json:"client"`
	Amount  decimal.Decimal `json:"amount"`
	Count   int             `json:"count"`
	Percent float64         `json:"percent"`
}

type PeriodSummary struct {
	Period string          `json:"period"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
	Mean   decimal.Decimal `json:"mean"`
}

type Alerts struct {
	CriticalCount  int             `json:"critical_count"`
	CriticalAmount decimal.Decimal `json:"critical_amount"`
}

type Dashboard struct {
	Metrics    Metrics         `json:"metrics"`
	Aging      []BucketSummary `json:"aging"`
	Risk       []TierSummary   `json:"risk"`
	TopClients []ClientTotal   `json:"top_clients"`
	Alerts     Alerts          `json:"alerts"`
}
