package receivable

import (
	"regexp"
	"strings"
)

// CleanupRule removes one kind of boilerplate from an invoice description.
type CleanupRule struct {
	Name    string
	Pattern *regexp.Regexp
}

func (r CleanupRule) Apply(text string) string {
	return r.Pattern.ReplaceAllString(text, "")
}

// ClientCleanupRules run in this order against the uppercased description.
var ClientCleanupRules = []CleanupRule{
	{Name: "favorable_balance_payment", Pattern: regexp.MustCompile(`SALDO FAV PAG D FT \d+`)},
	{Name: "invoice_tag", Pattern: regexp.MustCompile(`FT \d+`)},
	{Name: "parenthesized_aside", Pattern: regexp.MustCompile(`\(.*?\)`)},
	{Name: "card_commission", Pattern: regexp.MustCompile(`TARJ\. CREDIT COMISION`)},
	{Name: "corporate_card", Pattern: regexp.MustCompile(`CORPORACION CARD`)},
}

// ExtractClientName strips the cleanup rules from text and collapses
// whitespace. The result may be empty.
func ExtractClientName(text string) string {
	name := strings.ToUpper(text)

	for _, rule := range ClientCleanupRules {
		name = rule.Apply(name)
	}

	return strings.Join(strings.Fields(name), " ")
}
