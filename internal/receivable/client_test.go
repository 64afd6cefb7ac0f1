package receivable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractClientName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"invoice tag", "CLIENTE A FT 100", "CLIENTE A"},
		{"favorable balance", "SALDO FAV PAG D FT 200 CLIENTE B", "CLIENTE B"},
		{"aside", "FARMACIA CENTRAL (SUCURSAL 3)", "FARMACIA CENTRAL"},
		{"card commission", "TARJ. CREDIT COMISION BANCO UNO", "BANCO UNO"},
		{"corporate card", "CORPORACION CARD  HOTEL SOL", "HOTEL SOL"},
		{"lowercase input", "cliente   d ft 55", "CLIENTE D"},
		{"only boilerplate", "FT 123 (NOTA)", ""},
		{"empty", "", ""},
		{"several asides", "A (X) B (Y) C", "A B C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractClientName(tt.in))
		})
	}
}

func TestClientCleanupRules_Individually(t *testing.T) {
	want := map[string]struct{ in, out string }{
		"favorable_balance_payment": {"X SALDO FAV PAG D FT 42 Y", "X  Y"},
		"invoice_tag":               {"X FT 42 Y", "X  Y"},
		"parenthesized_aside":       {"X (A) Y (B)", "X  Y "},
		"card_commission":           {"TARJ. CREDIT COMISION Y", " Y"},
		"corporate_card":            {"X CORPORACION CARD", "X "},
	}

	assert.Len(t, ClientCleanupRules, len(want))
	for _, rule := range ClientCleanupRules {
		tc, ok := want[rule.Name]
		if assert.True(t, ok, rule.Name) {
			assert.Equal(t, tc.out, rule.Apply(tc.in), rule.Name)
		}
	}
}

func TestClientCleanupRules_Order(t *testing.T) {
	// The favorable-balance marker contains an invoice tag, so it must run first.
	assert.Equal(t, "favorable_balance_payment", ClientCleanupRules[0].Name)
	assert.Equal(t, "invoice_tag", ClientCleanupRules[1].Name)
}
