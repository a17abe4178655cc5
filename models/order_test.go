package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionLabel(t *testing.T) {
	cases := []struct {
		txType string
		label  string
	}{
		{TransactionTypeProduct, "Product Redemption"},
		{TransactionTypeCashout, "Points Redemption"},
		{TransactionTypeBankTransfer, "Bank Transfer"},
		{TransactionTypeUPITransfer, "UPI Transfer"},
		{"", "Product Redemption"}, // legacy rows default to product
	}
	for _, tc := range cases {
		order := Order{TransactionType: tc.txType}
		assert.Equal(t, tc.label, order.TransactionLabel())
	}
}

func TestCartItemLineTotal(t *testing.T) {
	item := CartItem{Points: 50, Quantity: 3}
	assert.Equal(t, 150, item.LineTotal())
}
