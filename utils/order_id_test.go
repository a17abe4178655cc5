package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderIDShape(t *testing.T) {
	id := GenerateOrderID(OrderPrefixProduct)
	assert.True(t, strings.HasPrefix(id, "ORD"))
	assert.Len(t, id, 11)
	for _, ch := range id[3:] {
		assert.True(t, ch >= '0' && ch <= '9', "suffix must be digits, got %q", id)
	}
}

func TestGenerateOrderIDPrefixes(t *testing.T) {
	assert.True(t, strings.HasPrefix(GenerateOrderID(OrderPrefixCashout), "CSH"))
	assert.True(t, strings.HasPrefix(GenerateOrderID("TXN"), "TXN"))
	assert.True(t, strings.HasPrefix(GenerateOrderID("UPI"), "UPI"))
}
