package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBrandKnownPrefix(t *testing.T) {
	assert.Equal(t, "Ghadi", ClassifyBrand("Ghadi Detergent 1kg"))
	assert.Equal(t, "Venus", ClassifyBrand("venus soap bar"))
	assert.Equal(t, "Redchief", ClassifyBrand("REDCHIEF Leather Shoes"))
}

func TestClassifyBrandLongestPrefixWins(t *testing.T) {
	// "Ghadi Machine Wash" must not file under the base "Ghadi" line.
	assert.Equal(t, "Ghadi Machine Wash", ClassifyBrand("Ghadi Machine Wash 2L"))
}

func TestClassifyBrandFallbackFirstToken(t *testing.T) {
	assert.Equal(t, "Surf", ClassifyBrand("Surf Excel Matic"))
	assert.Equal(t, "Nirma", ClassifyBrand("  Nirma Powder "))
}

func TestClassifyBrandEmpty(t *testing.T) {
	assert.Equal(t, "", ClassifyBrand(""))
	assert.Equal(t, "", ClassifyBrand("   "))
}
