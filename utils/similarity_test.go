package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdentical(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("JOHN SMITH", "JOHN SMITH"))
	assert.Equal(t, 1.0, Similarity("A", "A"))
}

func TestSimilarityEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "JOHN"))
	assert.Equal(t, 0.0, Similarity("JOHN", ""))
	assert.Equal(t, 0.0, Similarity("", ""))
}

func TestSimilarityCloseNames(t *testing.T) {
	// One dropped letter on a ten character name still clears the
	// validation threshold.
	sim := Similarity("JONSMITH", "JOHNSMITH")
	assert.GreaterOrEqual(t, sim, NameSimilarityThreshold)

	sim = Similarity("RAJESH KUMAR", "RAJESH KUMARR")
	assert.GreaterOrEqual(t, sim, NameSimilarityThreshold)
}

func TestSimilarityDistantNames(t *testing.T) {
	sim := Similarity("JOHN SMITH", "PRIYA PATEL")
	assert.Less(t, sim, NameSimilarityThreshold)
}

func TestSimilaritySymmetric(t *testing.T) {
	a := Similarity("KITTEN", "SITTING")
	b := Similarity("SITTING", "KITTEN")
	assert.Equal(t, a, b)
}

func TestLevenshteinKnownDistance(t *testing.T) {
	// kitten -> sitting is the textbook distance-3 pair.
	assert.Equal(t, 3, levenshtein("KITTEN", "SITTING"))
	assert.Equal(t, 1, levenshtein("ABC", "ABD"))
	assert.Equal(t, 3, levenshtein("", "ABC"))
}
