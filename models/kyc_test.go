package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverallKYCStatus(t *testing.T) {
	assert.Equal(t, KYCStatusPending, OverallKYCStatus(0))
	assert.Equal(t, KYCStatusPartial, OverallKYCStatus(1))
	assert.Equal(t, KYCStatusPartial, OverallKYCStatus(2))
	assert.Equal(t, KYCStatusCompleted, OverallKYCStatus(3))
	assert.Equal(t, KYCStatusCompleted, OverallKYCStatus(4))
}
