package utils

import (
	"testing"

	"loyalty-backend/models"

	"github.com/stretchr/testify/assert"
)

var storedBankTarget = models.BankTarget{
	AccountHolderName: "John Smith",
	BankName:          "HDFC Bank",
	AccountNumber:     "123456789012",
	IFSC:              "HDFC0001234",
}

func TestValidateChequeDetailsAllMatch(t *testing.T) {
	extracted := &ChequeDetails{
		AccountHolderName: "JOHN SMITH",
		AccountNumber:     "1234 5678 9012",
		IFSC:              "hdfc0001234",
		BankName:          "HDFC Bank",
	}

	result := ValidateChequeDetails(extracted, storedBankTarget)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.ElementsMatch(t, []string{"account_holder_name", "account_number", "ifsc"}, result.MatchedFields)
}

func TestValidateChequeDetailsFuzzyName(t *testing.T) {
	// A single OCR slip in the name still validates.
	extracted := &ChequeDetails{
		AccountHolderName: "JON SMITH",
		AccountNumber:     "123456789012",
		IFSC:              "HDFC0001234",
	}

	result := ValidateChequeDetails(extracted, storedBankTarget)
	assert.True(t, result.IsValid)
	assert.Contains(t, result.MatchedFields, "account_holder_name")
}

func TestValidateChequeDetailsWrongAccount(t *testing.T) {
	extracted := &ChequeDetails{
		AccountHolderName: "JOHN SMITH",
		AccountNumber:     "999999999999",
		IFSC:              "HDFC0001234",
	}

	result := ValidateChequeDetails(extracted, storedBankTarget)
	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Account number mismatch")
}

func TestValidateChequeDetailsDistantName(t *testing.T) {
	extracted := &ChequeDetails{
		AccountHolderName: "PRIYA PATEL",
		AccountNumber:     "123456789012",
		IFSC:              "HDFC0001234",
	}

	result := ValidateChequeDetails(extracted, storedBankTarget)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors[0], "Account holder name mismatch")
}

func TestValidateChequeDetailsMissingFields(t *testing.T) {
	result := ValidateChequeDetails(&ChequeDetails{}, storedBankTarget)
	assert.False(t, result.IsValid)
	// All three comparable fields reported missing, not just the first.
	assert.Len(t, result.Errors, 3)
	assert.Empty(t, result.MatchedFields)
}
