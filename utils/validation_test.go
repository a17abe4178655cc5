package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("9876543210"))
	assert.True(t, IsValidPhone("6000000000"))
	assert.False(t, IsValidPhone("1234567890")) // must start 6-9
	assert.False(t, IsValidPhone("98765432"))   // too short
	assert.False(t, IsValidPhone("98765432101"))
	assert.False(t, IsValidPhone("+919876543210"))
}

func TestIsValidIFSC(t *testing.T) {
	assert.True(t, IsValidIFSC("HDFC0001234"))
	assert.True(t, IsValidIFSC("sbin0005943")) // case insensitive
	assert.False(t, IsValidIFSC("HDFC1001234")) // fifth char must be 0
	assert.False(t, IsValidIFSC("HDFC000123"))
	assert.False(t, IsValidIFSC(""))
}

func TestIsValidUPIID(t *testing.T) {
	assert.True(t, IsValidUPIID("john.smith@okaxis"))
	assert.True(t, IsValidUPIID("user_1-a@ybl"))
	assert.False(t, IsValidUPIID("a@ybl"))      // local part too short
	assert.False(t, IsValidUPIID("john@"))      // missing handle
	assert.False(t, IsValidUPIID("johnokaxis")) // no separator
	assert.False(t, IsValidUPIID("john@12ab"))  // handle must be letters
}

func TestIsValidAccountNumber(t *testing.T) {
	assert.True(t, IsValidAccountNumber("123456789"))
	assert.True(t, IsValidAccountNumber("123456789012345678"))
	assert.False(t, IsValidAccountNumber("12345678"))            // 8 digits
	assert.False(t, IsValidAccountNumber("1234567890123456789")) // 19 digits
	assert.False(t, IsValidAccountNumber("12345678AB"))
}

func TestIsValidPincode(t *testing.T) {
	assert.True(t, IsValidPincode("110001"))
	assert.False(t, IsValidPincode("010001")) // no leading zero
	assert.False(t, IsValidPincode("11000"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "JOHNSMITH", Normalize("John Smith"))
	assert.Equal(t, "HDFC0001234", Normalize(" hdfc-0001234 "))
	assert.Equal(t, "1234567890", Normalize("1234 5678 90"))
	assert.Equal(t, "", Normalize("  --  "))
}

func TestFieldValidationErrorsMessage(t *testing.T) {
	errs := FieldValidationErrors{
		{Field: "ifsc", Message: "Invalid IFSC code"},
		{Field: "account_number", Message: "Must be 9-18 digits"},
	}
	assert.Equal(t, "ifsc: Invalid IFSC code; account_number: Must be 9-18 digits", errs.Error())
}
