package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	phoneRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
	// IFSC: 4 letters, a zero, then 6 alphanumerics
	ifscRegex = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	// UPI id: localpart@handle
	upiRegex         = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,}@[a-zA-Z]{2,}$`)
	accountNumRegex  = regexp.MustCompile(`^\d{9,18}$`)
	pincodeRegex     = regexp.MustCompile(`^[1-9]\d{5}$`)
	nonAlphanumerics = regexp.MustCompile(`[^A-Z0-9]`)
)

// IsValidPhone checks an Indian mobile number
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidIFSC checks IFSC code format
func IsValidIFSC(ifsc string) bool {
	return ifscRegex.MatchString(strings.ToUpper(ifsc))
}

// IsValidUPIID checks the localpart@handle shape of a UPI id. This is the
// whole of UPI validation - no external call is made.
func IsValidUPIID(upiID string) bool {
	return upiRegex.MatchString(upiID)
}

// IsValidAccountNumber checks a bank account number (digits only)
func IsValidAccountNumber(account string) bool {
	return accountNumRegex.MatchString(account)
}

// IsValidPincode checks an Indian postal code
func IsValidPincode(pincode string) bool {
	return pincodeRegex.MatchString(pincode)
}

// Normalize uppercases a string and strips everything that is not A-Z or
// 0-9, so OCR output and stored values compare on equal footing.
func Normalize(s string) string {
	return nonAlphanumerics.ReplaceAllString(strings.ToUpper(s), "")
}
