package utils

import (
	"fmt"

	"loyalty-backend/models"
)

// NameSimilarityThreshold is the minimum Levenshtein similarity between the
// stored account holder name and the one read off the cheque. Exact-match
// would reject routine OCR slips on long names.
const NameSimilarityThreshold = 0.75

// ChequeValidationResult itemizes how extracted cheque fields compared
// against the stored bank details.
type ChequeValidationResult struct {
	IsValid       bool     `json:"is_valid"`
	MatchedFields []string `json:"matched_fields"`
	Errors        []string `json:"errors"`
}

// ValidateChequeDetails compares OCR output against the stored bank target.
// Account number and IFSC must match exactly after normalization; the
// holder name may differ up to the similarity threshold. Every mismatch or
// missing field is reported, not just the first.
func ValidateChequeDetails(extracted *ChequeDetails, stored models.BankTarget) ChequeValidationResult {
	var result ChequeValidationResult

	extractedName := Normalize(extracted.AccountHolderName)
	storedName := Normalize(stored.AccountHolderName)
	if extractedName == "" {
		result.Errors = append(result.Errors, "Account holder name not found in cheque image")
	} else if sim := Similarity(extractedName, storedName); sim >= NameSimilarityThreshold {
		result.MatchedFields = append(result.MatchedFields, "account_holder_name")
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"Account holder name mismatch. Expected: %s, Found in cheque: %s, Similarity: %d%%",
			stored.AccountHolderName, extracted.AccountHolderName, int(sim*100)))
	}

	extractedAccount := Normalize(extracted.AccountNumber)
	storedAccount := Normalize(stored.AccountNumber)
	if extractedAccount == "" {
		result.Errors = append(result.Errors, "Account number not found in cheque image")
	} else if extractedAccount != storedAccount {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"Account number mismatch. Expected: %s, Found in cheque: %s",
			stored.AccountNumber, extracted.AccountNumber))
	} else {
		result.MatchedFields = append(result.MatchedFields, "account_number")
	}

	extractedIFSC := Normalize(extracted.IFSC)
	storedIFSC := Normalize(stored.IFSC)
	if extractedIFSC == "" {
		result.Errors = append(result.Errors, "IFSC code not found in cheque image")
	} else if extractedIFSC != storedIFSC {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"IFSC code mismatch. Expected: %s, Found in cheque: %s",
			stored.IFSC, extracted.IFSC))
	} else {
		result.MatchedFields = append(result.MatchedFields, "ifsc")
	}

	result.IsValid = len(result.Errors) == 0
	return result
}
