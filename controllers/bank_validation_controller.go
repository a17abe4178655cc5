package controllers

import (
	"strings"

	"loyalty-backend/config"
	"loyalty-backend/models"
	"loyalty-backend/utils"

	"github.com/gin-gonic/gin"
)

// ValidateBankAccount runs the payment-method validation state machine for
// a bank destination: OCR the stored cheque image, compare the extracted
// fields against what the user typed in, and move the record to VALIDATED
// or FAILED. UPI records validate at save time and never reach the OCR
// path. The OCR call happens entirely outside any ledger transaction.
func ValidateBankAccount(c *gin.Context) {
	utils.LogInfo("ValidateBankAccount called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var bank models.BankDetail
	if err := config.DB.Where("user_id = ?", user.ID).First(&bank).Error; err != nil {
		utils.NotFound(c, "Bank details not found")
		return
	}

	if bank.IsValidated {
		utils.LogInfo("Bank already validated for user ID: %d", user.ID)
		utils.Success(c, "Bank account already validated", gin.H{
			"is_validated":      true,
			"validation_status": bank.ValidationStatus,
		})
		return
	}

	target, err := bank.ActiveTarget()
	if err != nil {
		utils.BadRequest(c, "No payout destination on record. Please add bank details first.", nil)
		return
	}

	bankTarget, isBank := target.(models.BankTarget)
	if !isBank {
		// UPI is format-checked at save time; nothing to OCR.
		utils.BadRequest(c, "Only bank accounts require cheque validation", nil)
		return
	}

	if bank.ChequeImage == "" {
		utils.BadRequest(c, "No cheque image on record. Please re-upload your bank details.", nil)
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil || cfg.OCRAPIKey == "" {
		utils.LogError("OCR not configured for bank validation")
		utils.InternalServerError(c, "Validation service is not configured", nil)
		return
	}

	base64Image := bank.ChequeImage
	if idx := strings.Index(base64Image, ","); strings.HasPrefix(base64Image, "data:image") && idx != -1 {
		base64Image = base64Image[idx+1:]
	}

	client := utils.NewOCRClient(cfg)
	extracted, err := client.ExtractChequeDetails(base64Image)
	if err != nil {
		// OCR trouble is a validation failure, never partial ledger state.
		utils.LogError("Cheque OCR failed for user ID: %d: %v", user.ID, err)
		setValidationStatus(&bank, false, models.ValidationStatusFailed)
		utils.RespondError(c, utils.ExternalServiceError("Could not read the cheque image. Please try again.", err))
		return
	}

	result := utils.ValidateChequeDetails(extracted, bankTarget)
	if !result.IsValid {
		utils.LogError("Bank validation failed for user ID: %d: %v", user.ID, result.Errors)
		setValidationStatus(&bank, false, models.ValidationStatusFailed)
		utils.RespondError(c, utils.ValidationFailedError("Bank account validation failed", result.Errors))
		return
	}

	setValidationStatus(&bank, true, models.ValidationStatusValidated)
	utils.LogInfo("Bank account validated for user ID: %d", user.ID)
	utils.Success(c, "Bank account validated successfully", gin.H{
		"is_validated":      true,
		"validation_status": models.ValidationStatusValidated,
		"matched_fields":    result.MatchedFields,
	})
}

func setValidationStatus(bank *models.BankDetail, validated bool, status string) {
	if err := config.DB.Model(bank).Updates(map[string]interface{}{
		"is_validated":      validated,
		"validation_status": status,
	}).Error; err != nil {
		utils.LogError("Failed to update validation status for user ID: %d: %v", bank.UserID, err)
	}
}
