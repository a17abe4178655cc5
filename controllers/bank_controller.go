package controllers

import (
	"errors"
	"strings"

	"loyalty-backend/config"
	"loyalty-backend/models"
	"loyalty-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddBankRequest is the payload for storing bank account details.
type AddBankRequest struct {
	AccountHolderName string `json:"account_holder_name" binding:"required"`
	BankName          string `json:"bank_name" binding:"required"`
	AccountNumber     string `json:"account_number" binding:"required"`
	IFSC              string `json:"ifsc" binding:"required"`
	ChequeImage       string `json:"cheque_image" binding:"required"` // base64
}

// AddOrUpdateBank stores or replaces the user's bank destination. Any edit
// drops the record back to PENDING - stale validations never survive a
// field change.
func AddOrUpdateBank(c *gin.Context) {
	utils.LogInfo("AddOrUpdateBank called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req AddBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	req.IFSC = strings.ToUpper(strings.TrimSpace(req.IFSC))
	var fieldErrors utils.FieldValidationErrors
	if !utils.IsValidAccountNumber(req.AccountNumber) {
		fieldErrors = append(fieldErrors, utils.FieldValidationError{Field: "account_number", Message: "must be 9-18 digits"})
	}
	if !utils.IsValidIFSC(req.IFSC) {
		fieldErrors = append(fieldErrors, utils.FieldValidationError{Field: "ifsc", Message: "invalid IFSC code format"})
	}
	if len(fieldErrors) > 0 {
		utils.ValidationError(c, "Invalid bank details", fieldErrors)
		return
	}

	updates := models.BankDetail{
		UserID:            user.ID,
		PaymentMethod:     models.PaymentMethodBank,
		AccountHolderName: req.AccountHolderName,
		BankName:          req.BankName,
		AccountNumber:     req.AccountNumber,
		IFSC:              req.IFSC,
		ChequeImage:       req.ChequeImage,
		IsValidated:       false,
		ValidationStatus:  models.ValidationStatusPending,
	}

	if err := upsertBankDetail(user.ID, func(bank *models.BankDetail) {
		bank.PaymentMethod = models.PaymentMethodBank
		bank.AccountHolderName = updates.AccountHolderName
		bank.BankName = updates.BankName
		bank.AccountNumber = updates.AccountNumber
		bank.IFSC = updates.IFSC
		bank.ChequeImage = updates.ChequeImage
		bank.IsValidated = false
		bank.ValidationStatus = models.ValidationStatusPending
	}, updates); err != nil {
		utils.LogError("Failed to save bank details for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to save bank details", nil)
		return
	}

	utils.LogInfo("Saved bank details for user ID: %d", user.ID)
	utils.Success(c, "Bank details saved successfully", gin.H{
		"validation_status": models.ValidationStatusPending,
	})
}

// AddUPIRequest is the payload for storing a UPI destination.
type AddUPIRequest struct {
	UPIID     string `json:"upi_id" binding:"required"`
	UPIQRCode string `json:"upi_qr_code"`
}

// AddOrUpdateUPI stores or replaces the user's UPI destination. UPI
// validation is a pure format check, no external call is involved.
func AddOrUpdateUPI(c *gin.Context) {
	utils.LogInfo("AddOrUpdateUPI called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req AddUPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !utils.IsValidUPIID(req.UPIID) {
		utils.ValidationError(c, "Invalid UPI ID format. Expected format: name@bank", nil)
		return
	}

	create := models.BankDetail{
		UserID:           user.ID,
		PaymentMethod:    models.PaymentMethodUPI,
		UPIID:            req.UPIID,
		UPIQRCode:        req.UPIQRCode,
		IsValidated:      true,
		ValidationStatus: models.ValidationStatusValidated,
	}

	if err := upsertBankDetail(user.ID, func(bank *models.BankDetail) {
		bank.PaymentMethod = models.PaymentMethodUPI
		bank.UPIID = create.UPIID
		bank.UPIQRCode = create.UPIQRCode
		bank.IsValidated = true
		bank.ValidationStatus = models.ValidationStatusValidated
	}, create); err != nil {
		utils.LogError("Failed to save UPI details for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to save UPI details", nil)
		return
	}

	utils.LogInfo("Saved UPI details for user ID: %d", user.ID)
	utils.Success(c, "UPI details saved successfully", gin.H{
		"validation_status": models.ValidationStatusValidated,
	})
}

// upsertBankDetail applies mutate to the existing row or creates the given
// record when the user has none yet.
func upsertBankDetail(userID uint, mutate func(*models.BankDetail), create models.BankDetail) error {
	var bank models.BankDetail
	err := config.DB.Where("user_id = ?", userID).First(&bank).Error
	if err == nil {
		mutate(&bank)
		return config.DB.Save(&bank).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return config.DB.Create(&create).Error
}

// GetBankDetails returns the stored payout destination.
func GetBankDetails(c *gin.Context) {
	utils.LogInfo("GetBankDetails called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var bank models.BankDetail
	if err := config.DB.Where("user_id = ?", user.ID).First(&bank).Error; err != nil {
		utils.NotFound(c, "Bank details not found")
		return
	}

	utils.Success(c, "Bank details retrieved successfully", gin.H{
		"user_id":             bank.UserID,
		"payment_method":      bank.PaymentMethod,
		"account_holder_name": bank.AccountHolderName,
		"bank_name":           bank.BankName,
		"account_number":      bank.AccountNumber,
		"ifsc":                bank.IFSC,
		"upi_id":              bank.UPIID,
		"is_validated":        bank.IsValidated,
		"validation_status":   bank.ValidationStatus,
	})
}
