package controllers

import (
	"errors"
	"fmt"

	"loyalty-backend/config"
	"loyalty-backend/models"
	"loyalty-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CompleteKYC records a submitted KYC document. Resubmitting the same
// document type replaces the stored number instead of duplicating the row.
func CompleteKYC(c *gin.Context) {
	utils.LogInfo("CompleteKYC called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		DocumentType   string `json:"document_type" binding:"required"`
		DocumentNumber string `json:"document_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var existing models.KYCDocument
	err := config.DB.Where("user_id = ? AND document_type = ?", user.ID, req.DocumentType).First(&existing).Error
	if err == nil {
		if err := config.DB.Model(&existing).Updates(map[string]interface{}{
			"document_number": req.DocumentNumber,
			"status":          models.KYCStatusCompleted,
		}).Error; err != nil {
			utils.LogError("Failed to update KYC document for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to submit document", nil)
			return
		}
		utils.LogInfo("Updated %s document for user ID: %d", req.DocumentType, user.ID)
		utils.Success(c, fmt.Sprintf("%s document submitted successfully", req.DocumentType), nil)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError("Failed to check KYC document for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to submit document", nil)
		return
	}

	doc := models.KYCDocument{
		UserID:         user.ID,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		Status:         models.KYCStatusCompleted,
	}
	if err := config.DB.Create(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Conflict(c, "This document type has already been submitted", nil)
			return
		}
		utils.LogError("Failed to create KYC document for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to submit document", nil)
		return
	}

	utils.LogInfo("Recorded %s document for user ID: %d", req.DocumentType, user.ID)
	utils.Success(c, fmt.Sprintf("%s document submitted successfully", req.DocumentType), nil)
}

// GetKYCDocuments lists every submitted document for the user.
func GetKYCDocuments(c *gin.Context) {
	utils.LogInfo("GetKYCDocuments called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var documents []models.KYCDocument
	if err := config.DB.Where("user_id = ?", user.ID).Find(&documents).Error; err != nil {
		utils.LogError("Failed to fetch KYC documents for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch documents", nil)
		return
	}

	result := make([]gin.H, 0, len(documents))
	for _, doc := range documents {
		result = append(result, gin.H{
			"document_type":   doc.DocumentType,
			"document_number": doc.DocumentNumber,
			"status":          doc.Status,
			"submitted_at":    doc.CreatedAt,
		})
	}

	utils.Success(c, "Documents retrieved successfully", result)
}

// GetMyKYC returns the aggregate KYC view used by the dashboard.
func GetMyKYC(c *gin.Context) {
	utils.LogInfo("GetMyKYC called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var documents []models.KYCDocument
	if err := config.DB.Where("user_id = ?", user.ID).Find(&documents).Error; err != nil {
		utils.LogError("Failed to fetch KYC documents for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch KYC details", nil)
		return
	}

	docs := make([]gin.H, 0, len(documents))
	for _, doc := range documents {
		docs = append(docs, gin.H{
			"type":   doc.DocumentType,
			"number": doc.DocumentNumber,
			"status": doc.Status,
		})
	}

	utils.Success(c, "KYC details retrieved successfully", gin.H{
		"user_id":             user.ID,
		"full_name":           user.FullName,
		"phone":               user.Phone,
		"kyc_status":          models.OverallKYCStatus(len(documents)),
		"documents_submitted": len(documents),
		"documents":           docs,
	})
}

// GetKYCStatus returns just the aggregate status, used as a guard by the
// bank and wallet screens.
func GetKYCStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var count int64
	if err := config.DB.Model(&models.KYCDocument{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		utils.LogError("Failed to count KYC documents for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch KYC status", nil)
		return
	}

	utils.Success(c, "KYC status retrieved successfully", gin.H{
		"kyc_status":      models.OverallKYCStatus(int(count)),
		"documents_count": count,
	})
}

// GetKYCDocument fetches one document type, reporting found=false rather
// than a 404 so the app can render an empty submission slot.
func GetKYCDocument(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	documentType := c.Param("document_type")

	var doc models.KYCDocument
	if err := config.DB.Where("user_id = ? AND document_type = ?", user.ID, documentType).First(&doc).Error; err != nil {
		utils.Success(c, fmt.Sprintf("%s not submitted yet", documentType), gin.H{"found": false})
		return
	}

	utils.Success(c, "Document retrieved successfully", gin.H{
		"found":           true,
		"document_type":   doc.DocumentType,
		"document_number": doc.DocumentNumber,
		"status":          doc.Status,
		"submitted_at":    doc.CreatedAt,
	})
}

// DeleteKYCDocument removes a submitted document.
func DeleteKYCDocument(c *gin.Context) {
	utils.LogInfo("DeleteKYCDocument called")
	user, ok := currentUser(c)
	if !ok {
		return
	}
	documentType := c.Param("document_type")

	res := config.DB.Where("user_id = ? AND document_type = ?", user.ID, documentType).Delete(&models.KYCDocument{})
	if res.Error != nil {
		utils.LogError("Failed to delete KYC document for user ID: %d: %v", user.ID, res.Error)
		utils.InternalServerError(c, "Failed to delete document", nil)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "Document not found")
		return
	}

	utils.LogInfo("Deleted %s document for user ID: %d", documentType, user.ID)
	utils.Success(c, fmt.Sprintf("%s document deleted successfully", documentType), nil)
}
