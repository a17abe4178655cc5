package controllers

import (
	"encoding/base64"
	"io"

	"loyalty-backend/config"
	"loyalty-backend/utils"

	"github.com/gin-gonic/gin"
)

// maxDocumentUploadBytes caps KYC uploads at 10 MB.
const maxDocumentUploadBytes = 10 << 20

// ExtractDocumentNumber runs OCR over an uploaded KYC document image and
// returns the detected document number. Pure extraction: nothing is
// persisted here, the client submits the number separately via CompleteKYC.
func ExtractDocumentNumber(c *gin.Context) {
	utils.LogInfo("ExtractDocumentNumber called")
	if _, ok := currentUser(c); !ok {
		return
	}

	documentType := c.PostForm("document_type")
	if documentType == "" {
		utils.BadRequest(c, "document_type is required", nil)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "File upload is required", err.Error())
		return
	}
	if fileHeader.Size > maxDocumentUploadBytes {
		utils.BadRequest(c, "File too large. Maximum size is 10MB", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		utils.BadRequest(c, "Unsupported file type. Upload JPG or PNG only.", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.LogError("Failed to open uploaded file: %v", err)
		utils.InternalServerError(c, "Failed to read upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.LogError("Failed to read uploaded file: %v", err)
		utils.InternalServerError(c, "Failed to read upload", nil)
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.InternalServerError(c, "Failed to load configuration", nil)
		return
	}
	if cfg.OCRAPIKey == "" {
		utils.LogError("OCR API key not configured")
		utils.InternalServerError(c, "OCR service is not configured", nil)
		return
	}

	client := utils.NewOCRClient(cfg)
	number, err := client.ExtractDocumentNumber(base64.StdEncoding.EncodeToString(data), documentType)
	if err != nil {
		utils.LogError("OCR extraction failed: %v", err)
		utils.RespondError(c, utils.ExternalServiceError("Document number extraction failed", err))
		return
	}

	utils.LogInfo("Extracted document number for type: %s", documentType)
	utils.Success(c, "Document number extracted successfully", gin.H{
		"document_number": number,
	})
}
