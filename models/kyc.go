package models

import "gorm.io/gorm"

// KYC status constants. A user is COMPLETED once all three document types
// (address proof, PAN, GST) are on file.
const (
	KYCStatusPending   = "PENDING"
	KYCStatusPartial   = "PARTIAL"
	KYCStatusCompleted = "COMPLETED"
)

// KYCDocumentsRequired is the number of document types needed for a
// fully-completed KYC.
const KYCDocumentsRequired = 3

// KYCDocument records one submitted identity document. A user can hold at
// most one row per document type, enforced by the composite unique index.
type KYCDocument struct {
	gorm.Model
	UserID         uint   `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_document"`
	DocumentType   string `json:"document_type" gorm:"not null;size:50;uniqueIndex:idx_user_document"`
	DocumentNumber string `json:"document_number" gorm:"not null;size:100"`
	Status         string `json:"status" gorm:"default:COMPLETED;size:20"`
}

// OverallKYCStatus derives the aggregate status from a document count.
func OverallKYCStatus(documentCount int) string {
	switch {
	case documentCount == 0:
		return KYCStatusPending
	case documentCount >= KYCDocumentsRequired:
		return KYCStatusCompleted
	default:
		return KYCStatusPartial
	}
}
