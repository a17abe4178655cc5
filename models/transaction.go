package models

import "time"

// TDSPercentage is the tax withheld at source on cash payouts.
const TDSPercentage = 15

// Transaction status constants
const (
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusFailed    = "FAILED"
)

// Transaction is the audit record of a points movement. For payouts it
// carries the gross amount, the TDS withheld and the net amount paid out.
// Points is negative for debits.
type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	TransactionType string    `json:"transaction_type" gorm:"not null"`
	Points          int       `json:"points" gorm:"not null"`
	Amount          int       `json:"amount"`
	TDSPercentage   int       `json:"tds_percentage"`
	TDSAmount       int       `json:"tds_amount" gorm:"default:0"`
	NetAmount       int       `json:"net_amount" gorm:"default:0"`
	Description     string    `gorm:"type:text" json:"description"`
	Reference       string    `json:"reference"`
	Status          string    `json:"status" gorm:"default:COMPLETED"`
	CreatedAt       time.Time `json:"created_at"`
}
