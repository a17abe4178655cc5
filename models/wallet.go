package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultWalletPoints is the starting balance granted when a wallet is
// created lazily on first balance access.
const DefaultWalletPoints = 6000

// Wallet holds a user's loyalty point balance. Points never go negative;
// Redeemed only ever grows and tracks lifetime debits for reporting.
type Wallet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Points    int       `json:"points" gorm:"not null;default:0;check:points >= 0"`
	Redeemed  int       `json:"redeemed" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WalletTopupOrder tracks a pending Razorpay order used to add money to a
// wallet. Points are only credited after the payment signature verifies.
type WalletTopupOrder struct {
	gorm.Model
	UserID          uint    `json:"user_id" gorm:"index"`
	RazorpayOrderID string  `json:"razorpay_order_id" gorm:"uniqueIndex"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"` // pending, completed, failed
}
