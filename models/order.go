package models

import "time"

// Transaction type constants for orders and transactions
const (
	TransactionTypeProduct      = "PRODUCT"
	TransactionTypeCashout      = "CASHOUT"
	TransactionTypeBankTransfer = "BANK_TRANSFER"
	TransactionTypeUPITransfer  = "UPI_TRANSFER"
	TransactionTypeTopup        = "TOPUP"
)

// Order status constants. Orders are terminal records: once written they are
// never mutated, only read back for history.
const (
	OrderStatusCompleted = "completed"
)

// Order is an immutable record of a completed redemption or payout.
// OrderID carries a human-facing prefix (ORD/CSH/TXN/UPI) plus a
// time-derived suffix; the unique index catches collisions.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `json:"user_id" gorm:"index;not null"`
	OrderID         string      `json:"order_id" gorm:"uniqueIndex;not null;size:50"`
	TotalPoints     int         `json:"total_points" gorm:"not null"`
	DeliveryAddress string      `gorm:"type:text" json:"delivery_address,omitempty"`
	Mobile          string      `json:"mobile,omitempty"`
	Status          string      `json:"status" gorm:"default:completed"`
	TransactionType string      `json:"transaction_type" gorm:"default:PRODUCT"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderRef;references:OrderID"`
}

// OrderItem snapshots one cart line at checkout time. It is deliberately
// decoupled from the live cart so later cart edits cannot rewrite history.
type OrderItem struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	OrderRef     string `json:"order_id" gorm:"column:order_ref;index;not null;size:50"`
	ProductName  string `json:"product_name" gorm:"not null"`
	ProductImage string `gorm:"type:text" json:"product_image"`
	Points       int    `json:"points" gorm:"not null"`
	Quantity     int    `json:"quantity" gorm:"default:1"`
	Category     string `json:"category"`
	Brand        string `json:"brand"`
}

// TransactionLabel returns the human-readable label shown in order history.
func (o *Order) TransactionLabel() string {
	switch o.TransactionType {
	case TransactionTypeBankTransfer:
		return "Bank Transfer"
	case TransactionTypeUPITransfer:
		return "UPI Transfer"
	case TransactionTypeCashout:
		return "Points Redemption"
	default:
		return "Product Redemption"
	}
}
