package models

import "time"

// CartItem is a pending redemption line for a user. Product name acts as the
// merge key: adding the same product again increments Quantity instead of
// creating a second row.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	ProductName  string    `json:"product_name" gorm:"not null"`
	ProductImage string    `gorm:"type:text" json:"product_image"`
	Points       int       `json:"points" gorm:"not null"`
	Quantity     int       `json:"quantity" gorm:"not null;default:1;check:quantity >= 1"`
	Category     string    `json:"category"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// LineTotal returns the points cost of the full line.
func (c *CartItem) LineTotal() int {
	return c.Points * c.Quantity
}
