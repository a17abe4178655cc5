package utils

import (
	"loyalty-backend/config"
	"loyalty-backend/models"

	"gorm.io/gorm"
)

// CartSummary holds a user's pending cart lines and their point total.
type CartSummary struct {
	Items       []models.CartItem `json:"items"`
	TotalPoints int               `json:"total_points"`
	Count       int               `json:"count"`
}

// GetCartSummary retrieves all cart items for a user with the pending total.
func GetCartSummary(userID uint) (*CartSummary, error) {
	var items []models.CartItem
	if err := config.DB.Where("user_id = ?", userID).Order("created_at").Find(&items).Error; err != nil {
		return nil, WrapError(err, "failed to fetch cart items")
	}

	summary := &CartSummary{Items: items, Count: len(items)}
	for _, item := range items {
		summary.TotalPoints += item.LineTotal()
	}

	return summary, nil
}

// AddCartItemInput carries the fields accepted when adding to the cart.
type AddCartItemInput struct {
	ProductName  string
	ProductImage string
	Points       int
	Quantity     int
	Category     string
	Description  string
}

// AddToCart adds an item to the user's cart. An existing row for the same
// product name absorbs the quantity instead of duplicating the line.
// Returns the resulting row and whether it was merged into an existing one.
func AddToCart(userID uint, input AddCartItemInput) (*models.CartItem, bool, error) {
	if input.Quantity < 1 {
		input.Quantity = 1
	}

	var existing models.CartItem
	err := config.DB.Where("user_id = ? AND product_name = ?", userID, input.ProductName).First(&existing).Error
	if err == nil {
		if err := config.DB.Model(&existing).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", input.Quantity)).Error; err != nil {
			return nil, false, WrapError(err, "failed to update cart quantity")
		}
		existing.Quantity += input.Quantity
		return &existing, true, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, WrapError(err, "failed to check cart")
	}

	item := models.CartItem{
		UserID:       userID,
		ProductName:  input.ProductName,
		ProductImage: input.ProductImage,
		Points:       input.Points,
		Quantity:     input.Quantity,
		Category:     input.Category,
		Description:  input.Description,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		return nil, false, WrapError(err, "failed to add cart item")
	}

	return &item, false, nil
}

// RemoveFromCart deletes a single cart row owned by the user.
func RemoveFromCart(userID, cartItemID uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", cartItemID, userID).Delete(&models.CartItem{})
	if res.Error != nil {
		return WrapError(res.Error, "failed to remove cart item")
	}
	if res.RowsAffected == 0 {
		return NotFoundError("Cart item not found", nil)
	}
	return nil
}

// ClearCart deletes all cart rows for the user.
func ClearCart(userID uint) error {
	if err := config.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return WrapError(err, "failed to clear cart")
	}
	return nil
}
