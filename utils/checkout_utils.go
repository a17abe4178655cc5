package utils

import (
	"errors"

	"loyalty-backend/config"
	"loyalty-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckoutResult is returned to the handler after a successful checkout.
type CheckoutResult struct {
	OrderID         string `json:"order_id"`
	TotalPoints     int    `json:"total_points"`
	RemainingPoints int    `json:"remaining_points"`
}

// orderIDRetries bounds retries when the minted order id collides with an
// existing row. Collisions only happen for two checkouts in the same
// millisecond window, one retry is already generous.
const orderIDRetries = 3

// Checkout converts the user's cart into an order: debits the wallet,
// snapshots each cart line as an order item, and empties the cart, all in
// one transaction. The wallet row is locked for the duration so concurrent
// checkouts or payouts for the same user serialize instead of racing the
// balance. On any failure nothing is committed.
func Checkout(userID uint, deliveryAddress, mobile string) (*CheckoutResult, error) {
	var result *CheckoutResult
	var err error

	for attempt := 0; attempt < orderIDRetries; attempt++ {
		result, err = checkoutOnce(userID, deliveryAddress, mobile)
		if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
			LogError("Order id collision during checkout for user ID: %d, retrying", userID)
			continue
		}
		break
	}

	return result, err
}

func checkoutOnce(userID uint, deliveryAddress, mobile string) (*CheckoutResult, error) {
	var result CheckoutResult

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
			return WrapError(err, "failed to fetch cart items")
		}
		if len(cartItems) == 0 {
			return BadRequestError("Cart is empty", nil)
		}

		totalPoints := 0
		for _, item := range cartItems {
			totalPoints += item.LineTotal()
		}

		// Lock the wallet row; this is the only contended resource.
		var wallet models.Wallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&wallet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError("Wallet not found", nil)
			}
			return WrapError(err, "failed to load wallet")
		}

		if wallet.Points < totalPoints {
			return InsufficientFundsError(wallet.Points, totalPoints)
		}

		wallet.Points -= totalPoints
		wallet.Redeemed += totalPoints
		if err := tx.Model(&models.Wallet{}).Where("id = ?", wallet.ID).
			Updates(map[string]interface{}{
				"points":   wallet.Points,
				"redeemed": wallet.Redeemed,
			}).Error; err != nil {
			return WrapError(err, "failed to debit wallet")
		}

		orderID := GenerateOrderID(OrderPrefixProduct)
		order := models.Order{
			UserID:          userID,
			OrderID:         orderID,
			TotalPoints:     totalPoints,
			DeliveryAddress: deliveryAddress,
			Mobile:          mobile,
			Status:          models.OrderStatusCompleted,
			TransactionType: models.TransactionTypeProduct,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range cartItems {
			orderItem := models.OrderItem{
				OrderRef:     orderID,
				ProductName:  item.ProductName,
				ProductImage: item.ProductImage,
				Points:       item.Points,
				Quantity:     item.Quantity,
				Category:     item.Category,
				Brand:        ClassifyBrand(item.ProductName),
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return WrapError(err, "failed to create order item")
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return WrapError(err, "failed to clear cart")
		}

		result = CheckoutResult{
			OrderID:         orderID,
			TotalPoints:     totalPoints,
			RemainingPoints: wallet.Points,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
