package controllers

import (
	"strconv"

	"loyalty-backend/config"
	"loyalty-backend/models"
	"loyalty-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetWalletBalance returns the wallet, creating it with the default
// starting balance on first access. Points convert 1:1 to currency.
func GetWalletBalance(c *gin.Context) {
	utils.LogInfo("GetWalletBalance called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	wallet, err := utils.GetOrCreateWallet(user.ID)
	if err != nil {
		utils.LogError("Failed to get wallet for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch wallet", nil)
		return
	}

	utils.Success(c, "Wallet retrieved successfully", gin.H{
		"points":   wallet.Points,
		"redeemed": wallet.Redeemed,
		"balance":  wallet.Points,
	})
}

// GetWalletSummary is an alias for GetWalletBalance kept for older app
// builds that still call /wallet/summary.
func GetWalletSummary(c *gin.Context) {
	GetWalletBalance(c)
}

// GetWalletTransactions returns recent redemption history entries derived
// from orders, newest first.
func GetWalletTransactions(c *gin.Context) {
	utils.LogInfo("GetWalletTransactions called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	limit := 10
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && l > 0 {
		limit = l
	}

	var orders []models.Order
	if err := config.DB.Where("user_id = ?", user.ID).
		Order("created_at desc").Limit(limit).Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch transactions", nil)
		return
	}

	transactions := make([]gin.H, 0)
	for _, order := range orders {
		var items []models.OrderItem
		if err := config.DB.Where("order_ref = ?", order.OrderID).Find(&items).Error; err != nil {
			utils.LogError("Failed to fetch order items for order %s: %v", order.OrderID, err)
			continue
		}

		if len(items) == 0 {
			// Cashouts and transfers have no item lines.
			transactions = append(transactions, gin.H{
				"transaction_id": order.OrderID,
				"order_id":       order.OrderID,
				"amount":         order.TotalPoints,
				"type":           order.TransactionLabel(),
				"status":         order.Status,
				"created_at":     order.CreatedAt,
			})
			continue
		}

		for _, item := range items {
			transactions = append(transactions, gin.H{
				"transaction_id": order.OrderID,
				"order_id":       order.OrderID,
				"product_name":   item.ProductName,
				"brand":          item.Brand,
				"amount":         item.Points,
				"quantity":       item.Quantity,
				"type":           order.TransactionLabel(),
				"status":         order.Status,
				"created_at":     order.CreatedAt,
			})
		}
	}

	utils.Success(c, "Transactions retrieved successfully", transactions)
}
