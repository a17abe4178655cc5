package controllers

import (
	"loyalty-backend/utils"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest is the payload for converting the cart into an order.
type CheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	Mobile          string `json:"mobile" binding:"required"`
}

// Checkout converts the cart into an order, debiting the wallet. The engine
// commits everything as one unit; this handler only parses and translates.
func Checkout(c *gin.Context) {
	utils.LogInfo("Checkout called")
	user, ok := currentUser(c)
	if !ok {
		return
	}
	utils.LogInfo("Processing checkout for user ID: %d", user.ID)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. Delivery address and mobile are required", err.Error())
		return
	}

	if !utils.IsValidPhone(req.Mobile) {
		utils.BadRequest(c, "Invalid mobile number", nil)
		return
	}

	result, err := utils.Checkout(user.ID, req.DeliveryAddress, req.Mobile)
	if err != nil {
		utils.LogError("Checkout failed for user ID: %d: %v", user.ID, err)
		utils.RespondError(c, err)
		return
	}

	utils.LogInfo("Checkout complete for user ID: %d, order: %s, points: %d, remaining: %d",
		user.ID, result.OrderID, result.TotalPoints, result.RemainingPoints)
	utils.Success(c, "Order placed successfully", result)
}
