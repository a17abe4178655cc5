package controllers

import (
	"loyalty-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetCart returns the user's cart lines and pending point total.
func GetCart(c *gin.Context) {
	utils.LogInfo("GetCart called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := utils.GetCartSummary(user.ID)
	if err != nil {
		utils.LogError("Failed to get cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch cart", nil)
		return
	}

	utils.Success(c, "Cart retrieved successfully", summary)
}

// AddToCartRequest is the payload for adding a product to the cart.
type AddToCartRequest struct {
	ProductName  string `json:"product_name" binding:"required"`
	ProductImage string `json:"product_image"`
	Points       int    `json:"points" binding:"required,min=1"`
	Quantity     int    `json:"quantity"`
	Category     string `json:"category"`
	Description  string `json:"description"`
}

// AddToCart adds a product to the cart, merging into an existing line for
// the same product name.
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. Product name and points are required", err.Error())
		return
	}

	item, merged, err := utils.AddToCart(user.ID, utils.AddCartItemInput{
		ProductName:  req.ProductName,
		ProductImage: req.ProductImage,
		Points:       req.Points,
		Quantity:     req.Quantity,
		Category:     req.Category,
		Description:  req.Description,
	})
	if err != nil {
		utils.LogError("Failed to add to cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to add item to cart", nil)
		return
	}

	message := "Item added to cart"
	if merged {
		message = "Cart updated"
	}
	utils.LogInfo("%s for user ID: %d, product: %s, quantity: %d", message, user.ID, item.ProductName, item.Quantity)
	utils.Success(c, message, gin.H{
		"item": gin.H{
			"id":           item.ID,
			"product_name": item.ProductName,
			"points":       item.Points,
			"quantity":     item.Quantity,
		},
	})
}

// RemoveFromCart deletes a single cart line.
func RemoveFromCart(c *gin.Context) {
	utils.LogInfo("RemoveFromCart called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		CartItemID uint `json:"cart_item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.RemoveFromCart(user.ID, req.CartItemID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.LogInfo("Removed cart item %d for user ID: %d", req.CartItemID, user.ID)
	utils.Success(c, "Item removed from cart", nil)
}

// ClearCart empties the cart.
func ClearCart(c *gin.Context) {
	utils.LogInfo("ClearCart called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := utils.ClearCart(user.ID); err != nil {
		utils.LogError("Failed to clear cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to clear cart", nil)
		return
	}

	utils.LogInfo("Cleared cart for user ID: %d", user.ID)
	utils.Success(c, "Cart cleared", nil)
}
