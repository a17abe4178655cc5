package controllers

import (
	"fmt"
	"math"
	"strconv"

	"loyalty-backend/config"
	"loyalty-backend/models"
	"loyalty-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetUserOrders lists the logged-in user's orders newest first, with
// optional filters by order ID, transaction type and date.
func GetUserOrders(c *gin.Context) {
	utils.LogInfo("GetUserOrders called")
	user, ok := currentUser(c)
	if !ok {
		return
	}
	utils.LogInfo("Processing orders list for user ID: %d", user.ID)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	order := c.DefaultQuery("order", "desc")
	utils.LogDebug("Pagination parameters - Page: %d, Limit: %d, Order: %s", page, limit, order)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	query := config.DB.Model(&models.Order{}).Where("user_id = ?", user.ID)

	if id := c.Query("order_id"); id != "" {
		query = query.Where("order_id = ?", id)
		utils.LogDebug("Filtering by order ID: %s", id)
	}
	if txType := c.Query("transaction_type"); txType != "" {
		query = query.Where("transaction_type = ?", txType)
		utils.LogDebug("Filtering by transaction type: %s", txType)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("DATE(created_at) = ?", date)
		utils.LogDebug("Filtering by date: %s", date)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to count orders", nil)
		return
	}
	utils.LogDebug("Total orders found: %d", total)

	offset := (page - 1) * limit
	var orders []models.Order
	if err := query.Preload("Items").Order(fmt.Sprintf("created_at %s", order)).Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	orderList := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		items := make([]gin.H, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, gin.H{
				"product_name":  item.ProductName,
				"product_image": item.ProductImage,
				"points":        item.Points,
				"quantity":      item.Quantity,
				"category":      item.Category,
				"brand":         item.Brand,
			})
		}
		orderList = append(orderList, gin.H{
			"order_id":          o.OrderID,
			"total_points":      o.TotalPoints,
			"status":            o.Status,
			"transaction_type":  o.TransactionType,
			"transaction_label": o.TransactionLabel(),
			"created_at":        o.CreatedAt,
			"items":             items,
		})
	}

	utils.LogInfo("Successfully retrieved %d orders for user ID: %d", len(orders), user.ID)
	utils.Success(c, "Orders retrieved successfully", gin.H{
		"orders": orderList,
		"pagination": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// GetOrderDetails returns one order, looked up by its human-facing order ID.
func GetOrderDetails(c *gin.Context) {
	utils.LogInfo("GetOrderDetails called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	orderID := c.Param("order_id")
	if orderID == "" {
		utils.BadRequest(c, "Order ID is required", nil)
		return
	}
	utils.LogInfo("Processing order details for order ID: %s, user ID: %d", orderID, user.ID)

	var order models.Order
	if err := config.DB.Preload("Items").Where("order_id = ? AND user_id = ?", orderID, user.ID).First(&order).Error; err != nil {
		utils.LogError("Order not found - Order ID: %s, User ID: %d", orderID, user.ID)
		utils.NotFound(c, "Order not found")
		return
	}

	utils.LogInfo("Successfully retrieved order details for order ID: %s", orderID)
	utils.Success(c, "Order details retrieved successfully", gin.H{
		"order": gin.H{
			"order_id":          order.OrderID,
			"total_points":      order.TotalPoints,
			"delivery_address":  order.DeliveryAddress,
			"mobile":            order.Mobile,
			"status":            order.Status,
			"transaction_type":  order.TransactionType,
			"transaction_label": order.TransactionLabel(),
			"created_at":        order.CreatedAt,
			"items":             order.Items,
		},
	})
}
