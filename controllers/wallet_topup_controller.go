package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"loyalty-backend/config"
	"loyalty-backend/models"
	"loyalty-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

// InitiateWalletTopup creates a Razorpay order for adding money to the
// wallet. Points are only credited after VerifyWalletTopup confirms the
// payment signature.
func InitiateWalletTopup(c *gin.Context) {
	utils.LogInfo("InitiateWalletTopup called")
	user, ok := currentUser(c)
	if !ok {
		return
	}
	utils.LogInfo("Processing wallet topup request for user ID: %d", user.ID)

	var req struct {
		Amount float64 `json:"amount" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. Amount is required and must be positive", err.Error())
		return
	}

	wallet, err := utils.GetOrCreateWallet(user.ID)
	if err != nil {
		utils.LogError("Failed to get wallet for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to get wallet", nil)
		return
	}

	// Razorpay expects the amount in paise.
	amountPaise := int(req.Amount * 100)

	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	orderData := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         "wallet_topup_" + strconv.FormatUint(uint64(user.ID), 10) + "_" + time.Now().Format("20060102150405"),
		"payment_capture": 1,
	}

	rzOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create payment order", nil)
		return
	}
	utils.LogDebug("Created Razorpay order - ID: %v", rzOrder["id"])

	topupOrder := models.WalletTopupOrder{
		UserID:          user.ID,
		RazorpayOrderID: fmt.Sprintf("%v", rzOrder["id"]),
		Amount:          req.Amount,
		Status:          "pending",
	}
	if err := config.DB.Create(&topupOrder).Error; err != nil {
		utils.LogError("Failed to record wallet topup order for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to record topup order", nil)
		return
	}

	utils.LogInfo("Initiated wallet topup for user ID: %d", user.ID)
	utils.Success(c, "Wallet topup order created successfully", gin.H{
		"razorpay_order_id": rzOrder["id"],
		"amount":            req.Amount,
		"key":               os.Getenv("RAZORPAY_KEY"),
		"wallet": gin.H{
			"points": wallet.Points,
		},
	})
}

// VerifyWalletTopup verifies the Razorpay payment signature and credits
// the wallet 1:1 (one rupee = one point).
func VerifyWalletTopup(c *gin.Context) {
	utils.LogInfo("VerifyWalletTopup called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var topupOrder models.WalletTopupOrder
	err := config.DB.Where("razorpay_order_id = ? AND user_id = ?", req.RazorpayOrderID, user.ID).First(&topupOrder).Error
	if err != nil || topupOrder.Amount <= 0 {
		utils.LogError("Failed to fetch wallet topup order - Order ID: %s: %v", req.RazorpayOrderID, err)
		utils.BadRequest(c, "Unknown topup order", nil)
		return
	}
	if topupOrder.Status == "completed" {
		utils.Conflict(c, "This payment has already been processed", nil)
		return
	}

	keySecret := os.Getenv("RAZORPAY_SECRET")
	data := req.RazorpayOrderID + "|" + req.RazorpayPaymentID
	h := hmac.New(sha256.New, []byte(keySecret))
	h.Write([]byte(data))
	generatedSignature := hex.EncodeToString(h.Sum(nil))
	if generatedSignature != req.RazorpaySignature {
		utils.LogError("Payment verification failed - Order ID: %s", req.RazorpayOrderID)
		utils.BadRequest(c, "Payment verification failed", gin.H{"retry": true})
		return
	}

	points := int(topupOrder.Amount)
	wallet, err := utils.CreditWallet(user.ID, points)
	if err != nil {
		utils.LogError("Failed to credit wallet for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to credit wallet", nil)
		return
	}

	if err := config.DB.Model(&topupOrder).Update("status", "completed").Error; err != nil {
		utils.LogError("Failed to mark topup order completed - Order ID: %s: %v", req.RazorpayOrderID, err)
	}

	transaction := models.Transaction{
		UserID:          user.ID,
		TransactionType: models.TransactionTypeTopup,
		Points:          points,
		Amount:          points,
		Description:     fmt.Sprintf("Wallet topup via Razorpay payment %s", req.RazorpayPaymentID),
		Reference:       uuid.New().String(),
		Status:          models.TransactionStatusCompleted,
	}
	if err := config.DB.Create(&transaction).Error; err != nil {
		utils.LogError("Transaction record error for topup, user ID: %d: %v", user.ID, err)
	}

	utils.LogInfo("Wallet topup complete for user ID: %d, points added: %d", user.ID, points)
	utils.Success(c, fmt.Sprintf("Added %d points to wallet", points), gin.H{
		"points_added": points,
		"new_balance":  wallet.Points,
	})
}
