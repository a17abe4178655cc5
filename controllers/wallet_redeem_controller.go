package controllers

import (
	"fmt"

	"loyalty-backend/models"
	"loyalty-backend/utils"

	"github.com/gin-gonic/gin"
)

// RedeemPointsRequest is the payload for a simple cashout.
type RedeemPointsRequest struct {
	Points int `json:"points" binding:"required"`
}

// RedeemPoints cashes points out of the wallet 1:1 and records a CASHOUT
// order for the history screen.
func RedeemPoints(c *gin.Context) {
	utils.LogInfo("RedeemPoints called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req RedeemPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. Points amount is required", err.Error())
		return
	}

	result, err := utils.RedeemPoints(user.ID, req.Points)
	if err != nil {
		utils.LogError("Redeem failed for user ID: %d: %v", user.ID, err)
		utils.RespondError(c, err)
		return
	}

	utils.LogInfo("Redeemed %d points for user ID: %d, order: %s", req.Points, user.ID, result.OrderID)
	utils.Success(c, fmt.Sprintf("Successfully redeemed %d points", req.Points), result)
}

// TransferRequest is the payload for a bank or UPI payout.
type TransferRequest struct {
	Points int `json:"points" binding:"required"`
}

// BankTransfer pays points out to the stored bank account with TDS
// withheld. The full gross leaves the wallet; net is what reaches the
// account.
func BankTransfer(c *gin.Context) {
	utils.LogInfo("BankTransfer called")
	transfer(c, models.PaymentMethodBank)
}

// UPITransfer pays points out to the stored UPI handle with TDS withheld.
func UPITransfer(c *gin.Context) {
	utils.LogInfo("UPITransfer called")
	transfer(c, models.PaymentMethodUPI)
}

func transfer(c *gin.Context, method string) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. Points amount is required", err.Error())
		return
	}

	result, err := utils.Transfer(user.ID, req.Points, method)
	if err != nil {
		utils.LogError("Transfer failed for user ID: %d: %v", user.ID, err)
		utils.RespondError(c, err)
		return
	}

	utils.LogInfo("Transfer complete for user ID: %d, transaction: %s, gross: %d, tds: %d, net: %d",
		user.ID, result.TransactionID, result.GrossAmount, result.TDSAmount, result.NetAmount)
	utils.Success(c, fmt.Sprintf("Rs.%d transferred successfully to %s", result.NetAmount, result.Destination), result)
}
