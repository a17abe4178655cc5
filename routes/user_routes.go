package routes

import (
	"loyalty-backend/controllers"
	"loyalty-backend/middleware"

	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes all member-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	auth := router.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/send-otp", controllers.SendOTP)
		auth.POST("/verify-otp", controllers.VerifyOTP)
	}

	// Protected routes (require authentication)
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		// Profile operations
		protected.GET("/profile", controllers.GetProfile)
		protected.PUT("/profile", controllers.UpdateProfile)

		// KYC operations
		protected.POST("/kyc", controllers.CompleteKYC)
		protected.GET("/kyc/documents", controllers.GetKYCDocuments)
		protected.GET("/kyc/my-kyc", controllers.GetMyKYC)
		protected.GET("/kyc/status", controllers.GetKYCStatus)
		protected.GET("/kyc/document/:type", controllers.GetKYCDocument)
		protected.DELETE("/kyc/document/:type", controllers.DeleteKYCDocument)
		protected.POST("/kyc/extract-document", controllers.ExtractDocumentNumber)

		// Payment method operations
		protected.POST("/bank", controllers.AddOrUpdateBank)
		protected.POST("/upi", controllers.AddOrUpdateUPI)
		protected.GET("/bank", controllers.GetBankDetails)
		protected.POST("/bank/validate", controllers.ValidateBankAccount)

		// Cart operations
		protected.GET("/cart", controllers.GetCart)
		protected.POST("/cart/add", controllers.AddToCart)
		protected.DELETE("/cart/remove", controllers.RemoveFromCart)
		protected.DELETE("/cart/clear", controllers.ClearCart)

		// Checkout
		protected.POST("/checkout", controllers.Checkout)

		// Wallet operations
		protected.GET("/wallet", controllers.GetWalletBalance)
		protected.GET("/wallet/summary", controllers.GetWalletSummary)
		protected.GET("/wallet/transactions", controllers.GetWalletTransactions)
		protected.POST("/wallet/redeem", controllers.RedeemPoints)
		protected.POST("/wallet/bank-transfer", controllers.BankTransfer)
		protected.POST("/wallet/upi-transfer", controllers.UPITransfer)
		protected.POST("/wallet/topup/initiate", controllers.InitiateWalletTopup)
		protected.POST("/wallet/topup/verify", controllers.VerifyWalletTopup)

		// Order history
		protected.GET("/orders", controllers.GetUserOrders)
		protected.GET("/orders/:order_id", controllers.GetOrderDetails)
		protected.GET("/orders/:order_id/receipt", controllers.DownloadOrderReceipt)
		protected.GET("/transactions/:reference/tds-certificate", controllers.DownloadTDSCertificate)
	}
}
