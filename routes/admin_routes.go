package routes

import (
	"loyalty-backend/controllers"
	"loyalty-backend/middleware"

	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/kyc/users", controllers.AdminKYCUsers)
		admin.GET("/reports/transactions/excel", controllers.DownloadTransactionsReportExcel)
	}
}
