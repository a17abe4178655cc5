package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"loyalty-backend/config"
	"loyalty-backend/models"
	"loyalty-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadOrderReceipt generates and returns a PDF receipt for the order
func DownloadOrderReceipt(c *gin.Context) {
	utils.LogInfo("Starting receipt download process")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	orderID := c.Param("order_id")
	if orderID == "" {
		utils.BadRequest(c, "Order ID is required", nil)
		return
	}
	utils.LogInfo("Processing receipt download for order ID: %s", orderID)

	var order models.Order
	if err := config.DB.Preload("Items").Where("order_id = ? AND user_id = ?", orderID, user.ID).First(&order).Error; err != nil {
		utils.LogError("Order not found for receipt download - Order ID: %s, User ID: %d", orderID, user.ID)
		utils.NotFound(c, "Order not found")
		return
	}
	utils.LogInfo("Found order for receipt generation - Order ID: %s", orderID)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Program info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "Hamdard Loyalty Program")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: support@hamdardloyalty.com | Phone: +91-12345-67890")
	pdf.Ln(12)

	// Receipt title and order info
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "RECEIPT")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, "Order ID: "+order.OrderID)
	pdf.Cell(70, 8, "Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(60, 8, "Type: "+order.TransactionLabel())
	pdf.Cell(70, 8, "Status: "+order.Status)
	pdf.Ln(8)

	// Member info
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Member:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, user.FullName)
	pdf.Ln(6)
	pdf.Cell(100, 8, "Member Code: "+user.MemberCode)
	pdf.Ln(6)
	pdf.Cell(100, 8, "Phone: "+user.Phone)
	pdf.Ln(8)

	if order.DeliveryAddress != "" {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(100, 8, "Delivery Address:")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(160, 6, order.DeliveryAddress, "", "L", false)
		pdf.Ln(4)
	}

	if len(order.Items) > 0 {
		// Items table
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(70, 8, "Product", "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, "Points", "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, "Total", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 12)
		for _, item := range order.Items {
			pdf.CellFormat(70, 8, item.ProductName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(20, 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
			pdf.CellFormat(30, 8, strconv.Itoa(item.Points), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 8, strconv.Itoa(item.Points*item.Quantity), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(120, 10, "Total Points:", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 10, strconv.Itoa(order.TotalPoints), "", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for being a valued member!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate receipt PDF for order ID: %s: %v", orderID, err)
		utils.InternalServerError(c, "Failed to generate receipt", nil)
		return
	}
	utils.LogInfo("PDF receipt generated successfully for order ID: %s", orderID)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%s.pdf", order.OrderID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	utils.LogInfo("Receipt download completed for order ID: %s", orderID)
}

// DownloadTDSCertificate generates a PDF certificate for the tax withheld
// on a cash payout transaction.
func DownloadTDSCertificate(c *gin.Context) {
	utils.LogInfo("Starting TDS certificate download process")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	reference := c.Param("reference")
	if reference == "" {
		utils.BadRequest(c, "Transaction reference is required", nil)
		return
	}
	utils.LogInfo("Processing TDS certificate for reference: %s, user ID: %d", reference, user.ID)

	var transaction models.Transaction
	if err := config.DB.Where("reference = ? AND user_id = ?", reference, user.ID).First(&transaction).Error; err != nil {
		utils.LogError("Transaction not found for TDS certificate - Reference: %s, User ID: %d", reference, user.ID)
		utils.NotFound(c, "Transaction not found")
		return
	}
	if transaction.TDSAmount <= 0 {
		utils.BadRequest(c, "No tax was deducted on this transaction", nil)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "Hamdard Loyalty Program")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(150, 10, "TAX DEDUCTED AT SOURCE - CERTIFICATE")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(70, 8, "Deductee: "+user.FullName)
	pdf.Ln(7)
	pdf.Cell(70, 8, "Member Code: "+user.MemberCode)
	pdf.Ln(7)

	var panDoc models.KYCDocument
	if err := config.DB.Where("user_id = ? AND document_type = ?", user.ID, "PAN").First(&panDoc).Error; err == nil {
		pdf.Cell(70, 8, "PAN: "+panDoc.DocumentNumber)
		pdf.Ln(7)
	}
	pdf.Cell(70, 8, "Transaction Reference: "+transaction.Reference)
	pdf.Ln(7)
	pdf.Cell(70, 8, "Transaction Date: "+transaction.CreatedAt.Format("2006-01-02"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(90, 8, "Particulars", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(90, 8, "Gross Payout", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, strconv.Itoa(transaction.Amount), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(90, 8, fmt.Sprintf("TDS Deducted (%d%%)", transaction.TDSPercentage), "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, strconv.Itoa(transaction.TDSAmount), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(90, 8, "Net Amount Paid", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, strconv.Itoa(transaction.NetAmount), "1", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Arial", "I", 11)
	pdf.MultiCell(160, 6, "This is a system generated certificate for tax deducted at source on the above payout and does not require a signature.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate TDS certificate PDF for reference: %s: %v", reference, err)
		utils.InternalServerError(c, "Failed to generate certificate", nil)
		return
	}
	utils.LogInfo("TDS certificate generated successfully for reference: %s", reference)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=tds_certificate_%s.pdf", transaction.Reference))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	utils.LogInfo("TDS certificate download completed for reference: %s", reference)
}
