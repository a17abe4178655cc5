package controllers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"loyalty-backend/config"
	"loyalty-backend/models"
	"loyalty-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// AdminKYCUsers lists all members with their KYC document counts and
// derived verification status.
func AdminKYCUsers(c *gin.Context) {
	utils.LogInfo("AdminKYCUsers called")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.DB.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		term := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR phone ILIKE ? OR member_code ILIKE ?", term, term, term)
		utils.LogDebug("Filtering KYC users by search term: %s", search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Failed to count users", nil)
		return
	}

	var users []models.User
	if err := query.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}
	utils.LogDebug("Retrieved %d users for KYC listing", len(users))

	userList := make([]gin.H, 0, len(users))
	for _, u := range users {
		var docs []models.KYCDocument
		if err := config.DB.Where("user_id = ?", u.ID).Find(&docs).Error; err != nil {
			utils.LogError("Failed to fetch KYC documents for user ID: %d: %v", u.ID, err)
			continue
		}
		docTypes := make([]string, 0, len(docs))
		for _, d := range docs {
			docTypes = append(docTypes, d.DocumentType)
		}
		userList = append(userList, gin.H{
			"id":             u.ID,
			"full_name":      u.FullName,
			"phone":          u.Phone,
			"member_code":    u.MemberCode,
			"document_count": len(docs),
			"document_types": docTypes,
			"kyc_status":     models.OverallKYCStatus(len(docs)),
		})
	}

	utils.LogInfo("Successfully retrieved KYC status for %d users", len(userList))
	utils.Success(c, "KYC users retrieved successfully", gin.H{
		"users": userList,
		"pagination": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// Admin: Download transactions report as Excel
func DownloadTransactionsReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadTransactionsReportExcel called")

	period := c.DefaultQuery("period", "day")
	utils.LogDebug("Generating Excel report for period: %s", period)

	now := time.Now()
	var startDate, endDate time.Time

	switch period {
	case "day":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
	case "week":
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		startDate = endDate.AddDate(0, 0, -6)
		startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	case "month":
		startDate = now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
		endDate = now.Add(24 * time.Hour)
	default:
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	var transactions []models.Transaction
	if err := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Order("created_at DESC").Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions: %v", err)
		utils.InternalServerError(c, "Failed to fetch transactions", nil)
		return
	}
	utils.LogDebug("Retrieved %d transactions for Excel report", len(transactions))

	var summary struct {
		TotalTransactions int
		TotalPoints       int
		TotalGross        int
		TotalTDS          int
		TotalNet          int
		TotalMembers      int
	}
	memberSet := make(map[uint]bool)
	for _, tx := range transactions {
		summary.TotalTransactions++
		summary.TotalPoints += tx.Points
		summary.TotalGross += tx.Amount
		summary.TotalTDS += tx.TDSAmount
		summary.TotalNet += tx.NetAmount
		memberSet[tx.UserID] = true
	}
	summary.TotalMembers = len(memberSet)

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transactions Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}
	utils.LogDebug("Created Excel sheet for transactions report")

	// Program details
	infoRow := sheet.AddRow()
	infoRow.AddCell().SetString("HAMDARD LOYALTY PROGRAM - Transactions Report")
	infoRow = sheet.AddRow()
	infoRow.AddCell().SetString("Email: support@hamdardloyalty.com")
	infoRow = sheet.AddRow()
	infoRow.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow() // spacing

	// Table headers
	headers := []string{"Reference", "User ID", "Type", "Date", "Points", "Gross", "TDS", "Net", "Status", "Description"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	// Table rows
	for _, tx := range transactions {
		row := sheet.AddRow()
		row.AddCell().SetString(tx.Reference)
		row.AddCell().SetInt(int(tx.UserID))
		row.AddCell().SetString(tx.TransactionType)
		row.AddCell().SetString(tx.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetInt(tx.Points)
		row.AddCell().SetInt(tx.Amount)
		row.AddCell().SetInt(tx.TDSAmount)
		row.AddCell().SetInt(tx.NetAmount)
		row.AddCell().SetString(tx.Status)
		row.AddCell().SetString(tx.Description)
	}

	sheet.AddRow() // spacing

	// --- Summary Section ---
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Transactions", fmt.Sprintf("%d", summary.TotalTransactions)},
		{"Total Points Moved", fmt.Sprintf("%d", summary.TotalPoints)},
		{"Total Gross Payout", fmt.Sprintf("%d", summary.TotalGross)},
		{"Total TDS Withheld", fmt.Sprintf("%d", summary.TotalTDS)},
		{"Total Net Paid", fmt.Sprintf("%d", summary.TotalNet)},
		{"Distinct Members", fmt.Sprintf("%d", summary.TotalMembers)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transactions_report_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", nil)
		return
	}
	utils.LogInfo("Excel report generated and sent successfully for period: %s", period)
}
