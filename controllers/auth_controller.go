package controllers

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"loyalty-backend/config"
	"loyalty-backend/models"
	"loyalty-backend/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OTPSession tracks the in-flight OTP exchange between send and verify.
// Stored in the cookie session to throttle resends.
type OTPSession struct {
	Phone      string
	LastSentAt int64
}

const otpResendCooldown = 30 * time.Second

// SignupRequest is the payload for new member registration.
type SignupRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
}

// Signup registers a new member and mints their member code.
func Signup(c *gin.Context) {
	utils.LogInfo("Signup called")

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !utils.IsValidPhone(req.Phone) {
		utils.BadRequest(c, "Invalid phone number", nil)
		return
	}

	var existing models.User
	if err := config.DB.Where("phone = ?", req.Phone).First(&existing).Error; err == nil {
		utils.LogInfo("Signup attempted for existing phone: %s", req.Phone)
		utils.Conflict(c, "An account with this phone number already exists", nil)
		return
	}

	memberCode, err := generateMemberCode()
	if err != nil {
		utils.LogError("Failed to generate member code: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	user := models.User{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		MemberCode: memberCode,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	utils.LogInfo("Created user ID: %d with member code: %s", user.ID, memberCode)
	utils.Created(c, "Account created successfully", gin.H{
		"user_id":     user.ID,
		"member_code": memberCode,
	})
}

// generateMemberCode mints the next member code in HAM%06d order. The
// unique index on member_code catches races between concurrent signups.
func generateMemberCode() (string, error) {
	var lastUser models.User
	next := 1
	err := config.DB.Where("member_code IS NOT NULL").Order("id desc").First(&lastUser).Error
	if err == nil && lastUser.MemberCode != "" {
		if n, convErr := strconv.Atoi(strings.TrimPrefix(lastUser.MemberCode, "HAM")); convErr == nil {
			next = n + 1
		}
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	return fmt.Sprintf("HAM%06d", next), nil
}

// SendOTP generates a fresh OTP for the phone number and delivers it. The
// code is stored hashed; in non-production it is echoed in the response so
// the demo flow works without an SMS gateway.
func SendOTP(c *gin.Context) {
	utils.LogInfo("SendOTP called")

	var req struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("phone = ?", req.Phone).First(&user).Error; err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	session := sessions.Default(c)
	if raw := session.Get("otp_session"); raw != nil {
		if otpSess, ok := raw.(OTPSession); ok && otpSess.Phone == req.Phone {
			if time.Since(time.Unix(otpSess.LastSentAt, 0)) < otpResendCooldown {
				utils.BadRequest(c, "Please wait before requesting another OTP", nil)
				return
			}
		}
	}

	otp := fmt.Sprintf("%06d", 100000+rand.Intn(900000))
	otpHash, err := utils.HashOTP(otp)
	if err != nil {
		utils.LogError("Failed to hash OTP: %v", err)
		utils.InternalServerError(c, "Failed to send OTP", nil)
		return
	}

	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"otp_hash":   otpHash,
		"otp_expiry": time.Now().Add(10 * time.Minute),
	}).Error; err != nil {
		utils.LogError("Failed to store OTP for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to send OTP", nil)
		return
	}

	if err := utils.SendOTPEmail(user.Email, otp); err != nil {
		utils.LogError("OTP delivery failed for user ID: %d: %v", user.ID, err)
	}

	session.Set("otp_session", OTPSession{Phone: req.Phone, LastSentAt: time.Now().Unix()})
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save OTP session: %v", err)
	}

	cfg, _ := config.LoadConfig()
	data := gin.H{}
	if cfg != nil && !cfg.IsProduction() {
		// Demo convenience only; an SMS gateway replaces this in production.
		data["demo_otp"] = otp
	}
	utils.LogInfo("OTP sent for user ID: %d", user.ID)
	utils.Success(c, "OTP sent successfully", data)
}

// VerifyOTP checks the submitted code and issues a JWT on success.
func VerifyOTP(c *gin.Context) {
	utils.LogInfo("VerifyOTP called")

	var req struct {
		Phone string `json:"phone" binding:"required"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("phone = ?", req.Phone).First(&user).Error; err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	if user.OTPHash == "" || time.Now().After(user.OTPExpiry) {
		utils.BadRequest(c, "OTP expired. Please request a new one.", nil)
		return
	}
	if !utils.CheckOTP(req.OTP, user.OTPHash) {
		utils.LogError("OTP mismatch for user ID: %d", user.ID)
		utils.BadRequest(c, "Invalid OTP", nil)
		return
	}

	updates := map[string]interface{}{
		"otp_verified": true,
		"otp_hash":     "",
	}
	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.LogError("Failed to mark user verified, ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to verify OTP", nil)
		return
	}
	user.OTPVerified = true

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User %d verified successfully", user.ID)
	utils.Success(c, "OTP verified successfully", gin.H{
		"user_id":     user.ID,
		"member_code": user.MemberCode,
		"token":       token,
	})
}
