package utils

import (
	"errors"

	"loyalty-backend/config"
	"loyalty-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetOrCreateWallet retrieves the user's wallet, creating it with the
// default starting balance on first access.
func GetOrCreateWallet(userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := config.DB.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, WrapError(err, "failed to load wallet")
		}
		wallet = models.Wallet{
			UserID:   userID,
			Points:   models.DefaultWalletPoints,
			Redeemed: 0,
		}
		if err := config.DB.Create(&wallet).Error; err != nil {
			// A concurrent first access may have created it already.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				if err := config.DB.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
					return nil, WrapError(err, "failed to load wallet")
				}
				return &wallet, nil
			}
			return nil, WrapError(err, "failed to create wallet")
		}
	}
	return &wallet, nil
}

// ComputeTDS splits a gross payout into the withheld and net parts.
// tds = floor(gross * 15 / 100), net = gross - tds.
func ComputeTDS(gross int) (tds, net int) {
	tds = gross * models.TDSPercentage / 100
	net = gross - tds
	return tds, net
}

// RedeemResult is returned after a simple cashout.
type RedeemResult struct {
	OrderID    string `json:"order_id"`
	Points     int    `json:"points"`
	Redeemed   int    `json:"redeemed"`
	NewBalance int    `json:"new_balance"`
}

// RedeemPoints debits points 1:1 from the wallet and records a CASHOUT
// order. Runs in one transaction with the wallet row locked.
func RedeemPoints(userID uint, points int) (*RedeemResult, error) {
	if points <= 0 {
		return nil, BadRequestError("Invalid points amount", nil)
	}

	var result RedeemResult
	run := func() error {
		return config.DB.Transaction(func(tx *gorm.DB) error {
			wallet, err := debitWallet(tx, userID, points)
			if err != nil {
				return err
			}

			order := models.Order{
				UserID:          userID,
				OrderID:         GenerateOrderID(OrderPrefixCashout),
				TotalPoints:     points,
				Status:          models.OrderStatusCompleted,
				TransactionType: models.TransactionTypeCashout,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			result = RedeemResult{
				OrderID:    order.OrderID,
				Points:     wallet.Points,
				Redeemed:   wallet.Redeemed,
				NewBalance: wallet.Points,
			}
			return nil
		})
	}

	err := run()
	for attempt := 0; attempt < orderIDRetries-1 && errors.Is(err, gorm.ErrDuplicatedKey); attempt++ {
		LogError("Order id collision during cashout for user ID: %d, retrying", userID)
		err = run()
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// TransferResult describes a completed bank/UPI payout.
type TransferResult struct {
	TransactionID   string `json:"transaction_id"`
	TransactionType string `json:"transaction_type"`
	PointsDeducted  int    `json:"points_deducted"`
	GrossAmount     int    `json:"gross_amount"`
	TDSAmount       int    `json:"tds_amount"`
	NetAmount       int    `json:"net_amount"`
	RemainingPoints int    `json:"remaining_points"`
	Destination     string `json:"destination"`
}

// Transfer pays out points to the user's stored bank account or UPI handle.
// The FULL gross amount leaves the wallet; TDS is withheld from what is
// paid externally, so net is reporting detail only. Wallet debit + order
// commit atomically; the audit Transaction row is written after the commit
// and its failure is logged without unwinding the payout. The money
// movement stays authoritative even when the audit write fails.
// The method argument forces a destination kind (models.PaymentMethodBank
// or models.PaymentMethodUPI); empty means the record's active method.
func Transfer(userID uint, points int, method string) (*TransferResult, error) {
	if points <= 0 {
		return nil, BadRequestError("Invalid transfer amount", nil)
	}

	var bank models.BankDetail
	if err := config.DB.Where("user_id = ?", userID).First(&bank).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Bank details not found. Please add bank details first.", nil)
		}
		return nil, WrapError(err, "failed to load bank details")
	}
	if method != "" {
		bank.PaymentMethod = method
	}

	target, err := bank.ActiveTarget()
	if err != nil {
		return nil, BadRequestError("No payout destination on record. Please complete your payment details.", nil)
	}

	gross := points
	tds, net := ComputeTDS(gross)

	var result TransferResult
	run := func() error {
		return config.DB.Transaction(func(tx *gorm.DB) error {
			wallet, err := debitWallet(tx, userID, points)
			if err != nil {
				return err
			}

			order := models.Order{
				UserID:          userID,
				OrderID:         GenerateOrderID(target.OrderPrefix()),
				TotalPoints:     points,
				Status:          models.OrderStatusCompleted,
				TransactionType: target.TransactionType(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			result = TransferResult{
				TransactionID:   order.OrderID,
				TransactionType: order.TransactionType,
				PointsDeducted:  points,
				GrossAmount:     gross,
				TDSAmount:       tds,
				NetAmount:       net,
				RemainingPoints: wallet.Points,
				Destination:     target.Masked(),
			}
			return nil
		})
	}

	err = run()
	for attempt := 0; attempt < orderIDRetries-1 && errors.Is(err, gorm.ErrDuplicatedKey); attempt++ {
		LogError("Order id collision during transfer for user ID: %d, retrying", userID)
		err = run()
	}
	if err != nil {
		return nil, err
	}

	transaction := models.Transaction{
		UserID:          userID,
		TransactionType: result.TransactionType,
		Points:          -points,
		Amount:          gross,
		TDSPercentage:   models.TDSPercentage,
		TDSAmount:       tds,
		NetAmount:       net,
		Description:     target.Describe(net),
		Reference:       uuid.New().String(),
		Status:          models.TransactionStatusCompleted,
	}
	if err := config.DB.Create(&transaction).Error; err != nil {
		LogError("Transaction record error for user ID: %d, order %s: %v", userID, result.TransactionID, err)
	}

	return &result, nil
}

// debitWallet locks the wallet row, verifies the balance and applies the
// debit. Shared by every payout path so the locking discipline stays in
// one place.
func debitWallet(tx *gorm.DB, userID uint, points int) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Wallet not found", nil)
		}
		return nil, WrapError(err, "failed to load wallet")
	}

	if wallet.Points < points {
		return nil, InsufficientFundsError(wallet.Points, points)
	}

	wallet.Points -= points
	wallet.Redeemed += points
	if err := tx.Model(&models.Wallet{}).Where("id = ?", wallet.ID).
		Updates(map[string]interface{}{
			"points":   wallet.Points,
			"redeemed": wallet.Redeemed,
		}).Error; err != nil {
		return nil, WrapError(err, "failed to debit wallet")
	}

	return &wallet, nil
}

// CreditWallet adds points to the wallet (top-ups). Creates the wallet on
// first use like GetOrCreateWallet does.
func CreditWallet(userID uint, points int) (*models.Wallet, error) {
	wallet, err := GetOrCreateWallet(userID)
	if err != nil {
		return nil, err
	}

	if err := config.DB.Model(&models.Wallet{}).Where("id = ?", wallet.ID).
		UpdateColumn("points", gorm.Expr("points + ?", points)).Error; err != nil {
		return nil, WrapError(err, "failed to credit wallet")
	}
	wallet.Points += points

	return wallet, nil
}
