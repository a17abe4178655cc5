package utils

import (
	"log"
	"os"
	"testing"

	"loyalty-backend/config"
	"loyalty-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NOTE: The engine tests require a running Postgres instance reachable via
// DATABASE_URL. Without it they skip; the pure computation tests always run.

var testDB *gorm.DB

func setupTestDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("Skipping DB tests: DATABASE_URL not set")
		return
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		testDB = nil
		return
	}

	testDB.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Transaction{},
		&models.BankDetail{},
	)

	// The engines go through the package-level handle.
	config.DB = testDB
}

func cleanupTestDB() {
	if testDB == nil {
		return
	}
	testDB.Exec("DELETE FROM order_items")
	testDB.Exec("DELETE FROM orders")
	testDB.Exec("DELETE FROM transactions")
	testDB.Exec("DELETE FROM cart_items")
	testDB.Exec("DELETE FROM bank_details")
	testDB.Exec("DELETE FROM wallets")
	testDB.Exec("DELETE FROM users")
}

func TestMain(m *testing.M) {
	setupTestDB()
	code := m.Run()
	cleanupTestDB()
	os.Exit(code)
}

// seedUserWallet creates a user row plus a wallet with the given balance.
func seedUserWallet(t *testing.T, phone string, points int) uint {
	t.Helper()
	user := models.User{Phone: phone, FullName: "Test Member", OTPVerified: true}
	require.NoError(t, testDB.Create(&user).Error)
	wallet := models.Wallet{UserID: user.ID, Points: points}
	require.NoError(t, testDB.Create(&wallet).Error)
	return user.ID
}

func walletFor(t *testing.T, userID uint) models.Wallet {
	t.Helper()
	var wallet models.Wallet
	require.NoError(t, testDB.Where("user_id = ?", userID).First(&wallet).Error)
	return wallet
}

func TestComputeTDS(t *testing.T) {
	tds, net := ComputeTDS(1000)
	assert.Equal(t, 150, tds)
	assert.Equal(t, 850, net)

	tds, net = ComputeTDS(999)
	assert.Equal(t, 149, tds) // floor, never round up
	assert.Equal(t, 850, net)

	tds, net = ComputeTDS(0)
	assert.Equal(t, 0, tds)
	assert.Equal(t, 0, net)
}

func TestComputeTDSConservation(t *testing.T) {
	for _, gross := range []int{1, 7, 100, 333, 1000, 99999} {
		tds, net := ComputeTDS(gross)
		assert.Equal(t, gross, tds+net, "gross %d must split exactly", gross)
	}
}

func TestGetOrCreateWalletDefaultsBalance(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanupTestDB()

	user := models.User{Phone: "9800000001", OTPVerified: true}
	require.NoError(t, testDB.Create(&user).Error)

	wallet, err := GetOrCreateWallet(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultWalletPoints, wallet.Points)
	assert.Equal(t, 0, wallet.Redeemed)

	// Second call returns the same wallet, no double seeding.
	again, err := GetOrCreateWallet(user.ID)
	require.NoError(t, err)
	assert.Equal(t, wallet.ID, again.ID)
}

func TestRedeemPoints(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanupTestDB()

	userID := seedUserWallet(t, "9800000002", 1000)

	result, err := RedeemPoints(userID, 400)
	require.NoError(t, err)
	assert.Equal(t, 600, result.NewBalance)
	assert.Contains(t, result.OrderID, "CSH")

	wallet := walletFor(t, userID)
	assert.Equal(t, 600, wallet.Points)
	assert.Equal(t, 400, wallet.Redeemed)

	var order models.Order
	require.NoError(t, testDB.Where("user_id = ? AND order_id = ?", userID, result.OrderID).First(&order).Error)
	assert.Equal(t, models.TransactionTypeCashout, order.TransactionType)
	assert.Equal(t, 400, order.TotalPoints)
}

func TestRedeemPointsInsufficient(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanupTestDB()

	userID := seedUserWallet(t, "9800000003", 100)

	_, err := RedeemPoints(userID, 500)
	require.Error(t, err)
	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Message, "Insufficient")

	// Failed redemption leaves the wallet untouched.
	wallet := walletFor(t, userID)
	assert.Equal(t, 100, wallet.Points)
	assert.Equal(t, 0, wallet.Redeemed)

	var count int64
	testDB.Model(&models.Order{}).Where("user_id = ?", userID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestTransferBankPayout(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanupTestDB()

	userID := seedUserWallet(t, "9800000004", 1000)
	bank := models.BankDetail{
		UserID:            userID,
		PaymentMethod:     models.PaymentMethodBank,
		AccountHolderName: "Test Member",
		BankName:          "HDFC Bank",
		AccountNumber:     "123456789012",
		IFSC:              "HDFC0001234",
	}
	require.NoError(t, testDB.Create(&bank).Error)

	result, err := Transfer(userID, 1000, "")
	require.NoError(t, err)

	// The full gross leaves the wallet; TDS is withheld from the external
	// payment, not from the debit.
	assert.Equal(t, 1000, result.GrossAmount)
	assert.Equal(t, 150, result.TDSAmount)
	assert.Equal(t, 850, result.NetAmount)
	assert.Equal(t, 0, result.RemainingPoints)
	assert.Equal(t, models.TransactionTypeBankTransfer, result.TransactionType)
	assert.Contains(t, result.TransactionID, "TXN")
	assert.Contains(t, result.Destination, "****9012")

	wallet := walletFor(t, userID)
	assert.Equal(t, 0, wallet.Points)
	assert.Equal(t, 1000, wallet.Redeemed)

	var tx models.Transaction
	require.NoError(t, testDB.Where("user_id = ?", userID).First(&tx).Error)
	assert.Equal(t, -1000, tx.Points)
	assert.Equal(t, 1000, tx.Amount)
	assert.Equal(t, 150, tx.TDSAmount)
	assert.Equal(t, 850, tx.NetAmount)
	assert.NotEmpty(t, tx.Reference)
}

func TestTransferForcedUPIMethod(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanupTestDB()

	userID := seedUserWallet(t, "9800000005", 500)
	bank := models.BankDetail{
		UserID:        userID,
		PaymentMethod: models.PaymentMethodBank, // active method is bank
		AccountNumber: "123456789012",
		IFSC:          "HDFC0001234",
		UPIID:         "test.member@okaxis",
	}
	require.NoError(t, testDB.Create(&bank).Error)

	// A UPI transfer request overrides the record's active method.
	result, err := Transfer(userID, 200, models.PaymentMethodUPI)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionTypeUPITransfer, result.TransactionType)
	assert.Contains(t, result.TransactionID, "UPI")
	assert.Equal(t, 300, result.RemainingPoints)
}

func TestTransferNoBankDetails(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanupTestDB()

	userID := seedUserWallet(t, "9800000006", 500)

	_, err := Transfer(userID, 100, "")
	require.Error(t, err)
	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Message, "Bank details not found")
}

func TestCreditWallet(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanupTestDB()

	userID := seedUserWallet(t, "9800000007", 100)

	wallet, err := CreditWallet(userID, 250)
	require.NoError(t, err)
	assert.Equal(t, 350, wallet.Points)

	stored := walletFor(t, userID)
	assert.Equal(t, 350, stored.Points)
}
