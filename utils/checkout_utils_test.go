package utils

import (
	"errors"
	"testing"

	"loyalty-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddToCartMergesSameProduct(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanupTestDB()

	userID := seedUserWallet(t, "9810000001", 1000)

	item, merged, err := AddToCart(userID, AddCartItemInput{
		ProductName: "Ghadi Detergent 1kg",
		Points:      50,
		Quantity:    2,
	})
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, 2, item.Quantity)

	// Same product again: quantities merge instead of duplicating the line.
	item, merged, err = AddToCart(userID, AddCartItemInput{
		ProductName: "Ghadi Detergent 1kg",
		Points:      50,
		Quantity:    3,
	})
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, 5, item.Quantity)

	summary, err := GetCartSummary(userID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 250, summary.TotalPoints)
}

func TestRemoveFromCartUnknownItem(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanupTestDB()

	userID := seedUserWallet(t, "9810000002", 1000)

	err := RemoveFromCart(userID, 424242)
	require.Error(t, err)
	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Cart item not found", appErr.Message)
}

func TestCheckout(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanupTestDB()

	userID := seedUserWallet(t, "9810000003", 1000)

	_, _, err := AddToCart(userID, AddCartItemInput{ProductName: "Ghadi Machine Wash 2L", Points: 100, Quantity: 2})
	require.NoError(t, err)
	_, _, err = AddToCart(userID, AddCartItemInput{ProductName: "Venus Soap", Points: 30, Quantity: 5})
	require.NoError(t, err)

	result, err := Checkout(userID, "12 Market Road, Delhi", "9876543210")
	require.NoError(t, err)
	assert.Equal(t, 350, result.TotalPoints)
	assert.Equal(t, 650, result.RemainingPoints)
	assert.Contains(t, result.OrderID, "ORD")

	// Wallet debited.
	wallet := walletFor(t, userID)
	assert.Equal(t, 650, wallet.Points)
	assert.Equal(t, 350, wallet.Redeemed)

	// Cart emptied.
	summary, err := GetCartSummary(userID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Count)

	// Order carries one snapshot per cart line with the derived brand.
	var order models.Order
	require.NoError(t, testDB.Preload("Items").Where("order_id = ?", result.OrderID).First(&order).Error)
	assert.Equal(t, models.TransactionTypeProduct, order.TransactionType)
	require.Len(t, order.Items, 2)
	brands := map[string]string{}
	for _, item := range order.Items {
		brands[item.ProductName] = item.Brand
	}
	assert.Equal(t, "Ghadi Machine Wash", brands["Ghadi Machine Wash 2L"])
	assert.Equal(t, "Venus", brands["Venus Soap"])
}

func TestCheckoutEmptyCart(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanupTestDB()

	userID := seedUserWallet(t, "9810000004", 1000)

	_, err := Checkout(userID, "12 Market Road", "9876543210")
	require.Error(t, err)
	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Cart is empty", appErr.Message)
}

func TestCheckoutRollsBackOnMidCommitFailure(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanupTestDB()

	userID := seedUserWallet(t, "9810000006", 1000)

	_, _, err := AddToCart(userID, AddCartItemInput{ProductName: "Ghadi Detergent 1kg", Points: 100, Quantity: 2})
	require.NoError(t, err)

	// Fail the order-item insert. That write happens after the wallet debit
	// and the order create inside the same transaction, so everything before
	// it must roll back too.
	require.NoError(t, testDB.Callback().Create().Before("gorm:create").
		Register("fail_order_item_insert", func(db *gorm.DB) {
			if db.Statement.Table == "order_items" {
				db.AddError(errors.New("order item insert rejected"))
			}
		}))
	defer testDB.Callback().Create().Remove("fail_order_item_insert")

	_, err = Checkout(userID, "12 Market Road", "9876543210")
	require.Error(t, err)

	// No partial state: wallet balance, cart rows and order count are all
	// exactly as before the attempt.
	wallet := walletFor(t, userID)
	assert.Equal(t, 1000, wallet.Points)
	assert.Equal(t, 0, wallet.Redeemed)

	summary, err := GetCartSummary(userID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 200, summary.TotalPoints)

	var orders int64
	testDB.Model(&models.Order{}).Where("user_id = ?", userID).Count(&orders)
	assert.Equal(t, int64(0), orders)
}

func TestCheckoutInsufficientFunds(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanupTestDB()

	userID := seedUserWallet(t, "9810000005", 100)

	_, _, err := AddToCart(userID, AddCartItemInput{ProductName: "Redchief Shoes", Points: 500, Quantity: 1})
	require.NoError(t, err)

	_, err = Checkout(userID, "12 Market Road", "9876543210")
	require.Error(t, err)
	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Message, "Insufficient")

	// Nothing committed: wallet and cart are exactly as before.
	wallet := walletFor(t, userID)
	assert.Equal(t, 100, wallet.Points)
	assert.Equal(t, 0, wallet.Redeemed)

	summary, err := GetCartSummary(userID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 500, summary.TotalPoints)

	var count int64
	testDB.Model(&models.Order{}).Where("user_id = ?", userID).Count(&count)
	assert.Equal(t, int64(0), count)
}
