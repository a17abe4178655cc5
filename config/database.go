package config

import (
	"fmt"
	"log"

	"loyalty-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB initializes the database connection and performs migrations.
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.KYCDocument{},
		&models.BankDetail{},
		&models.Wallet{},
		&models.WalletTopupOrder{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Transaction{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	ensureWalletBalanceConstraint()
}

// ensureWalletBalanceConstraint adds the non-negative balance check on
// wallets for schemas migrated before the check tag existed. Every debit
// also re-validates in code, this is the backstop at the store level.
func ensureWalletBalanceConstraint() {
	var constraintExists bool
	err := DB.Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM information_schema.table_constraints
			WHERE constraint_name = 'chk_wallets_points'
		)
	`).Scan(&constraintExists).Error
	if err != nil {
		log.Printf("Failed to check wallet points constraint: %v", err)
		return
	}

	if !constraintExists {
		err = DB.Exec(`ALTER TABLE wallets ADD CONSTRAINT chk_wallets_points CHECK (points >= 0)`).Error
		if err != nil {
			log.Printf("Failed to add wallet points constraint: %v", err)
		}
	}
}
