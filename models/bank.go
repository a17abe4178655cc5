package models

import (
	"errors"
	"fmt"
	"time"
)

// Payment method constants
const (
	PaymentMethodBank = "BANK"
	PaymentMethodUPI  = "UPI"
)

// Validation status constants. Any edit to the underlying fields moves the
// record back to PENDING.
const (
	ValidationStatusPending   = "PENDING"
	ValidationStatusValidated = "VALIDATED"
	ValidationStatusFailed    = "FAILED"
)

// BankDetail stores a user's payout destination. The row keeps both the bank
// and UPI field groups; PaymentMethod selects which one is active. Domain
// code never reads the flat fields directly - it goes through PayoutTarget.
type BankDetail struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `json:"user_id" gorm:"uniqueIndex;not null"`

	PaymentMethod string `json:"payment_method" gorm:"default:BANK;size:10"`

	// Bank fields
	AccountHolderName string `json:"account_holder_name"`
	BankName          string `json:"bank_name"`
	AccountNumber     string `json:"account_number" gorm:"size:50"`
	IFSC              string `json:"ifsc" gorm:"size:11"`
	ChequeImage       string `gorm:"type:text" json:"cheque_image,omitempty"`

	// UPI fields
	UPIID     string `json:"upi_id"`
	UPIQRCode string `gorm:"type:text" json:"upi_qr_code,omitempty"`

	IsValidated      bool   `json:"is_validated" gorm:"default:false"`
	ValidationStatus string `json:"validation_status" gorm:"default:PENDING;size:20"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrNoPayoutTarget is returned when the active payment method has not been
// filled in yet.
var ErrNoPayoutTarget = errors.New("no payout destination on record")

// PayoutTarget is the tagged-union view of a BankDetail: exactly one of
// BankTarget or UPITarget, never a half-filled flat record.
type PayoutTarget interface {
	// TransactionType returns the order/transaction type for a payout to
	// this destination.
	TransactionType() string
	// OrderPrefix returns the order id prefix used for payouts here.
	OrderPrefix() string
	// Masked returns a redacted description of the destination safe to show
	// in transaction history.
	Masked() string
	// Describe builds the human-readable audit line for a payout of amount.
	Describe(amount int) string
}

// BankTarget is a validated-shape bank account destination.
type BankTarget struct {
	AccountHolderName string
	BankName          string
	AccountNumber     string
	IFSC              string
}

func (t BankTarget) TransactionType() string { return TransactionTypeBankTransfer }
func (t BankTarget) OrderPrefix() string     { return "TXN" }

func (t BankTarget) Masked() string {
	acc := t.AccountNumber
	if len(acc) > 4 {
		acc = acc[len(acc)-4:]
	}
	return fmt.Sprintf("%s A/C ****%s", t.BankName, acc)
}

func (t BankTarget) Describe(amount int) string {
	return fmt.Sprintf("Bank transfer of Rs.%d to %s", amount, t.Masked())
}

// UPITarget is a UPI handle destination.
type UPITarget struct {
	UPIID string
}

func (t UPITarget) TransactionType() string { return TransactionTypeUPITransfer }
func (t UPITarget) OrderPrefix() string     { return "UPI" }

func (t UPITarget) Masked() string {
	return fmt.Sprintf("UPI %s", maskUPIID(t.UPIID))
}

func (t UPITarget) Describe(amount int) string {
	return fmt.Sprintf("UPI transfer of Rs.%d to %s", amount, t.Masked())
}

// maskUPIID hides the middle of the local part: "john.smith@okaxis"
// becomes "jo******th@okaxis".
func maskUPIID(id string) string {
	for i := 0; i < len(id); i++ {
		if id[i] == '@' {
			local, handle := id[:i], id[i:]
			if len(local) <= 4 {
				return local + handle
			}
			masked := local[:2]
			for j := 2; j < len(local)-2; j++ {
				masked += "*"
			}
			return masked + local[len(local)-2:] + handle
		}
	}
	return id
}

// ActiveTarget converts the flat record into its tagged-union form based on
// the PaymentMethod flag. Missing fields on the active branch yield
// ErrNoPayoutTarget rather than a half-usable value.
func (b *BankDetail) ActiveTarget() (PayoutTarget, error) {
	switch b.PaymentMethod {
	case PaymentMethodUPI:
		if b.UPIID == "" {
			return nil, ErrNoPayoutTarget
		}
		return UPITarget{UPIID: b.UPIID}, nil
	default:
		if b.AccountNumber == "" || b.IFSC == "" {
			return nil, ErrNoPayoutTarget
		}
		return BankTarget{
			AccountHolderName: b.AccountHolderName,
			BankName:          b.BankName,
			AccountNumber:     b.AccountNumber,
			IFSC:              b.IFSC,
		}, nil
	}
}
