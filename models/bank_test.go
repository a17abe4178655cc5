package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveTargetBank(t *testing.T) {
	detail := BankDetail{
		PaymentMethod:     PaymentMethodBank,
		AccountHolderName: "John Smith",
		BankName:          "HDFC Bank",
		AccountNumber:     "123456789012",
		IFSC:              "HDFC0001234",
	}

	target, err := detail.ActiveTarget()
	require.NoError(t, err)

	bank, ok := target.(BankTarget)
	require.True(t, ok)
	assert.Equal(t, "123456789012", bank.AccountNumber)
	assert.Equal(t, TransactionTypeBankTransfer, target.TransactionType())
	assert.Equal(t, "TXN", target.OrderPrefix())
	assert.Equal(t, "HDFC Bank A/C ****9012", target.Masked())
	assert.Equal(t, "Bank transfer of Rs.850 to HDFC Bank A/C ****9012", target.Describe(850))
}

func TestActiveTargetUPI(t *testing.T) {
	detail := BankDetail{
		PaymentMethod: PaymentMethodUPI,
		UPIID:         "john.smith@okaxis",
	}

	target, err := detail.ActiveTarget()
	require.NoError(t, err)

	_, ok := target.(UPITarget)
	require.True(t, ok)
	assert.Equal(t, TransactionTypeUPITransfer, target.TransactionType())
	assert.Equal(t, "UPI", target.OrderPrefix())
	assert.Equal(t, "UPI jo******th@okaxis", target.Masked())
}

func TestActiveTargetIncomplete(t *testing.T) {
	// Bank method with no account on file.
	detail := BankDetail{PaymentMethod: PaymentMethodBank}
	_, err := detail.ActiveTarget()
	assert.ErrorIs(t, err, ErrNoPayoutTarget)

	// UPI method with no handle.
	detail = BankDetail{PaymentMethod: PaymentMethodUPI}
	_, err = detail.ActiveTarget()
	assert.ErrorIs(t, err, ErrNoPayoutTarget)
}

func TestActiveTargetIgnoresInactiveBranch(t *testing.T) {
	// A filled UPI handle does not rescue an empty bank branch.
	detail := BankDetail{
		PaymentMethod: PaymentMethodBank,
		UPIID:         "john.smith@okaxis",
	}
	_, err := detail.ActiveTarget()
	assert.ErrorIs(t, err, ErrNoPayoutTarget)
}

func TestMaskUPIID(t *testing.T) {
	assert.Equal(t, "jo******th@okaxis", maskUPIID("john.smith@okaxis"))
	// Short local parts are left alone rather than masked to nothing.
	assert.Equal(t, "ab@ybl", maskUPIID("ab@ybl"))
	assert.Equal(t, "abcd@ybl", maskUPIID("abcd@ybl"))
	// No separator: returned unchanged.
	assert.Equal(t, "nothandle", maskUPIID("nothandle"))
}

func TestBankTargetMaskedShortAccount(t *testing.T) {
	target := BankTarget{BankName: "SBI", AccountNumber: "1234"}
	assert.Equal(t, "SBI A/C ****1234", target.Masked())
}
