// model/payment.go
package model

import "time"

type TransactionType string

const (
	TxDeposit    TransactionType = "deposit"
	TxListingFee TransactionType = "listing_fee"
	TxRental     TransactionType = "rental"
	TxRefund     TransactionType = "refund"
	TxWithdrawal TransactionType = "withdrawal"
	TxTopup      TransactionType = "topup"
)

// ValidTransactionType reports whether t is a known ledger entry type.
func ValidTransactionType(t TransactionType) bool {
	switch t {
	case TxDeposit, TxListingFee, TxRental, TxRefund, TxWithdrawal, TxTopup:
		return true
	}
	return false
}

// Credits reports whether the type increases the wallet balance.
// Everything else debits it.
func (t TransactionType) Credits() bool {
	return t == TxRefund || t == TxWithdrawal || t == TxTopup
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type Transaction struct {
	ID               int64           `json:"id"`
	UserID           int64           `json:"user_id"`
	Type             TransactionType `json:"type"`
	Amount           float64         `json:"amount"`
	Description      string          `json:"description"`
	Status           PaymentStatus   `json:"status"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentReference string          `json:"payment_reference"`
	RelatedID        *int64          `json:"related_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Wallet is the per-user stored-value balance, created lazily on first
// read or credit.
type Wallet struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Balance   float64   `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}
