package transactions

import "time"

// Type represents a transaction type. The type itself is never persisted,
// it only carries the sign of the amount
type Type string

const (
	// TypeCredit is a type of transactions that increase the balance
	TypeCredit Type = "credit"

	// TypeDebit is a type of transactions that decrease the balance
	TypeDebit Type = "debit"
)

// Transaction represents a single ledger entry owned by a session
type Transaction struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary represents an aggregate over all transactions owned by a session
type Summary struct {
	Amount float64 `json:"amount"`
}

// SignedAmount returns the amount with a sign reflecting given type.
// Credit amounts are stored as is, debit amounts are negated
func SignedAmount(amount float64, trxType Type) float64 {
	if trxType == TypeDebit {
		return -amount
	}
	return amount
}
