package dal

import (
	"context"
	"time"
)

// TransactionDTO is a DTO of a single ledger entry
type TransactionDTO struct {
	ID        string
	Title     string
	Amount    float64
	SessionID string
	CreatedAt time.Time
}

// Storage is a persistance layer
type Storage interface {
	Setup(ctx context.Context) error

	SaveTransaction(ctx context.Context, trx *TransactionDTO) error

	// UpdateTransaction does a full replace of title and amount of a row matching id.
	// It is not scoped by session on purpose, see DESIGN.md
	UpdateTransaction(ctx context.Context, id string, title string, amount float64) error

	// GetTransaction returns a transaction matching both id and sessionID
	// or nil if there is no match
	GetTransaction(ctx context.Context, id string, sessionID string) (*TransactionDTO, error)

	// GetTransactionByID returns a transaction matching id regardless of an owning
	// session or nil if there is no match
	GetTransactionByID(ctx context.Context, id string) (*TransactionDTO, error)

	ListTransactions(ctx context.Context, sessionID string) ([]TransactionDTO, error)

	// SumAmounts returns an arithmetic sum of amounts owned by a given session.
	// Zero if the session owns no transactions
	SumAmounts(ctx context.Context, sessionID string) (float64, error)
}
