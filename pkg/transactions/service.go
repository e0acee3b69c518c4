package transactions

import (
	"context"

	uuid "github.com/satori/go.uuid"

	"github.com/pkg/errors"

	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/dal"
)

// Command holds an input to record or replace a transaction
type Command struct {
	Title  string
	Amount float64
	Type   Type
}

// Service provides operations over session scoped transactions
type Service interface {
	// Create will persist a new transaction with a freshly generated id
	Create(ctx context.Context, sessionID string, cmd *Command) error

	// Update does a full replace of title and amount of a transaction matching id.
	// Returns the updated transaction or nil if id matched nothing
	Update(ctx context.Context, id string, cmd *Command) (*Transaction, error)

	// List returns all transactions owned by a given session
	List(ctx context.Context, sessionID string) ([]Transaction, error)

	// Get returns a transaction matching both id and session or nil
	Get(ctx context.Context, id string, sessionID string) (*Transaction, error)

	// Summary returns a sum of all amounts owned by a given session
	Summary(ctx context.Context, sessionID string) (*Summary, error)
}

type service struct {
	storage dal.Storage
	newID   func() uuid.UUID
}

func fromDTO(dto *dal.TransactionDTO) *Transaction {
	return &Transaction{
		ID:        dto.ID,
		Title:     dto.Title,
		Amount:    dto.Amount,
		SessionID: dto.SessionID,
		CreatedAt: dto.CreatedAt,
	}
}

func (s *service) Create(ctx context.Context, sessionID string, cmd *Command) error {
	trx := &dal.TransactionDTO{
		ID:        s.newID().String(),
		Title:     cmd.Title,
		Amount:    SignedAmount(cmd.Amount, cmd.Type),
		SessionID: sessionID,
	}
	return errors.Wrap(s.storage.SaveTransaction(ctx, trx), "Failed to save transaction")
}

func (s *service) Update(ctx context.Context, id string, cmd *Command) (*Transaction, error) {
	if err := s.storage.UpdateTransaction(ctx, id, cmd.Title, SignedAmount(cmd.Amount, cmd.Type)); err != nil {
		return nil, errors.Wrap(err, "Failed to update transaction")
	}
	dto, err := s.storage.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to fetch updated transaction")
	}
	if dto == nil {
		return nil, nil
	}
	return fromDTO(dto), nil
}

func (s *service) List(ctx context.Context, sessionID string) ([]Transaction, error) {
	dtos, err := s.storage.ListTransactions(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list transactions")
	}
	result := make([]Transaction, 0, len(dtos))
	for i := range dtos {
		result = append(result, *fromDTO(&dtos[i]))
	}
	return result, nil
}

func (s *service) Get(ctx context.Context, id string, sessionID string) (*Transaction, error) {
	dto, err := s.storage.GetTransaction(ctx, id, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to get transaction")
	}
	if dto == nil {
		return nil, nil
	}
	return fromDTO(dto), nil
}

func (s *service) Summary(ctx context.Context, sessionID string) (*Summary, error) {
	sum, err := s.storage.SumAmounts(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to sum transactions")
	}
	return &Summary{Amount: sum}, nil
}

// ServiceOpt is an option of a transactions service
type ServiceOpt func(s *service)

// WithStorage will set a storage instance for a service
func WithStorage(storage dal.Storage) ServiceOpt {
	return func(s *service) {
		s.storage = storage
	}
}

// WithNewID will set an explicit id generator. Defaults to random UUID v4
func WithNewID(newID func() uuid.UUID) ServiceOpt {
	return func(s *service) {
		s.newID = newID
	}
}

// NewService returns an instance of a transactions service
func NewService(opts ...ServiceOpt) Service {
	svc := &service{newID: uuid.NewV4}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}
