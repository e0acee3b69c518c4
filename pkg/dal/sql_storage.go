package dal

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	// This has to be here to let go mods work work
	_ "github.com/mattn/go-sqlite3"

	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/lib-core-golang/diag"
)

var logger = diag.CreateLogger()

type sqlStorage struct {
	db *sql.DB
}

func (s *sqlStorage) Setup(ctx context.Context) error {
	logger.Info(ctx, "Setup SQL storage")
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS transactions(
	id         nvarchar(255) NOT NULL PRIMARY KEY,
	title      nvarchar(255) NOT NULL,
	amount     decimal(13,2) NOT NULL,
	session_id nvarchar(255) NOT NULL,
	created_at timestamp NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	return errors.Wrap(err, "Failed to setup storage")
}

func (s *sqlStorage) SaveTransaction(ctx context.Context, trx *TransactionDTO) error {
	if _, err := s.db.ExecContext(ctx, `
	INSERT INTO transactions(
		id,
		title,
		amount,
		session_id
	)
	VALUES($1, $2, $3, $4)
	`, trx.ID, trx.Title, trx.Amount, trx.SessionID); err != nil {
		return err
	}
	return nil
}

func (s *sqlStorage) UpdateTransaction(ctx context.Context, id string, title string, amount float64) error {
	// sqlite binds $N by order of first appearance so placeholders
	// have to stay ascending
	if _, err := s.db.ExecContext(ctx, `
	UPDATE transactions
	SET title=$1, amount=$2
	WHERE id=$3
	`, title, amount, id); err != nil {
		return err
	}
	return nil
}

func scanTransaction(res *sql.Rows) (*TransactionDTO, error) {
	result := &TransactionDTO{}
	if err := res.Scan(
		&result.ID,
		&result.Title,
		&result.Amount,
		&result.SessionID,
		&result.CreatedAt,
	); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sqlStorage) GetTransaction(ctx context.Context, id string, sessionID string) (*TransactionDTO, error) {
	res, err := s.db.QueryContext(ctx, `
	SELECT
		id, title, amount, session_id, created_at
	FROM transactions WHERE id = $1 AND session_id = $2`, id, sessionID)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	if !res.Next() {
		return nil, res.Err()
	}
	return scanTransaction(res)
}

func (s *sqlStorage) GetTransactionByID(ctx context.Context, id string) (*TransactionDTO, error) {
	res, err := s.db.QueryContext(ctx, `
	SELECT
		id, title, amount, session_id, created_at
	FROM transactions WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	if !res.Next() {
		return nil, res.Err()
	}
	return scanTransaction(res)
}

func (s *sqlStorage) ListTransactions(ctx context.Context, sessionID string) ([]TransactionDTO, error) {
	res, err := s.db.QueryContext(ctx, `
	SELECT
		id, title, amount, session_id, created_at
	FROM transactions WHERE session_id = $1`, sessionID)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	result := []TransactionDTO{}
	for res.Next() {
		trx, err := scanTransaction(res)
		if err != nil {
			return nil, err
		}
		result = append(result, *trx)
	}
	return result, res.Err()
}

func (s *sqlStorage) SumAmounts(ctx context.Context, sessionID string) (float64, error) {
	// COALESCE so an empty session sums to 0 rather than NULL
	row := s.db.QueryRowContext(ctx, `
	SELECT COALESCE(SUM(amount), 0)
	FROM transactions WHERE session_id = $1`, sessionID)

	var sum float64
	if err := row.Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

// SQLStorageOpt is an option of SQL storage
type SQLStorageOpt func(s *sqlStorage)

// WithSQLDb will set an explicit db instance for a storage
func WithSQLDb(db *sql.DB) SQLStorageOpt {
	return func(s *sqlStorage) {
		s.db = db
	}
}

// NewSQLStorage returns an instance of a local storage
func NewSQLStorage(opts ...SQLStorageOpt) (Storage, error) {
	storage := &sqlStorage{}
	for _, opt := range opts {
		opt(storage)
	}
	return storage, nil
}
