package transactions

import (
	"context"
	"database/sql"
	"testing"

	"github.com/bxcodec/faker/v3"
	_ "github.com/mattn/go-sqlite3"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/dal"
)

func newTestService(t *testing.T, opts ...ServiceOpt) (Service, dal.Storage, func()) {
	db, err := sql.Open("sqlite3", ":memory:")
	if !assert.NoError(t, err) {
		panic(err)
	}
	db.SetMaxOpenConns(1)

	storage, err := dal.NewSQLStorage(dal.WithSQLDb(db))
	if !assert.NoError(t, err) {
		panic(err)
	}
	if err := storage.Setup(context.Background()); !assert.NoError(t, err) {
		panic(err)
	}
	svc := NewService(append([]ServiceOpt{WithStorage(storage)}, opts...)...)
	return svc, storage, func() { db.Close() }
}

func Test_service_Create(t *testing.T) {
	type args struct {
		cmd *Command
	}
	type testCase struct {
		name   string
		args   args
		assert func(t *testing.T, got *dal.TransactionDTO)
	}
	tests := []func() testCase{
		func() testCase {
			title := "trx-" + faker.Word()
			return testCase{
				name: "credit persists amount as is",
				args: args{cmd: &Command{Title: title, Amount: 50, Type: TypeCredit}},
				assert: func(t *testing.T, got *dal.TransactionDTO) {
					assert.Equal(t, title, got.Title)
					assert.Equal(t, float64(50), got.Amount)
				},
			}
		},
		func() testCase {
			return testCase{
				name: "debit persists negated amount",
				args: args{cmd: &Command{Title: "trx-" + faker.Word(), Amount: 100, Type: TypeDebit}},
				assert: func(t *testing.T, got *dal.TransactionDTO) {
					assert.Equal(t, float64(-100), got.Amount)
				},
			}
		},
	}
	for _, tt := range tests {
		tt := tt()
		t.Run(tt.name, func(t *testing.T) {
			trxID := uuid.NewV4()
			svc, storage, cleanup := newTestService(t, WithNewID(func() uuid.UUID { return trxID }))
			defer cleanup()

			sessionID := "session-" + faker.Word()
			if err := svc.Create(context.Background(), sessionID, tt.args.cmd); !assert.NoError(t, err) {
				return
			}

			got, err := storage.GetTransaction(context.Background(), trxID.String(), sessionID)
			if !assert.NoError(t, err) || !assert.NotNil(t, got) {
				return
			}
			assert.Equal(t, sessionID, got.SessionID)
			tt.assert(t, got)
		})
	}
}

func Test_service_Update(t *testing.T) {
	t.Run("replace title and amount", func(t *testing.T) {
		svc, _, cleanup := newTestService(t)
		defer cleanup()

		sessionID := "session-" + faker.Word()
		if err := svc.Create(context.Background(), sessionID, &Command{
			Title: "trx-" + faker.Word(), Amount: 50, Type: TypeCredit,
		}); !assert.NoError(t, err) {
			return
		}
		existing, err := svc.List(context.Background(), sessionID)
		if !assert.NoError(t, err) || !assert.Len(t, existing, 1) {
			return
		}

		newTitle := "updated-" + faker.Word()
		got, err := svc.Update(context.Background(), existing[0].ID, &Command{
			Title: newTitle, Amount: 100, Type: TypeDebit,
		})
		if !assert.NoError(t, err) || !assert.NotNil(t, got) {
			return
		}
		assert.Equal(t, existing[0].ID, got.ID)
		assert.Equal(t, newTitle, got.Title)
		assert.Equal(t, float64(-100), got.Amount)
		assert.Equal(t, sessionID, got.SessionID)
	})

	t.Run("unknown id matches nothing", func(t *testing.T) {
		svc, _, cleanup := newTestService(t)
		defer cleanup()

		got, err := svc.Update(context.Background(), uuid.NewV4().String(), &Command{
			Title: "trx-" + faker.Word(), Amount: 100, Type: TypeCredit,
		})
		if !assert.NoError(t, err) {
			return
		}
		assert.Nil(t, got)
	})
}

func Test_service_Get(t *testing.T) {
	t.Run("scoped by session", func(t *testing.T) {
		svc, _, cleanup := newTestService(t)
		defer cleanup()

		sessionID := "session-" + faker.Word()
		if err := svc.Create(context.Background(), sessionID, &Command{
			Title: "trx-" + faker.Word(), Amount: 50, Type: TypeCredit,
		}); !assert.NoError(t, err) {
			return
		}
		existing, err := svc.List(context.Background(), sessionID)
		if !assert.NoError(t, err) || !assert.Len(t, existing, 1) {
			return
		}

		got, err := svc.Get(context.Background(), existing[0].ID, sessionID)
		if !assert.NoError(t, err) || !assert.NotNil(t, got) {
			return
		}
		assert.Equal(t, existing[0], *got)

		foreign, err := svc.Get(context.Background(), existing[0].ID, "other-session-"+faker.Word())
		if !assert.NoError(t, err) {
			return
		}
		assert.Nil(t, foreign)
	})
}

func Test_service_Summary(t *testing.T) {
	t.Run("sum of signed amounts", func(t *testing.T) {
		svc, _, cleanup := newTestService(t)
		defer cleanup()

		sessionID := "session-" + faker.Word()
		cmds := []*Command{
			{Title: "trx-" + faker.Word(), Amount: 500, Type: TypeCredit},
			{Title: "trx-" + faker.Word(), Amount: 100, Type: TypeDebit},
		}
		for _, cmd := range cmds {
			if err := svc.Create(context.Background(), sessionID, cmd); !assert.NoError(t, err) {
				return
			}
		}

		got, err := svc.Summary(context.Background(), sessionID)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, &Summary{Amount: 400}, got)
	})

	t.Run("zero for empty session", func(t *testing.T) {
		svc, _, cleanup := newTestService(t)
		defer cleanup()

		got, err := svc.Summary(context.Background(), "session-"+faker.Word())
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, &Summary{Amount: 0}, got)
	})
}

func TestSignedAmount(t *testing.T) {
	assert.Equal(t, float64(50), SignedAmount(50, TypeCredit))
	assert.Equal(t, float64(-50), SignedAmount(50, TypeDebit))
}
