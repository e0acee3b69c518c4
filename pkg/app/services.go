package app

import (
	"database/sql"

	"go.uber.org/dig"

	"github.com/evgeny-myasishchev/ledger.transactions-api/config"
	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/dal"
	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/transactions"
)

// Injector is a function that will inject desired services
// to a target function
type Injector func(function interface{}) error

// BootstrapServices setup di container with all app services
func BootstrapServices(appCfg *config.AppConfig) Injector {
	c := dig.New()

	c.Provide(func() (*sql.DB, error) {
		return sql.Open(appCfg.Storage.Driver.Value(), appCfg.Storage.DSN.Value())
	})

	c.Provide(func(db *sql.DB) (dal.Storage, error) {
		return dal.NewSQLStorage(dal.WithSQLDb(db))
	})

	c.Provide(func(storage dal.Storage) transactions.Service {
		return transactions.NewService(transactions.WithStorage(storage))
	})

	return func(function interface{}) error {
		return c.Invoke(function)
	}
}
