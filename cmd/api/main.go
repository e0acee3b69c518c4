package main

import (
	"context"
	"os"
	"time"

	"github.com/evgeny-myasishchev/ledger.transactions-api/config"
	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/api"
	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/app"
	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/lib-core-golang/diag"
	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/lib-core-golang/router"
	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/transactions"
)

var logger = diag.CreateLogger()

func main() {
	appCfg := config.LoadAppConfig()

	diag.SetupLoggingSystem(func(setup diag.LoggingSystemSetup) {
		setup.SetLogLevel(appCfg.Log.Level.Value())
	})

	injector := app.BootstrapServices(appCfg)
	ctx := context.Background()

	port := appCfg.Server.Port.Value()
	sessionTTL := time.Duration(appCfg.Session.TTLDays.Value()) * 24 * time.Hour

	if err := injector(func(svc transactions.Service) error {
		logger.Info(ctx, "Starting api server on port %v", port)
		return router.StartServer(port, func(r router.Router) {
			r.Use(diag.NewRequestIDMiddleware())
			r.Use(diag.NewLogRequestsMiddleware())
			api.SetupRoutes(r,
				api.WithService(svc),
				api.WithSessionTTL(sessionTTL),
			)
		})
	}); err != nil {
		logger.WithError(err).Error(ctx, "Failed to start api server")
		os.Exit(1)
	}
}
