package api

import (
	"net/http"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/lib-core-golang/diag"
	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/lib-core-golang/router"
	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/transactions"
	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/version"
)

var logger = diag.CreateLogger()

type routesConfig struct {
	svc     transactions.Service
	session *sessionConfig
}

// RoutesOpt is an option of transactions routes
type RoutesOpt func(cfg *routesConfig)

// WithService will set a transactions service instance for the routes
func WithService(svc transactions.Service) RoutesOpt {
	return func(cfg *routesConfig) {
		cfg.svc = svc
	}
}

// WithSessionTTL will set an expiry of a session cookie. Defaults to 7 days
func WithSessionTTL(ttl time.Duration) RoutesOpt {
	return func(cfg *routesConfig) {
		cfg.session.ttl = ttl
	}
}

func withNewSessionID(newUUID func() uuid.UUID) RoutesOpt {
	return func(cfg *routesConfig) {
		cfg.session.newUUID = newUUID
	}
}

// SetupRoutes registers transactions routes on a given router
func SetupRoutes(appRouter router.Router, opts ...RoutesOpt) {
	cfg := &routesConfig{
		session: &sessionConfig{
			ttl:     7 * 24 * time.Hour,
			newUUID: uuid.NewV4,
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// The literal segment has to be registered ahead of :id to win the match
	appRouter.Handle("GET", "/transactions/summary", getSummary(cfg))
	appRouter.Handle("GET", "/transactions/:id", getTransaction(cfg))
	appRouter.Handle("GET", "/transactions", listTransactions(cfg))
	appRouter.Handle("POST", "/transactions", createTransaction(cfg))
	appRouter.Handle("PUT", "/transactions/:id", updateTransaction(cfg))

	appRouter.Handle("GET", "/v1/healthcheck/ping", ping())
}

func listTransactions(cfg *routesConfig) router.ToolkitHandlerFunc {
	return requireSession(func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit, sessionID string) error {
		trxs, err := cfg.svc.List(req.Context(), sessionID)
		if err != nil {
			return err
		}
		return h.WriteJSON(map[string]interface{}{"transactions": trxs})
	})
}

func getTransaction(cfg *routesConfig) router.ToolkitHandlerFunc {
	return requireSession(func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit, sessionID string) error {
		var params struct {
			ID uuid.UUID
		}
		if err := h.BindParams().
			PathParam("id").UUID(&params.ID).
			Validate(&params); err != nil {
			return err
		}

		trx, err := cfg.svc.Get(req.Context(), params.ID.String(), sessionID)
		if err != nil {
			return err
		}
		return h.WriteJSON(map[string]interface{}{"transaction": trx})
	})
}

func getSummary(cfg *routesConfig) router.ToolkitHandlerFunc {
	return requireSession(func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit, sessionID string) error {
		summary, err := cfg.svc.Summary(req.Context(), sessionID)
		if err != nil {
			return err
		}
		return h.WriteJSON(map[string]interface{}{"summary": summary})
	})
}

type transactionPayload struct {
	Title  string   `json:"title" validate:"required"`
	Amount *float64 `json:"amount" validate:"required"`
	Type   string   `json:"type" validate:"required,oneof=credit debit"`
}

func createTransaction(cfg *routesConfig) router.ToolkitHandlerFunc {
	return func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit) error {
		var payload transactionPayload

		// Has to be validated ahead of session resolution so rejected
		// requests get no cookie side effect
		if err := h.BindPayload(&payload); err != nil {
			return err
		}

		sessionID := cfg.session.resolve(w, req)
		cmd := transactions.Command{
			Title:  payload.Title,
			Amount: *payload.Amount,
			Type:   transactions.Type(payload.Type),
		}
		if err := cfg.svc.Create(req.Context(), sessionID, &cmd); err != nil {
			return err
		}
		return h.WriteStatus(http.StatusCreated)
	}
}

func updateTransaction(cfg *routesConfig) router.ToolkitHandlerFunc {
	return func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit) error {
		var payload updateTransactionPayload
		if err := h.BindPayload(&payload); err != nil {
			return err
		}

		// Unlike create this route reports only a failing amount, any other
		// invalid field ends up with an empty 400 response
		if fieldErr := payload.validate(); fieldErr != nil {
			logger.WithError(fieldErr).Info(req.Context(), "Rejecting update payload")
			message := ""
			if fieldErr.field == "amount" {
				message = "Invalid amount"
			}
			w.WriteHeader(http.StatusBadRequest)
			_, err := w.Write([]byte(message))
			return err
		}

		var params struct {
			ID uuid.UUID
		}
		if err := h.BindParams().
			PathParam("id").UUID(&params.ID).
			Validate(&params); err != nil {
			return err
		}

		// The session is resolved for cookie parity with create but the
		// update itself is not scoped by it (see DESIGN.md)
		cfg.session.resolve(w, req)

		cmd := transactions.Command{
			Title:  payload.Title,
			Amount: *payload.Amount,
			Type:   transactions.Type(payload.Type),
		}
		trx, err := cfg.svc.Update(req.Context(), params.ID.String(), &cmd)
		if err != nil {
			return err
		}
		return h.WriteJSON(map[string]interface{}{"transaction": trx})
	}
}

func ping() router.ToolkitHandlerFunc {
	return func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit) error {
		return h.WriteJSON(map[string]interface{}{
			"ok":      true,
			"version": version.Version,
		})
	}
}
