package api

import (
	"net/http"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/lib-core-golang/router"
)

const sessionCookieName = "sessionId"

type sessionConfig struct {
	ttl     time.Duration
	newUUID func() uuid.UUID
}

// resolve returns a session id taken from the request cookie.
// If the request carries none a new random session is minted and
// the response is instructed to set the cookie
func (cfg *sessionConfig) resolve(w http.ResponseWriter, req *http.Request) string {
	if cookie, err := req.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := cfg.newUUID().String()
	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookieName,
		Value:  sessionID,
		Path:   "/",
		MaxAge: int(cfg.ttl / time.Second),
	})
	return sessionID
}

type sessionHandlerFunc func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit, sessionID string) error

// requireSession wraps a handler and rejects requests that carry no session
// cookie. Read-only routes never mint a new session
func requireSession(next sessionHandlerFunc) router.ToolkitHandlerFunc {
	return func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit) error {
		cookie, err := req.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			return router.UnauthorizedError("Unauthorized.")
		}
		return next(w, req, h, cookie.Value)
	}
}
