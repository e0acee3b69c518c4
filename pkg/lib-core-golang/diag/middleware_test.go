package diag

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bxcodec/faker/v3"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewRequestIDMiddleware(t *testing.T) {
	t.Run("honor incoming request id", func(t *testing.T) {
		requestID := "req-" + faker.Word()
		var gotRequestID string
		mw := NewRequestIDMiddleware()
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			gotRequestID = RequestIDValue(req.Context())
		}))

		req := httptest.NewRequest("GET", "/transactions", nil)
		req.Header.Set("x-request-id", requestID)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, requestID, gotRequestID)
		assert.Equal(t, requestID, w.Header().Get("x-request-id"))
	})

	t.Run("mint request id if none", func(t *testing.T) {
		requestID := uuid.NewV4()
		var gotRequestID string
		mw := NewRequestIDMiddleware(func(cfg *requestIDMiddlewareCfg) {
			cfg.newUUID = func() uuid.UUID { return requestID }
		})
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			gotRequestID = RequestIDValue(req.Context())
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/transactions", nil))

		assert.Equal(t, requestID.String(), gotRequestID)
		assert.Equal(t, requestID.String(), w.Header().Get("x-request-id"))
	})
}

func TestFlattenAndObfuscate(t *testing.T) {
	t.Run("flatten multi values", func(t *testing.T) {
		val1 := faker.Word()
		val21 := faker.Word()
		val22 := faker.Word()
		flattened := flattenAndObfuscate(map[string][]string{
			"Key1": []string{val1},
			"Key2": []string{val21, val22},
		})
		assert.Equal(t, map[string]string{
			"Key1": val1,
			"Key2": val21 + ", " + val22,
		}, flattened)
	})

	t.Run("obfuscate given keys", func(t *testing.T) {
		secret := faker.Password()
		flattened := flattenAndObfuscate(map[string][]string{
			"Cookie": []string{secret},
			"Key1":   []string{"val1"},
		}, "Cookie", "Authorization")
		assert.Equal(t, "val1", flattened["Key1"])
		assert.NotContains(t, flattened["Cookie"], secret)
	})
}

func TestNewLogRequestsMiddleware(t *testing.T) {
	t.Run("skip ignored paths", func(t *testing.T) {
		handlerCalled := false
		mw := NewLogRequestsMiddleware()
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			handlerCalled = true
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/v1/healthcheck/ping", nil))
		assert.True(t, handlerCalled)
	})

	t.Run("report wrapped response status", func(t *testing.T) {
		wrapper := loggingMiddlewareResponseWrapper{target: httptest.NewRecorder()}
		assert.Equal(t, 200, wrapper.getStatus())
		wrapper.WriteHeader(http.StatusCreated)
		assert.Equal(t, http.StatusCreated, wrapper.getStatus())
	})
}
