package diag

import "context"

type requestIDKeyType struct{}

var requestIDKey requestIDKeyType

// ContextWithRequestID derives a context carrying given requestID
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDValue returns requestID carried by a given context
// or an empty string if there is none
func RequestIDValue(ctx context.Context) string {
	if val, ok := ctx.Value(requestIDKey).(string); ok {
		return val
	}
	return ""
}
