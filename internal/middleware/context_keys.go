package middleware

import "context"

// contextKey is a private type for context keys defined in this package.
// Using a custom type prevents collisions with keys set elsewhere.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDCtxKey = contextKey("userID")
)

// GetUserIDFromCtx retrieves the authenticated user ID from the request
// context. The second return value reports whether it was present.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(string)
	return userID, ok
}

// ContextWithUserID returns a context carrying the authenticated user ID.
// Exposed for tests that exercise handlers without the auth middleware.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}
