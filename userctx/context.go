package userctx

import "context"

// Context key type
type contextKey string

const (
	userEmailKey contextKey = "user_email"
	userNameKey  contextKey = "user_name"
)

// Anonymous is reported when no user signed in
const Anonymous = "anonymous"

// SetUserEmail adds user email to request context
func SetUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// GetUserEmail retrieves user email from request context
func GetUserEmail(ctx context.Context) string {
	email, ok := ctx.Value(userEmailKey).(string)
	if !ok || email == "" {
		return Anonymous
	}
	return email
}

// SetUserName adds the display name shown in the page header
func SetUserName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, userNameKey, name)
}

// GetUserName retrieves the display name, or "" when nobody signed in
func GetUserName(ctx context.Context) string {
	name, _ := ctx.Value(userNameKey).(string)
	return name
}
