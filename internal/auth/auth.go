package auth

import (
	"context"
	"errors"
	"fmt"
)

// ErrorCode identifies a known authentication failure
type ErrorCode string

const (
	CodeWrongPassword       ErrorCode = "wrong-password"
	CodeUserNotFound        ErrorCode = "user-not-found"
	CodeTooManyRequests     ErrorCode = "too-many-requests"
	CodeRequiresRecentLogin ErrorCode = "requires-recent-login"
	CodeWeakPassword        ErrorCode = "weak-password"
	CodeInvalidEmail        ErrorCode = "invalid-email"
	CodeNetworkError        ErrorCode = "network-error"
)

// Error is a credential/identity failure from the auth service
type Error struct {
	Code ErrorCode
	Raw  string // provider message, used only as a last-resort fallback
}

func (e *Error) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("auth error %s: %s", e.Code, e.Raw)
	}
	return fmt.Sprintf("auth error %s", e.Code)
}

// messages maps each known code to exactly one user-facing message
var messages = map[ErrorCode]string{
	CodeWrongPassword:       "Incorrect password. Please try again.",
	CodeUserNotFound:        "No account found with that email.",
	CodeTooManyRequests:     "Too many attempts. Please wait a moment and try again.",
	CodeRequiresRecentLogin: "For security, please sign in again before changing your password.",
	CodeWeakPassword:        "Password is too weak. Use at least 8 characters.",
	CodeInvalidEmail:        "That email address doesn't look right.",
	CodeNetworkError:        "Connection problem. Check your network and try again.",
}

const genericFailure = "Something went wrong. Please try again."

// UserMessage maps an error to the single human-readable message shown to
// the user. Known auth codes use the fixed message table; unknown codes get
// the generic fallback; the raw provider message is used only when nothing
// friendlier applies.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var authErr *Error
	if errors.As(err, &authErr) {
		if msg, ok := messages[authErr.Code]; ok {
			return msg
		}
		if authErr.Raw != "" {
			return authErr.Raw
		}
		return genericFailure
	}
	return genericFailure
}

// Session identifies a signed-in user
type Session struct {
	UserID string
	Email  string
	Token  string
}

// Service is the authentication side of the remote gateway platform
type Service interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	CurrentUser(ctx context.Context) (*Session, error)
	Reauthenticate(ctx context.Context, password string) error
	UpdatePassword(ctx context.Context, newPassword string) error
	SendPasswordReset(ctx context.Context, email string) error
	SignOut(ctx context.Context) error
}
