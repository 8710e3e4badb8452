package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewClient(server.URL, server.Client(), t.TempDir())
}

func TestSignIn(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/signin" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "juan@school.edu" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{"code": "user-not-found"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"user_id": "u-123",
			"email":   "juan@school.edu",
			"token":   "tok-abc",
		})
	})

	session, err := client.SignIn(context.Background(), "juan@school.edu", "secret")
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	if session.UserID != "u-123" || session.Token != "tok-abc" {
		t.Errorf("unexpected session: %+v", session)
	}

	current, err := client.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("current user failed: %v", err)
	}
	if current.UserID != "u-123" {
		t.Errorf("unexpected current user: %+v", current)
	}
}

func TestSignInSessionPersists(t *testing.T) {
	server, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"user_id": "u-123", "email": "juan@school.edu", "token": "tok-abc",
		})
	})

	if _, err := client.SignIn(context.Background(), "juan@school.edu", "secret"); err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	// A new client over the same session dir picks up the session
	fresh := NewClient(server.URL, server.Client(), client.sessionDir)
	session, err := fresh.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("expected persisted session: %v", err)
	}
	if session.UserID != "u-123" {
		t.Errorf("unexpected restored session: %+v", session)
	}
}

func TestSignInErrorMapping(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"code": "wrong-password", "message": "bad credentials"},
		})
	})

	_, err := client.SignIn(context.Background(), "juan@school.edu", "nope")
	var authErr *Error
	if !errors.As(err, &authErr) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if authErr.Code != CodeWrongPassword {
		t.Errorf("unexpected code: %s", authErr.Code)
	}
}

func TestSignInNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // force connection refused
	client := NewClient(server.URL, http.DefaultClient, t.TempDir())

	_, err := client.SignIn(context.Background(), "juan@school.edu", "secret")
	var authErr *Error
	if !errors.As(err, &authErr) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if authErr.Code != CodeNetworkError {
		t.Errorf("expected network-error, got %s", authErr.Code)
	}
}

func TestUpdatePasswordRequiresSession(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	err := client.UpdatePassword(context.Background(), "newpassword1")
	var authErr *Error
	if !errors.As(err, &authErr) || authErr.Code != CodeRequiresRecentLogin {
		t.Errorf("expected requires-recent-login, got %v", err)
	}
}

func TestSignOut(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"user_id": "u-123", "email": "juan@school.edu", "token": "tok-abc",
		})
	})

	if _, err := client.SignIn(context.Background(), "juan@school.edu", "secret"); err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	if err := client.SignOut(context.Background()); err != nil {
		t.Fatalf("sign out failed: %v", err)
	}
	if _, err := client.CurrentUser(context.Background()); err == nil {
		t.Error("expected no current user after sign out")
	}
}
