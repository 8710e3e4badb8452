package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// Client talks to the hosted authentication endpoint over HTTP. Failed
// responses carry {"error": {"code", "message"}} which is mapped onto the
// fixed ErrorCode set; transport failures map to network-error.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessionDir string

	session *Session
}

// NewClient returns an auth client for baseURL. Sessions are persisted
// under sessionDir so the CLI stays signed in between invocations.
func NewClient(baseURL string, httpClient *http.Client, sessionDir string) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		sessionDir: sessionDir,
	}
	c.session, _ = loadSession(sessionDir)
	return c
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type sessionResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var resp sessionResponse
	if err := c.post(ctx, "/v1/signin", body, &resp); err != nil {
		return nil, err
	}

	c.session = &Session{UserID: resp.UserID, Email: resp.Email, Token: resp.Token}
	if err := saveSession(c.sessionDir, c.session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return c.session, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*Session, error) {
	if c.session == nil {
		return nil, &Error{Code: CodeUserNotFound, Raw: "not signed in"}
	}
	return c.session, nil
}

func (c *Client) Reauthenticate(ctx context.Context, password string) error {
	if c.session == nil {
		return &Error{Code: CodeRequiresRecentLogin}
	}
	body := map[string]string{"email": c.session.Email, "password": password}
	return c.post(ctx, "/v1/reauthenticate", body, nil)
}

func (c *Client) UpdatePassword(ctx context.Context, newPassword string) error {
	if c.session == nil {
		return &Error{Code: CodeRequiresRecentLogin}
	}
	body := map[string]string{"new_password": newPassword}
	return c.post(ctx, "/v1/password", body, nil)
}

func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.post(ctx, "/v1/password-reset", body, nil)
}

func (c *Client) SignOut(ctx context.Context) error {
	c.session = nil
	return os.Remove(sessionPath(c.sessionDir))
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Code: CodeNetworkError, Raw: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Code: CodeNetworkError, Raw: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Code != "" {
			return &Error{Code: ErrorCode(errResp.Error.Code), Raw: errResp.Error.Message}
		}
		return &Error{Raw: fmt.Sprintf("auth service returned %d", resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unexpected response from auth service: %w", err)
		}
	}
	return nil
}

func sessionPath(dir string) string {
	return filepath.Join(dir, "session.json")
}

func loadSession(dir string) (*Session, error) {
	data, err := os.ReadFile(sessionPath(dir))
	if err != nil {
		return nil, err
	}
	s := &Session{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

func saveSession(dir string, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(sessionPath(dir), data, 0600)
}
