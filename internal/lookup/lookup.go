package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Sentinel errors for identifier lookup
var (
	// ErrAccountNotFound is reported only after both the original and the
	// de-hyphenated identifier have been tried.
	ErrAccountNotFound = errors.New("account not found")

	// ErrForbidden maps a 403 from the lookup endpoint; surfaced to the
	// user as "contact your administrator" and never retried.
	ErrForbidden = errors.New("lookup forbidden")
)

// Client resolves a student identifier to the email used for sign-in
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient returns a lookup client for the given endpoint
func NewClient(endpoint string, httpClient *http.Client) *Client {
	return &Client{endpoint: endpoint, httpClient: httpClient}
}

// EmailForStudentID resolves studentID to an email address. If the first
// lookup misses and the identifier contains hyphens, exactly one retry is
// made with the hyphen-stripped variant before giving up.
func (c *Client) EmailForStudentID(ctx context.Context, studentID string) (string, error) {
	email, err := c.lookup(ctx, studentID)
	if err == nil {
		return email, nil
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return "", err
	}

	stripped := strings.ReplaceAll(studentID, "-", "")
	if stripped == studentID {
		return "", err
	}
	return c.lookup(ctx, stripped)
}

func (c *Client) lookup(ctx context.Context, studentID string) (string, error) {
	jsonData, err := json.Marshal(map[string]string{"student_id": studentID})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("lookup request failed: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var result struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(body, &result); err != nil || result.Email == "" {
			return "", ErrAccountNotFound
		}
		return result.Email, nil
	case http.StatusForbidden:
		return "", ErrForbidden
	case http.StatusNotFound:
		return "", ErrAccountNotFound
	default:
		return "", fmt.Errorf("lookup service returned %d", resp.StatusCode)
	}
}
