package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEmailForStudentID(t *testing.T) {
	var requested []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			StudentID string `json:"student_id"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		requested = append(requested, body.StudentID)

		// Only the de-hyphenated form is registered
		if body.StudentID == "2100457" {
			json.NewEncoder(w).Encode(map[string]string{"email": "juan@school.edu"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	email, err := client.EmailForStudentID(context.Background(), "21-00457")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if email != "juan@school.edu" {
		t.Errorf("unexpected email: %q", email)
	}

	// Exactly one retry: the hyphenated form, then the stripped form
	if len(requested) != 2 {
		t.Fatalf("expected 2 lookup attempts, got %d: %v", len(requested), requested)
	}
	if requested[0] != "21-00457" || requested[1] != "2100457" {
		t.Errorf("unexpected attempt order: %v", requested)
	}
}

func TestEmailForStudentIDNoHyphens(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	_, err := client.EmailForStudentID(context.Background(), "2100457")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
	// No hyphens to strip, so no retry
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestEmailForStudentIDBothMiss(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	_, err := client.EmailForStudentID(context.Background(), "21-00457")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("expected exactly 2 attempts, got %d", attempts)
	}
}

func TestEmailForStudentIDForbidden(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	_, err := client.EmailForStudentID(context.Background(), "21-00457")
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	// Forbidden is never retried
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestEmailForStudentIDEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	_, err := client.EmailForStudentID(context.Background(), "2100457")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound for empty email, got %v", err)
	}
}
