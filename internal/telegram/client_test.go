package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func testClient() *Client {
	return &Client{
		botToken:   "test-token",
		chatID:     "12345",
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "123"); err == nil {
		t.Error("expected error for missing bot token")
	}
	if _, err := NewClient("token", ""); err == nil {
		t.Error("expected error for missing chat ID")
	}
	if _, err := NewClient("token", "123"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSendMessageSuccess(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/bot"
	defer func() { apiBaseURL = originalURL }()

	client := testClient()
	if err := client.SendMessage("In 2 days: Caslano vs Lugano"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if gotBody["chat_id"] != "12345" {
		t.Errorf("chat_id = %v, expected 12345", gotBody["chat_id"])
	}
	if gotBody["text"] != "In 2 days: Caslano vs Lugano" {
		t.Errorf("text = %v", gotBody["text"])
	}
}

func TestSendMessageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":          false,
			"description": "Bad Request: chat not found",
		})
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/bot"
	defer func() { apiBaseURL = originalURL }()

	client := testClient()
	err := client.SendMessage("hello")
	if err == nil {
		t.Fatal("expected an error from the API")
	}
}

func TestSendMessageEmptyText(t *testing.T) {
	client, err := NewClient("token", "123")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if err := client.SendMessage(""); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestSendMessageRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/bot"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "t",
		chatID:     "c",
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Every(50*time.Millisecond), 1),
	}

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := client.SendMessage("x"); err != nil {
			t.Fatalf("SendMessage failed: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Errorf("expected sends to be rate limited, took %v", elapsed)
	}
}
