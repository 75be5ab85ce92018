package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("https://bsky.social", 3*time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil *HTTPClient with embedded resty client")
	}
	if client.BaseURL != "https://bsky.social" {
		t.Errorf("expected base url, got %q", client.BaseURL)
	}
	if got := client.Header.Get("Accept"); got != "application/json" {
		t.Errorf("expected Accept header, got %q", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected distinct *resty.Client instances")
	}
}

func TestHTTPClient_UsesBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/xrpc/ping" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	resp, err := client.R().Get("/xrpc/ping")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode())
	}
}
