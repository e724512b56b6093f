package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clement8426/trail-mosaic-sub000/internal/shared/geo"
)

func TestReverseUnconfigured(t *testing.T) {
	client := NewClient("", "")
	if place := client.Reverse(context.Background(), geo.Coordinate{2.3522, 48.8566}); place != "" {
		t.Fatalf("expected empty place without a base url, got %q", place)
	}
}

func TestReverse(t *testing.T) {
	var gotPath, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("access_token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[{"place_name":"Paris, France"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok")
	place := client.Reverse(context.Background(), geo.Coordinate{2.3522, 48.8566})
	if place != "Paris, France" {
		t.Fatalf("expected place name, got %q", place)
	}
	if gotToken != "tok" {
		t.Fatalf("expected token forwarded, got %q", gotToken)
	}
	if gotPath == "" {
		t.Fatalf("expected request path")
	}
}

func TestReverseEmptyFeatures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if place := client.Reverse(context.Background(), geo.Coordinate{0, 0}); place != "" {
		t.Fatalf("expected empty place, got %q", place)
	}
}

func TestReverseServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if place := client.Reverse(context.Background(), geo.Coordinate{0, 0}); place != "" {
		t.Fatalf("expected empty place on server error, got %q", place)
	}
}

func TestReverseBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if place := client.Reverse(context.Background(), geo.Coordinate{0, 0}); place != "" {
		t.Fatalf("expected empty place on decode error, got %q", place)
	}
}

func TestReverseUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "")
	if place := client.Reverse(context.Background(), geo.Coordinate{0, 0}); place != "" {
		t.Fatalf("expected empty place when unreachable, got %q", place)
	}
}
