package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient() *http.Client {
	return &http.Client{Timeout: 5 * time.Second}
}

func TestFetcher_Fetch_ParsesDocument(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`<html><body><table><tr><th>Kursziel</th></tr></table></body></html>`))
	}))
	defer server.Close()

	f := New(testClient(), "TestAgent/1.0")

	doc, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if doc.Find("table").Length() != 1 {
		t.Error("expected one table in parsed document")
	}
	if gotUA != "TestAgent/1.0" {
		t.Errorf("User-Agent = %q, want TestAgent/1.0", gotUA)
	}
}

func TestFetcher_Fetch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	f := New(testClient(), "TestAgent/1.0")

	_, err := f.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected an error for 404")
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error type = %T, want *FetchError", err)
	}
	if fe.GetStatusCode() != http.StatusNotFound {
		t.Errorf("status = %d, want 404", fe.GetStatusCode())
	}
}

func TestFetcher_Fetch_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	f := New(testClient(), "TestAgent/1.0")

	_, err := f.Fetch(context.Background(), url)
	if err == nil {
		t.Fatal("expected an error for a closed server")
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error type = %T, want *FetchError", err)
	}
	if fe.GetStatusCode() != 0 {
		t.Errorf("status = %d, want 0 for transport failure", fe.GetStatusCode())
	}
}
