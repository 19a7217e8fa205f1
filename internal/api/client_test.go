package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type staticTokens string

func (s staticTokens) Token() (string, error) {
	return string(s), nil
}

func TestRequest_AttachesBearerAndHeaders(t *testing.T) {
	var gotAuth, gotContentType, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens("tok-1"))
	var result map[string]bool
	if err := client.Request(context.Background(), "/ping", RequestOptions{}, &result); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("unexpected Authorization header %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected Content-Type %q", gotContentType)
	}
	if gotRequestID == "" {
		t.Fatal("expected an X-Request-Id header")
	}
	if !result["ok"] {
		t.Fatal("response was not decoded")
	}
}

func TestRequest_SkipAuthAndMissingToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens("tok-1"))
	if err := client.Request(context.Background(), "/ping", RequestOptions{SkipAuth: true}, nil); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "" {
		t.Fatalf("skipAuth call must not carry a token, got %q", gotAuth)
	}

	// an absent token is not an error: the call proceeds unauthenticated
	client = NewClient(server.URL, staticTokens(""))
	if err := client.Request(context.Background(), "/ping", RequestOptions{}, nil); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "" {
		t.Fatalf("logged-out call must not carry a token, got %q", gotAuth)
	}
}

func TestRequest_NormalizesEndpoint(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", staticTokens(""))
	if err := client.Request(context.Background(), "youtube/status", RequestOptions{}, nil); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/youtube/status" {
		t.Fatalf("unexpected path %q", gotPath)
	}
}

func TestRequest_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens(""))
	err := client.Request(context.Background(), "/slow", RequestOptions{Timeout: 30 * time.Millisecond}, nil)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestRequest_UnauthorizedEvictsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"token expired"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	evicted := false
	client := NewClient(server.URL, staticTokens("tok-1"))
	client.OnAuthLost(func() { evicted = true })

	err := client.Request(context.Background(), "/auth/profile", RequestOptions{}, nil)
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if !evicted {
		t.Fatal("401 must trigger the session eviction hook")
	}
}

func TestRequest_ErrorDetailParsing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/detail":
			http.Error(w, `{"detail":"quota exceeded"}`, http.StatusPaymentRequired)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens(""))

	err := client.Request(context.Background(), "/detail", RequestOptions{}, nil)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Status != http.StatusPaymentRequired || reqErr.Error() != "quota exceeded" {
		t.Fatalf("expected parsed detail, got status=%d msg=%q", reqErr.Status, reqErr.Error())
	}

	err = client.Request(context.Background(), "/other", RequestOptions{}, nil)
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Error() != "HTTP error 500" {
		t.Fatalf("expected generic message, got %q", reqErr.Error())
	}
}

func TestRequest_CanceledCallerIsSuppressed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens(""))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var result map[string]bool
	if err := client.Request(ctx, "/ping", RequestOptions{}, &result); err != nil {
		t.Fatalf("teardown race must settle to a suppressed nil, got %v", err)
	}
	if result != nil {
		t.Fatalf("suppressed call must not produce a result, got %v", result)
	}
}

func TestTypedWrappers_SuppressedCallerGetsNilPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"job_id":"job-1","status":"completed"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens(""))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job, err := client.JobStatus(ctx, "job-1")
	if err != nil {
		t.Fatalf("suppressed poll must not error, got %v", err)
	}
	if job != nil {
		t.Fatalf("suppressed poll must not hand back a zero-value job, got %+v", job)
	}

	profile, err := client.Profile(ctx)
	if err != nil || profile != nil {
		t.Fatalf("suppressed profile fetch: profile=%+v err=%v", profile, err)
	}
}
