package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/apervushin/commons-validator/internal/registry"
	grpcTransport "github.com/apervushin/commons-validator/internal/transport/grpc"
	"github.com/apervushin/commons-validator/pkg/domain"
	"github.com/apervushin/commons-validator/pkg/tld"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newTestClient(tb testing.TB) *grpcTransport.Client {
	tb.Helper()

	v, err := domain.New(false, domain.WithOverride(tld.Generic, []string{"corp"}, nil))
	if err != nil {
		tb.Fatalf("domain.New: %v", err)
	}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("failed to listen: %v", err)
	}
	s := grpc.NewServer()
	grpcTransport.RegisterDomainCheckerServer(s, grpcTransport.NewServer(v))
	go func() {
		_ = s.Serve(lis)
	}()
	tb.Cleanup(s.GracefulStop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		tb.Fatalf("failed to create client: %v", err)
	}
	tb.Cleanup(func() { _ = conn.Close() })

	return grpcTransport.NewClient(conn)
}

func newTestHandler(tb testing.TB, ready Readiness) http.Handler {
	tb.Helper()

	h, err := NewHandler(newTestClient(tb), ready, nil)
	if err != nil {
		tb.Fatalf("NewHandler: %v", err)
	}
	return h
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func TestHTTPGateway_Check(t *testing.T) {
	h := newTestHandler(t, nil)

	tests := []struct {
		target string
		want   bool
	}{
		{"/api/v1/check?domain=www.apache.org", true},
		{"/api/v1/check?domain=example.corp", true},
		{"/api/v1/check?domain=apache.rog", false},
		{"/api/v1/check?domain=localhost", false},
		{"/api/v1/check?domain=%20", false},
		{"/api/v1/check?domain=%20apache.org", false},
		{"/api/v1/syntax?domain=a.c-9", true},
		{"/api/v1/syntax?domain=a.9c", false},
	}

	for _, tt := range tests {
		w := serve(h, tt.target)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want %d", tt.target, w.Code, http.StatusOK)
		}
		got := decode[checkResponse](t, w)
		if got.Valid != tt.want {
			t.Errorf("%s: valid = %v, want %v", tt.target, got.Valid, tt.want)
		}
	}
}

func TestHTTPGateway_Tld(t *testing.T) {
	h := newTestHandler(t, nil)

	w := serve(h, "/api/v1/tld?tld=.org")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	got := decode[tldResponse](t, w)
	if got.TLD != ".org" || !got.Valid {
		t.Fatalf("got %+v, want .org valid", got)
	}
}

func TestHTTPGateway_ASCII(t *testing.T) {
	h := newTestHandler(t, nil)

	w := serve(h, "/api/v1/ascii?domain=www.b%C3%BCcher.ch")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := decode[asciiResponse](t, w); got.ASCII != "www.xn--bcher-kva.ch" {
		t.Fatalf("ascii = %q, want www.xn--bcher-kva.ch", got.ASCII)
	}
}

func TestHTTPGateway_Tlds(t *testing.T) {
	h := newTestHandler(t, nil)

	w := serve(h, "/api/v1/tlds?list=generic-plus")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	got := decode[listResponse](t, w)
	if len(got.Entries) != 1 || got.Entries[0] != "corp" {
		t.Fatalf("entries = %v, want [corp]", got.Entries)
	}

	w = serve(h, "/api/v1/tlds?list=bogus")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHTTPGateway_MissingParam(t *testing.T) {
	h := newTestHandler(t, nil)

	w := serve(h, "/api/v1/check")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if got := decode[errorResponse](t, w); got.Error == "" {
		t.Fatal("empty error message")
	}
}

func TestHTTPGateway_RequestID(t *testing.T) {
	h := newTestHandler(t, nil)

	w := serve(h, "/api/v1/check?domain=apache.org")
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatal("missing request ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/check?domain=apache.org", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("request ID = %q, want abc-123", got)
	}
}

func TestHTTPGateway_CORS(t *testing.T) {
	h, err := NewHandler(newTestClient(t), nil, []string{"https://app.example.com"})
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/check?domain=apache.org", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/check?domain=apache.org", nil)
	req.Header.Set("Origin", "https://evil.example.net")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want none", got)
	}
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t, func(ctx context.Context) error {
		return errors.New("down")
	})

	if w := serve(h, "/healthz"); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestReadyz_BackendReady(t *testing.T) {
	client := newTestClient(t)
	h, err := NewHandler(client, BackendReady(client), nil)
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}

	if w := serve(h, "/readyz"); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestReadyz_NotReady_WhenOverridesNotLoaded(t *testing.T) {
	h := newTestHandler(t, OverridesLoaded(registry.NewHolder(), 48*time.Hour))

	if w := serve(h, "/readyz"); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestReadyz_NotReady_WhenOverridesTooOld(t *testing.T) {
	holder := registry.NewHolder()
	holder.Set(&registry.Status{LastUpdated: time.Now().Add(-72 * time.Hour), Entries: 1})
	h := newTestHandler(t, OverridesLoaded(holder, 48*time.Hour))

	if w := serve(h, "/readyz"); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestReadyz_Ready_WhenFresh(t *testing.T) {
	holder := registry.NewHolder()
	holder.Set(&registry.Status{LastUpdated: time.Now().Add(-time.Hour), Entries: 1})
	h := newTestHandler(t, OverridesLoaded(holder, 48*time.Hour))

	if w := serve(h, "/readyz"); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func BenchmarkHTTPGateway_Check(b *testing.B) {
	h := newTestHandler(b, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/check?domain=www.apache.org", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			b.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
	}
}
