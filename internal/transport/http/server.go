package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/apervushin/commons-validator/internal/registry"
	grpcTransport "github.com/apervushin/commons-validator/internal/transport/grpc"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/rs/cors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const requestIDHeader = "X-Request-Id"

// Readiness reports why the service cannot serve yet, or nil when it can.
type Readiness func(ctx context.Context) error

type checkResponse struct {
	Domain string `json:"domain"`
	Valid  bool   `json:"valid"`
}

type tldResponse struct {
	TLD   string `json:"tld"`
	Valid bool   `json:"valid"`
}

type asciiResponse struct {
	Domain string `json:"domain"`
	ASCII  string `json:"ascii"`
}

type listResponse struct {
	List    string   `json:"list"`
	Entries []string `json:"entries"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a gRPC status to the matching HTTP status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	st := status.Convert(err)
	code := runtime.HTTPStatusFromCode(st.Code())
	if code >= http.StatusInternalServerError {
		log.Printf("http gateway: %s %s (request %s): %v",
			r.Method, r.URL.Path, w.Header().Get(requestIDHeader), err)
	}
	writeJSON(w, code, errorResponse{Error: st.Message()})
}

// withRequestID tags every response with a request ID, keeping one supplied
// by the caller.
func withRequestID(next runtime.HandlerFunc) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next(w, r, pathParams)
	}
}

func newGatewayMux(client *grpcTransport.Client) (*runtime.ServeMux, error) {
	gwMux := runtime.NewServeMux(runtime.WithMiddlewares(withRequestID))

	checkBool := func(param string, call func(context.Context, string, ...grpc.CallOption) (bool, error), resp func(string, bool) any) runtime.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			in := r.URL.Query().Get(param)
			ok, err := call(r.Context(), in)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, resp(in, ok))
		}
	}
	domainResp := func(in string, ok bool) any { return checkResponse{Domain: in, Valid: ok} }

	routes := []struct {
		path string
		h    runtime.HandlerFunc
	}{
		{"/api/v1/check", checkBool("domain", client.CheckDomain, domainResp)},
		{"/api/v1/syntax", checkBool("domain", client.CheckDomainSyntax, domainResp)},
		{"/api/v1/tld", checkBool("tld", client.CheckTld, func(in string, ok bool) any {
			return tldResponse{TLD: in, Valid: ok}
		})},
		{"/api/v1/ascii", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			in := r.URL.Query().Get("domain")
			ascii, err := client.ToASCII(r.Context(), in)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, asciiResponse{Domain: in, ASCII: ascii})
		}},
		{"/api/v1/tlds", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			list := r.URL.Query().Get("list")
			entries, err := client.ListTlds(r.Context(), list)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, listResponse{List: list, Entries: entries})
		}},
	}

	for _, rt := range routes {
		if err := gwMux.HandlePath(http.MethodGet, rt.path, rt.h); err != nil {
			return nil, err
		}
	}
	return gwMux, nil
}

// NewHandler builds the HTTP handler: the JSON API backed by client, plus
// /healthz and /readyz. Cross-origin requests are allowed from corsOrigins
// only; none are allowed when it is empty.
func NewHandler(client *grpcTransport.Client, ready Readiness, corsOrigins []string) (http.Handler, error) {
	gwMux, err := newGatewayMux(client)
	if err != nil {
		return nil, err
	}

	// Main HTTP mux, routing API requests through the gateway mux
	mux := http.NewServeMux()
	mux.Handle("/", gwMux)

	// /healthz: basic liveness check
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// /readyz: backend reachable and overrides loaded
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if ready != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ready(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("not ready: " + err.Error()))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if len(corsOrigins) == 0 {
		return mux, nil
	}
	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         600,
	})
	return c.Handler(mux), nil
}

// BackendReady probes the gRPC backend with a cheap TLD lookup.
func BackendReady(client *grpcTransport.Client) Readiness {
	return func(ctx context.Context) error {
		if _, err := client.CheckTld(ctx, "com"); err != nil {
			return errors.New("grpc backend unavailable")
		}
		return nil
	}
}

// OverridesLoaded requires an override document installed within maxAge.
func OverridesLoaded(h *registry.Holder, maxAge time.Duration) Readiness {
	return func(ctx context.Context) error {
		st := h.Get()
		if st == nil || st.LastUpdated.IsZero() {
			return errors.New("overrides not loaded")
		}
		age := time.Since(st.LastUpdated)
		if age < 0 || age > maxAge {
			return errors.New("overrides stale")
		}
		return nil
	}
}

func RunHTTPGatewayServer(ctx context.Context, httpAddr, grpcEndpoint string, corsOrigins []string, extra Readiness) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	conn, err := grpc.NewClient(grpcEndpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	client := grpcTransport.NewClient(conn)
	backend := BackendReady(client)
	ready := func(ctx context.Context) error {
		if err := backend(ctx); err != nil {
			return err
		}
		if extra != nil {
			return extra(ctx)
		}
		return nil
	}

	handler, err := NewHandler(client, ready, corsOrigins)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         httpAddr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown of the HTTP server when the parent context is canceled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("http gateway: graceful shutdown error: %v", err)
		}
	}()

	log.Printf("HTTP gateway listening on %s, proxying to gRPC %s", httpAddr, grpcEndpoint)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
