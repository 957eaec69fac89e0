// Package httpapi exposes the list engine as a webhook for chat gateways.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/listbot/internal/engine"
	"github.com/dmitrijs2005/listbot/internal/logging"
	"github.com/dmitrijs2005/listbot/internal/models"
	"github.com/gorilla/mux"
)

// Executor runs commands against the lists.
type Executor interface {
	Execute(ctx context.Context, cmd engine.Command) engine.Reply
	Summaries(ctx context.Context, owner int64) ([]models.Summary, error)
}

type HTTPServer struct {
	address   string
	exec      Executor
	logger    logging.Logger
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, exec Executor, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:   a,
		exec:      exec,
		logger:    l.With("module", "http_server"),
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the route table. Everything under /v1 requires a gateway
// token.
func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	api := r.PathPrefix("/v1").Subrouter()
	api.Use(s.authMiddleware)
	api.HandleFunc("/commands", s.executeCommand).Methods(http.MethodPost)
	api.HandleFunc("/owners/{ownerID:[0-9]+}/lists", s.listSummaries).Methods(http.MethodGet)

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
