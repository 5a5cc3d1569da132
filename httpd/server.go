package httpd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"golang.org/x/net/netutil"

	"github.com/planilhas/sheets-api/aggregate"
	"github.com/planilhas/sheets-api/log"
)

const ERROR_MESSAGE = "Erro no servidor ao tentar buscar os dados da planilha."

type Server struct {
	Bind           string
	AllowedOrigins []string
	MaxConnections int

	Authenticator aggregate.Authenticator
	Aggregator    *aggregate.Aggregator
}

// Handler returns the HTTP handler for the service routes, wrapped in the CORS handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /all-data", s.allData)

	c := cors.New(cors.Options{
		AllowedOrigins: s.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
		},
	})

	return c.Handler(mux)
}

// Run listens on the bind address and serves requests until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.Bind)
	if err != nil {
		return err
	}

	if s.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, s.MaxConnections)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 30 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}

		close(errs)
	}()

	log.Infof("listening on %v", listener.Addr())

	select {
	case err := <-errs:
		return err

	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdown); err != nil {
		return fmt.Errorf("error shutting down HTTP server (%w)", err)
	}

	log.Infof("HTTP server stopped")

	return nil
}

func (s *Server) allData(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	start := time.Now()
	logger := log.With("request", id)

	w.Header().Set("X-Request-Id", id)

	defer func() {
		if err := recover(); err != nil {
			s.fail(w, id, fmt.Errorf("%v", err))
		}
	}()

	logger.Debugf("%v %v from %v", r.Method, r.URL.Path, r.RemoteAddr)

	fetcher, err := s.Authenticator.Authorize(r.Context())
	if err != nil {
		s.fail(w, id, err)
		return
	}

	response, err := s.Aggregator.Aggregate(r.Context(), fetcher)
	if err != nil {
		s.fail(w, id, err)
		return
	}

	var b bytes.Buffer
	if err := json.NewEncoder(&b).Encode(response); err != nil {
		s.fail(w, id, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(b.Bytes())

	logger.Infof("%v %v %v (%v)", r.Method, r.URL.Path, http.StatusOK, time.Since(start).Round(time.Millisecond))
}

func (s *Server) fail(w http.ResponseWriter, id string, err error) {
	log.With("request", id).Errorf("error retrieving spreadsheet data (%v)", err)

	http.Error(w, ERROR_MESSAGE, http.StatusInternalServerError)
}
