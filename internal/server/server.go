package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	handlers     *Handlers
	port         int
	shutdownWait time.Duration
	log          *zap.Logger
}

func New(port int, shutdownWait time.Duration, opts HubOptions) *Server {
	h := NewHandlers(opts)
	return &Server{
		handlers:     h,
		port:         port,
		shutdownWait: shutdownWait,
		log:          h.log,
	}
}

// Routes returns the HTTP routes. Rooms opened through it live until ctx
// is done.
func (s *Server) Routes(ctx context.Context) http.Handler {
	s.handlers.mu.Lock()
	s.handlers.ctx = ctx
	s.handlers.mu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/create", s.handlers.HandleCreateGame)
	mux.HandleFunc("GET /api/qr", s.handlers.HandleQR)
	mux.HandleFunc("GET /api/player-id", s.handlers.HandlePlayerID)
	mux.HandleFunc("GET /ws", s.handlers.HandleWS)
	return mux
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Routes(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("settlers server starting", zap.String("addr", "http://localhost"+srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownWait)
		defer cancel()
		s.log.Info("settlers server stopping")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
