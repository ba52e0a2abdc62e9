package http

import (
	"context"
	"errors"
	"net"
	nethttp "net/http"

	"github.com/yungbote/agrinet/internal/config"
)

type Server struct {
	srv *nethttp.Server
}

func NewServer(cfg config.HTTPConfig, rc RouterConfig) *Server {
	return &Server{srv: &nethttp.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(rc),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout.Duration,
		IdleTimeout:       cfg.IdleTimeout.Duration,
	}}
}

func (s *Server) Handler() nethttp.Handler { return s.srv.Handler }

// Serve blocks until the listener fails or Shutdown is called. A clean shutdown returns nil.
func (s *Server) Serve(ln net.Listener) error {
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
