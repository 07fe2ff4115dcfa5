package http

import (
	"net"
	"net/http"
	"net/http/pprof"

	"github.com/xichen2020/geosearch/server/http/handlers"

	xserver "github.com/m3db/m3/src/x/server"
	"go.uber.org/zap"
)

const (
	pprofPathPrefix = "/debug/pprof/"
)

// server is an http server.
type server struct {
	opts    *Options
	address string
	server  *http.Server
}

// NewServer creates a new http server.
func NewServer(address string, svc handlers.Service, opts *Options) xserver.Server {
	if opts == nil {
		opts = NewOptions()
	}

	mux := http.NewServeMux()
	handlers.RegisterService(mux, svc)
	if opts.EnablePprof() {
		registerPprofHandlers(mux)
	}

	return &server{
		opts:    opts,
		address: address,
		server: &http.Server{
			Handler:      mux,
			ReadTimeout:  opts.ReadTimeout(),
			WriteTimeout: opts.WriteTimeout(),
		},
	}
}

func (s *server) ListenAndServe() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(listener)
}

func (s *server) Serve(l net.Listener) error {
	go func() {
		if err := s.server.Serve(l); err != nil && err != http.ErrServerClosed {
			s.opts.InstrumentOptions().Logger().Error("serve error", zap.Error(err))
		}
	}()

	return nil
}

func (s *server) Close() {
	if err := s.server.Close(); err != nil {
		s.opts.InstrumentOptions().Logger().Error("server close error", zap.Error(err))
	}
}

func registerPprofHandlers(mux *http.ServeMux) {
	mux.HandleFunc(pprofPathPrefix, pprof.Index)
	mux.HandleFunc(pprofPathPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(pprofPathPrefix+"profile", pprof.Profile)
	mux.HandleFunc(pprofPathPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(pprofPathPrefix+"trace", pprof.Trace)
}
