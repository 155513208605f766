package server

import (
	"context"
	"io/fs"
	"net/http"
	"regexp"

	"github.com/edaniels/golog"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"

	"padview/internal/hub"
)

type Server struct {
	hub         *hub.Hub
	broadcaster *hub.Broadcaster
	inbound     chan<- []byte
	frontendFS  fs.FS
	addr        string
	logger      golog.Logger
	httpServer  *http.Server
}

func New(h *hub.Hub, b *hub.Broadcaster, inbound chan<- []byte, frontendFS fs.FS, addr string, logger golog.Logger) *Server {
	return &Server{
		hub:         h,
		broadcaster: b,
		inbound:     inbound,
		frontendFS:  frontendFS,
		addr:        addr,
		logger:      logger,
	}
}

func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()

	// WebSocket endpoint
	mux.HandleFunc("/ws", handleWebSocket(s.hub, s.broadcaster, s.inbound, s.logger))

	// Static files (frontend), minified on the way out
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	fileServer := http.FileServer(http.FS(s.frontendFS))
	mux.Handle("/", m.Middleware(fileServer))

	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	s.logger.Infow("http server listening", "addr", s.addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		s.logger.Infow("shutting down http server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
