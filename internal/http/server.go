package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	sloghttp "github.com/samber/slog-http"

	httpCtx "github.com/bornholm/lifemap/internal/http/context"
)

type Server struct {
	opts *Options
}

// Run starts the server and blocks until the context is canceled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return errors.WithStack(err)
	}

	listener, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return errors.Wrapf(err, "could not listen on '%s'", s.opts.Address)
	}

	server := &http.Server{
		Handler: handler,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	errs := make(chan error, 1)

	go func() {
		slog.InfoContext(ctx, "http server listening", slog.String("address", listener.Addr().String()))

		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- errors.WithStack(err)
		}

		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	slog.InfoContext(ctx, "shutting down http server")

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Handler builds the root handler of the server.
func (s *Server) Handler() (http.Handler, error) {
	baseURL, err := url.Parse(s.opts.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse base url '%s'", s.opts.BaseURL)
	}

	basePath := strings.TrimSuffix(baseURL.Path, "/")

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealthz)

	for prefix, handler := range s.opts.Mounts {
		trimmed := strings.TrimSuffix(prefix, "/")
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	}

	var handler http.Handler = mux

	if basePath != "" {
		handler = http.StripPrefix(basePath, handler)
	}

	for i := len(s.opts.Middlewares) - 1; i >= 0; i-- {
		handler = s.opts.Middlewares[i](handler)
	}

	if s.opts.CORS != nil {
		handler = cors.New(cors.Options{
			AllowedOrigins:   s.opts.CORS.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}).Handler(handler)
	}

	handler = withBaseURL(baseURL, handler)

	handler = sloghttp.Recovery(handler)
	handler = sloghttp.New(slog.Default())(handler)

	return handler, nil
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if _, err := w.Write([]byte("ok")); err != nil {
		slog.ErrorContext(r.Context(), "could not write response", slogx.Error(err))
	}
}

func withBaseURL(baseURL *url.URL, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := httpCtx.SetBaseURL(r.Context(), baseURL)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)
	return &Server{
		opts: opts,
	}
}
