package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/reoring/chartopts/internal/document"
)

const shutdownTimeout = 5 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve [document]",
		Short: "Serve a live preview of a chart document",
		Long:  "Serve an HTML preview of a chart document. The document is reloaded on every request.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			if addr != "" {
				cfg.Addr = addr
			}
			return serve(cmd.Context(), args[0], cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $CHARTOPTS_ADDR or :8080)")
	return cmd
}

func serve(ctx context.Context, path string, cfg Config) error {
	logger := loggerFromContext(ctx)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newPreviewRouter(ctx, path, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("serving preview", "addr", cfg.Addr, "document", path)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down preview")
		return srv.Shutdown(shutdownCtx)
	}
}

// newPreviewRouter serves the preview page, the chart options and the
// runtime script for the document at path.
func newPreviewRouter(ctx context.Context, path string, cfg Config) http.Handler {
	logger := loggerFromContext(ctx)
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			next.ServeHTTP(ww, req)
			logger.Debug("request", "method", req.Method, "path", req.URL.Path,
				"status", ww.Status(), "elapsed", time.Since(start).Round(time.Millisecond))
		})
	})

	load := func(w http.ResponseWriter) (*document.Document, bool) {
		doc, err := document.Load(path)
		if err != nil {
			logger.Error("load document", "err", err)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return nil, false
		}
		return doc, true
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		doc, ok := load(w)
		if !ok {
			return
		}
		page, err := renderPage(req.Context(), doc, cfg, "/runtime.js")
		if err != nil {
			logger.Error("render page", "err", err)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})
	r.Get("/options", func(w http.ResponseWriter, req *http.Request) {
		doc, ok := load(w)
		if !ok {
			return
		}
		p, err := chartFor(doc, nil, cfg, "  ").Payload(false)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		_, _ = w.Write(p.Chart.Bytes())
	})
	r.Get("/runtime.js", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		_, _ = w.Write([]byte(runtimeJS))
	})
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}
