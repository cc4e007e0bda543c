package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/siamdraw/lotto-cli/internal/board"
	"github.com/siamdraw/lotto-cli/internal/drawdate"
	"github.com/siamdraw/lotto-cli/internal/model"
	"github.com/siamdraw/lotto-cli/internal/predict"
	"github.com/siamdraw/lotto-cli/pkg/gemini"
	"github.com/siamdraw/lotto-cli/pkg/glo"
	"github.com/siamdraw/lotto-cli/pkg/tipster"
)

var servePort int

// predictor is the slice of predict.Service the handlers need.
type predictor interface {
	Predict(ctx context.Context, mode model.Mode, drawDate string) (*model.NumberSet, error)
}

// panels is the slice of board.Board the handlers need.
type panels interface {
	Snapshot(ctx context.Context) board.Snapshot
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST server backing the web front-end",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if cfg.Gemini.Key == "" {
			return eris.New("gemini.key is required")
		}
		client, err := gemini.NewClient(ctx, cfg.Gemini.Key,
			gemini.WithModel(cfg.Gemini.Model),
			gemini.WithRateLimit(cfg.Gemini.RequestsPerMinute),
		)
		if err != nil {
			return err
		}

		svc := predict.NewService(client, cfg.Gemini.Model)
		b := board.New(
			glo.NewClient(glo.WithBaseURL(cfg.GLO.BaseURL)),
			tipster.NewClient(cfg.Tipster.BaseURL),
		)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(svc, b, cfg.Server.AllowedOrigins),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func newRouter(svc predictor, b panels, origins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/predict", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Mode string `json:"mode"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		mode, err := model.ParseMode(req.Mode)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		drawDate := drawdate.Label(drawdate.NextDraw(time.Now()))

		var set *model.NumberSet
		if mode == model.ModeRandom {
			set = predict.RandomSet(drawDate)
		} else {
			set, err = svc.Predict(r.Context(), mode, drawDate)
			if err != nil {
				kind := predict.KindOf(err)
				zap.L().Error("predict request failed",
					zap.String("mode", string(mode)),
					zap.String("kind", string(kind)),
					zap.Error(err),
				)
				writeJSON(w, http.StatusBadGateway, map[string]string{"error": string(kind)})
				return
			}
		}

		writeJSON(w, http.StatusOK, set)
	})

	r.Get("/api/draws/latest", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, b.Snapshot(r.Context()).LatestDraw)
	})

	r.Get("/api/gurus", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, b.Snapshot(r.Context()).Gurus)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
