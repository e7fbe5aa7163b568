package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"chat-relay/internal/app"
	"chat-relay/internal/httputil"
	"chat-relay/internal/resolver"
	"chat-relay/internal/store"
)

const (
	emptyInputReply  = "Please enter a message."
	unavailableReply = "🚫 All AI services are currently unavailable. Try again later."
)

type askRequest struct {
	Text    string `json:"text" validate:"max=8000"`
	Session string `json:"session" validate:"omitempty,max=256"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	defer func() {
		deps.Store.Close()
		deps.Cache.Close()
		deps.Events.Close()
	}()

	r := httputil.NewRouter(deps.Log)
	r.Post("/ask", askHandler(deps))
	r.Get("/sessions", sessionsHandler(deps))
	r.Get("/history/{session}", historyHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", deps.Config.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		deps.Log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			deps.Log.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		deps.Log.Error("shutdown failed", "err", err)
	}
	deps.Log.Info("server stopped")
}

func askHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}
		if req.Session == "" {
			req.Session = "default"
		}

		res, err := deps.Resolver.Resolve(r.Context(), req.Session, req.Text)
		switch {
		case errors.Is(err, resolver.ErrEmptyQuestion):
			httputil.WriteJSON(w, http.StatusBadRequest, map[string]any{"reply": emptyInputReply})
			return
		case errors.Is(err, resolver.ErrAllProvidersDown):
			deps.Log.Error("all providers failed", "session", req.Session)
			httputil.WriteJSON(w, http.StatusInternalServerError, map[string]any{"reply": unavailableReply})
			return
		case err != nil:
			deps.Log.Error("resolve failed", "session", req.Session, "err", err)
			httputil.WriteJSON(w, http.StatusInternalServerError, map[string]any{
				"reply": fmt.Sprintf("Unhandled Error: %v", err),
			})
			return
		}

		httputil.WriteJSON(w, http.StatusOK, map[string]any{"reply": res.Reply})
	}
}

func sessionsHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions, err := deps.Store.ListSessions(r.Context())
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to list sessions", err, http.StatusInternalServerError)
			return
		}
		if sessions == nil {
			sessions = []string{}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"sessions": sessions})
	}
}

func historyHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := chi.URLParam(r, "session")
		turns, err := deps.Store.History(r.Context(), session)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to load history", err, http.StatusInternalServerError)
			return
		}
		if turns == nil {
			turns = []store.Turn{}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"history": turns})
	}
}
