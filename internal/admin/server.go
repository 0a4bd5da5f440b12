package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"siburger-bot/internal/config"
	"siburger-bot/internal/logger"
	"siburger-bot/internal/order"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Server is the operator surface: the kitchen confirms, prepares and
// completes orders here while customers watch status from the chat side.
// Races between an operator update and a user cancel are last-write-wins.
type Server struct {
	orders       order.Service
	secret       string
	passwordHash string
	loginLimiter *rate.Limiter
	httpSrv      *http.Server
}

func NewServer(cfg *config.Config, orders order.Service) *Server {
	s := &Server{
		orders:       orders,
		secret:       cfg.JWTSecret,
		passwordHash: cfg.AdminPasswordHash,
		loginLimiter: rate.NewLimiter(rate.Limit(1), 5),
	}
	s.httpSrv = &http.Server{
		Addr:              ":" + cfg.AdminPort,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.Handle("GET /api/orders", s.auth(http.HandlerFunc(s.handleListOrders)))
	mux.Handle("POST /api/orders/{id}/status", s.auth(http.HandlerFunc(s.handleSetStatus)))
	return mux
}

func (s *Server) ListenAndServe() error {
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		if _, err := ParseToken(strings.TrimPrefix(authHeader, "Bearer "), s.secret); err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.loginLimiter.Allow() {
		writeError(w, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !CheckPassword(req.Password, s.passwordHash) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := GenerateToken(s.secret)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to generate token", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	status := order.Status(r.URL.Query().Get("status"))

	orders, err := s.orders.ListByStatus(r.Context(), status)
	if errors.Is(err, order.ErrInvalidStatus) {
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to list orders", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (s *Server) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status order.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.orders.SetStatus(r.Context(), r.PathValue("id"), req.Status)
	switch {
	case errors.Is(err, order.ErrNotFound), errors.Is(err, order.ErrBadID):
		writeError(w, http.StatusNotFound, "order not found")
	case errors.Is(err, order.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "unknown status")
	case errors.Is(err, order.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "illegal status transition")
	case err != nil:
		logger.FromCtx(r.Context()).Error("failed to set status", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"status": string(req.Status)})
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
