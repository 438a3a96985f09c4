package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"jotter/m/domain"
	"jotter/m/internal/logging"
)

type ctxKey string

const ctxIdentity ctxKey = "identity"

// authMiddleware moves a request from unauthenticated to authenticated. A
// missing bearer token is 401; a token that does not verify is 403.
func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			respondError(w, http.StatusUnauthorized, domain.ErrUnauthorized.Error())
			return
		}
		claims, err := h.tokens.Verify(tokenString)
		if err != nil {
			respondError(w, http.StatusForbidden, domain.ErrInvalidToken.Error())
			return
		}
		ctx := context.WithValue(r.Context(), ctxIdentity, claims.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) (string, bool) {
	if len(header) < len("Bearer ") || !strings.EqualFold(header[:len("Bearer ")], "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[len("Bearer "):])
	return token, token != ""
}

// identityFrom returns the caller established by authMiddleware.
func identityFrom(r *http.Request) domain.Identity {
	id, _ := r.Context().Value(ctxIdentity).(domain.Identity)
	return id
}

// accessLog routes chi's per-request log entries to the structured logger.
type accessLog struct {
	log logging.Logger
}

func (f accessLog) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &accessEntry{
		log: f.log,
		ctx: r.Context(),
		args: []any{
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		},
	}
}

type accessEntry struct {
	log  logging.Logger
	ctx  context.Context
	args []any
}

func (e *accessEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	args := append(e.args, "status", status, "bytes", bytes, "elapsed", elapsed)
	e.log.Info(e.ctx, "request completed", args...)
}

func (e *accessEntry) Panic(v interface{}, stack []byte) {
	args := append(e.args, "panic", fmt.Sprint(v), "stack", string(stack))
	e.log.Error(e.ctx, "request panicked", args...)
}
