package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const TokenHeader = "X-FITTRACK-TOKEN"

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type secretChecker interface {
	Check(secret string) bool
}

// HashChecker compares secrets against a bcrypt hash. Verified secrets are
// remembered, a bcrypt comparison per request is too slow.
type HashChecker struct {
	hash     string
	verified sync.Map
}

func NewHashChecker(hash string) *HashChecker {
	return &HashChecker{
		hash: hash,
	}
}

func (c *HashChecker) Check(secret string) bool {
	if secret == "" {
		return false
	}
	if _, ok := c.verified.Load(secret); ok {
		return true
	}
	if !pkg.CheckSecretHash(secret, c.hash) {
		return false
	}
	c.verified.Store(secret, struct{}{})
	return true
}

type AuthMiddlewareHandler struct {
	checker      secretChecker
	allowedPaths map[string]bool
}

// NewAuthMiddlewareHandler protects all routes but a few read-only ones.
// A nil checker disables the check (local development).
func NewAuthMiddlewareHandler(checker secretChecker) *AuthMiddlewareHandler {
	if checker == nil {
		log.Warnln("auth middleware: no app secret configured, requests are not authenticated")
	}
	return &AuthMiddlewareHandler{
		checker: checker,
		allowedPaths: map[string]bool{
			"/":            true,
			"/version":     true,
			"/definitions": true,
		},
	}
}

func requestToken(r *http.Request) string {
	if token := r.Header.Get(TokenHeader); token != "" {
		return token
	}
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.checker == nil || h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token := requestToken(r)
			if token == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if !h.checker.Check(token) {
				log.Warnf("[invalid token] [auth middleware] unauthorized => %s from %s", r.URL.Path, pkg.ClientIP(r))
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
