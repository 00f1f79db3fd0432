package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hfujimoto/athlete-site-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// Rotas servidas ao site público, sem autenticação. Tudo que o dashboard
// administrativo consome exige um Bearer token válido.
var publicPaths = []string{
	"/healthcheck",
	"/sitemap.xml",
	"/v1/login",
	"/v1/metrics",
	"/v1/audience/overview",
	"/v1/content/top",
	"/v1/blog/posts",
	"/v1/tracking/config",
}

func isPublicPath(path string) bool {
	for _, public := range publicPaths {
		if path == public || strings.HasPrefix(path, public+"/") {
			return true
		}
	}
	return false
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
