package middleware

import (
	"fmt"
	"net/http"
	"zentravel/config"
	"zentravel/infras/otel"
	"zentravel/shared/cache"
	"zentravel/shared/constant"

	"github.com/go-chi/chi/v5"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing() func(http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

			ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
			defer scope.End()

			scope.SetAttributes(map[string]any{
				"app.name":        a.config.App.Name,
				"http.path":       r.URL.Path,
				"http.method":     r.Method,
				"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
				"http.host":       r.Host,
				"http.source":     a.getClientIP(r),
			})

			next.ServeHTTP(w, r.WithContext(ctx))

			if routeCtx := chi.RouteContext(ctx); routeCtx != nil {
				scope.SetAttribute("http.route", routeCtx.RoutePattern())
			}
		})
	}
}
