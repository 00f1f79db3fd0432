package handler

import (
	"net/http"

	"github.com/hfujimoto/athlete-site-api/infrastructure/integrator/ga4"
	"github.com/hfujimoto/athlete-site-api/internal/api/handler/router"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/audience"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/authenticating"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/insighting"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/publishing"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/tracking"
	"github.com/hfujimoto/athlete-site-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Metrics são as rotas públicas de métricas consumidas pelo site
func Metrics(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics",
			Method:  http.MethodGet,
			Handler: GetMetrics(service),
		},
		{
			Path:    "/v1/content/top",
			Method:  http.MethodGet,
			Handler: GetTopContent(service),
		},
	}
}

func Audience(service audience.Overviewer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/audience/overview",
			Method:  http.MethodGet,
			Handler: GetAudienceOverview(service),
		},
	}
}

func Blog(service publishing.Publisher) []router.Route {
	return []router.Route{
		// Rotas públicas do blog
		{
			Path:    "/v1/blog/posts",
			Method:  http.MethodGet,
			Handler: ListPublishedPosts(service),
		},
		{
			Path:    "/v1/blog/posts/:slug",
			Method:  http.MethodGet,
			Handler: GetPublishedPost(service),
		},
		{
			Path:    "/sitemap.xml",
			Method:  http.MethodGet,
			Handler: Sitemap(service),
		},
		// Gestão do blog no dashboard
		{
			Path:        "/v1/admin/blog/posts",
			Method:      http.MethodGet,
			Handler:     ListAllPosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEditor()},
		},
		{
			Path:        "/v1/admin/blog/posts",
			Method:      http.MethodPost,
			Handler:     CreatePost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEditor()},
		},
		{
			Path:        "/v1/admin/blog/posts/:id",
			Method:      http.MethodPut,
			Handler:     UpdatePost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEditor()},
		},
		{
			Path:        "/v1/admin/blog/posts/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEditor()},
		},
		{
			Path:        "/v1/admin/blog/generate",
			Method:      http.MethodPost,
			Handler:     GeneratePost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEditor()},
		},
	}
}

func Tracking(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/tracking/config",
			Method:  http.MethodGet,
			Handler: GetTrackingConfig(service),
		},
		{
			Path:        "/v1/admin/tracking/config",
			Method:      http.MethodPut,
			Handler:     UpdateTrackingConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Website(service *ga4.Integrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/website/metrics",
			Method:      http.MethodGet,
			Handler:     GetWebsiteMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEditor()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/v1/me/password",
			Method:  http.MethodPut,
			Handler: ChangePassword(service),
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     CronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
