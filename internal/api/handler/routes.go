package handler

import (
	"net/http"
	"time"

	"github.com/gmendes/agency-ops-api/internal/api/handler/router"
	"github.com/gmendes/agency-ops-api/internal/usecases/authenticating"
	"github.com/gmendes/agency-ops-api/internal/usecases/budgeting"
	"github.com/gmendes/agency-ops-api/internal/usecases/pacing"
	"github.com/gmendes/agency-ops-api/internal/usecases/suppressing"
	"github.com/gmendes/agency-ops-api/pkg/middleware"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
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
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Pacing(service pacing.Reporter, location *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/pacing",
			Method:      http.MethodGet,
			Handler:     GetAccountPacing(service, location),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pacing/report",
			Method:      http.MethodGet,
			Handler:     GetPacingReport(service, location),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Review(service ReviewRunner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pacing/review/run",
			Method:      http.MethodPost,
			Handler:     RunPacingReview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/pacing/review/progress",
			Method:      http.MethodGet,
			Handler:     GetPacingReviewProgress(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func BudgetOverrides(service budgeting.BudgetResolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients/:id/budget-overrides",
			Method:      http.MethodGet,
			Handler:     ListBudgetOverrides(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/budget-overrides",
			Method:      http.MethodPost,
			Handler:     CreateBudgetOverride(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/budget-overrides/:override_id",
			Method:      http.MethodDelete,
			Handler:     DeactivateBudgetOverride(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Suppression(service suppressing.SuppressionTracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients/:id/suppress-warning",
			Method:      http.MethodPost,
			Handler:     SuppressWarning(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
