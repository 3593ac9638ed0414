package handler

import (
	"net/http"

	"github.com/vfg2006/channel-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/channel-dashboard-api/internal/scheduler"
	"github.com/vfg2006/channel-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/channel-dashboard-api/internal/usecases/catalog"
	"github.com/vfg2006/channel-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/channel-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/channel-dashboard-api/internal/usecases/targeting"
	"github.com/vfg2006/channel-dashboard-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Products(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func TeamMembers(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/team-members",
			Method:      http.MethodPost,
			Handler:     CreateTeamMember(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/team-members",
			Method:      http.MethodGet,
			Handler:     ListTeamMembers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/team-members/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTeamMember(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Entries(recordingService recording.RecordingService, reportingService reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/entries",
			Method:      http.MethodPost,
			Handler:     CreateEntry(recordingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/entries",
			Method:      http.MethodGet,
			Handler:     ListEntries(recordingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/entries/export",
			Method:      http.MethodGet,
			Handler:     ExportChannelEntries(reportingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/entries/:id",
			Method:      http.MethodPut,
			Handler:     UpdateEntry(recordingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/entries/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteEntry(recordingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Targets(service targeting.TargetService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/targets",
			Method:      http.MethodPost,
			Handler:     CreateTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/targets",
			Method:      http.MethodGet,
			Handler:     ListTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/targets/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Reports(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/summary",
			Method:      http.MethodGet,
			Handler:     GetReportSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/entries",
			Method:      http.MethodGet,
			Handler:     GetReportEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/export",
			Method:      http.MethodGet,
			Handler:     ExportReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Live(service *scheduler.EntrySnapshotSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/live/:channel/entries",
			Method:      http.MethodGet,
			Handler:     GetLiveChannelEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/entry-snapshot/run",
			Method:      http.MethodPost,
			Handler:     RunEntrySnapshotSync(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/entry-snapshot/start",
			Method:      http.MethodPost,
			Handler:     StartEntrySnapshotSync(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/entry-snapshot/stop",
			Method:      http.MethodPost,
			Handler:     StopEntrySnapshotSync(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
