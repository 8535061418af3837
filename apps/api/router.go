package main

import (
	"context"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	workersapi "github.com/staffline/workforce/generated/go/workers"
	workplacesapi "github.com/staffline/workforce/generated/go/workplaces"
	platformlogging "github.com/staffline/workforce/platform/go/logging"
	"github.com/staffline/workforce/platform/go/metrics"
	platformmiddleware "github.com/staffline/workforce/platform/go/middleware"
	"github.com/staffline/workforce/platform/go/problem"
)

const apiPrefix = "/api/v1"

type routerDeps struct {
	logger         *zap.Logger
	spec           *openapi3.T
	ready          func(ctx context.Context) error
	metrics        *metrics.HTTP // nil disables /metrics
	corsOrigins    []string
	requestTimeout time.Duration
	workers        workersapi.StrictServerInterface
	workplaces     workplacesapi.StrictServerInterface
}

func newRouter(deps routerDeps) http.Handler {
	rootRouter := chi.NewRouter()
	rootRouter.NotFound(func(w http.ResponseWriter, r *http.Request) {
		problem.NotFound(w, "no route matches "+r.URL.Path)
	})

	rootRouter.Use(
		chimw.RequestID,
		platformmiddleware.RequestTrace,
		chimw.RealIP,
		chimw.Recoverer,
		chimw.Timeout(deps.requestTimeout),
		platformmiddleware.CORS(deps.corsOrigins),
	)
	if deps.metrics != nil {
		rootRouter.Use(deps.metrics.Middleware)
	}
	rootRouter.Use(platformlogging.RequestLogger(deps.logger))

	rootRouter.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	rootRouter.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := deps.ready(r.Context()); err != nil {
			platformlogging.FromRequest(r, deps.logger).Warn("readiness check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	if deps.metrics != nil {
		rootRouter.Method(http.MethodGet, "/metrics", deps.metrics.Handler())
	}

	registerDocsRoutes(rootRouter, deps.spec, deps.logger)

	requestErrors := requestErrorHandler(deps.logger)
	responseErrors := responseErrorHandler(deps.logger)

	apiRouter := chi.NewRouter()
	apiRouter.Use(platformmiddleware.OpenAPIValidator(deps.spec, deps.logger))
	apiRouter.Group(func(r chi.Router) {
		_ = workersapi.HandlerWithOptions(
			workersapi.NewStrictHandlerWithOptions(deps.workers, nil, workersapi.StrictHTTPServerOptions{
				RequestErrorHandlerFunc:  requestErrors,
				ResponseErrorHandlerFunc: responseErrors,
			}),
			workersapi.ChiServerOptions{BaseRouter: r, ErrorHandlerFunc: requestErrors},
		)
	})
	apiRouter.Group(func(r chi.Router) {
		_ = workplacesapi.HandlerWithOptions(
			workplacesapi.NewStrictHandlerWithOptions(deps.workplaces, nil, workplacesapi.StrictHTTPServerOptions{
				RequestErrorHandlerFunc:  requestErrors,
				ResponseErrorHandlerFunc: responseErrors,
			}),
			workplacesapi.ChiServerOptions{BaseRouter: r, ErrorHandlerFunc: requestErrors},
		)
	})

	rootRouter.Mount(apiPrefix, apiRouter)

	return rootRouter
}

// requestErrorHandler reports parameters and bodies the generated servers
// could not bind.
func requestErrorHandler(logger *zap.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		platformlogging.FromRequest(r, logger).Warn("request rejected", zap.Error(err))
		problem.BadRequest(w, err.Error(), nil)
	}
}

func responseErrorHandler(logger *zap.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		platformlogging.FromRequest(r, logger).Error("write response failed", zap.Error(err))
		problem.InternalError(w, "an unexpected error occurred")
	}
}
