package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/staffline/workforce/contracts"
	workersapi "github.com/staffline/workforce/generated/go/workers"
	workplacesapi "github.com/staffline/workforce/generated/go/workplaces"
	"github.com/staffline/workforce/platform/go/metrics"
	"github.com/staffline/workforce/platform/go/problem"
)

// stubWorkers answers list and get; other operations are never reached.
type stubWorkers struct {
	workersapi.StrictServerInterface
}

func (stubWorkers) WorkersList(ctx context.Context, request workersapi.WorkersListRequestObject) (workersapi.WorkersListResponseObject, error) {
	return workersapi.WorkersList200JSONResponse{Data: []workersapi.Worker{}}, nil
}

func (stubWorkers) WorkersGet(ctx context.Context, request workersapi.WorkersGetRequestObject) (workersapi.WorkersGetResponseObject, error) {
	return nil, errors.New("unexpected failure")
}

type stubWorkplaces struct {
	workplacesapi.StrictServerInterface
}

func newTestRouter(t *testing.T, ready func(context.Context) error, m *metrics.HTTP) http.Handler {
	t.Helper()

	spec, err := contracts.Load()
	require.NoError(t, err)

	return newRouter(routerDeps{
		logger:         zaptest.NewLogger(t),
		spec:           spec,
		ready:          ready,
		metrics:        m,
		corsOrigins:    []string{"*"},
		requestTimeout: 5 * time.Second,
		workers:        stubWorkers{},
		workplaces:     stubWorkplaces{},
	})
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRouterProbes(t *testing.T) {
	t.Parallel()

	healthy := newTestRouter(t, func(context.Context) error { return nil }, nil)
	rec := get(t, healthy, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	require.Equal(t, http.StatusOK, get(t, healthy, "/readyz").Code)

	unready := newTestRouter(t, func(context.Context) error { return errors.New("db down") }, nil)
	require.Equal(t, http.StatusOK, get(t, unready, "/healthz").Code)
	require.Equal(t, http.StatusServiceUnavailable, get(t, unready, "/readyz").Code)
}

func TestRouterServesOpenAPIDocument(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, func(context.Context) error { return nil }, nil)

	rec := get(t, router, "/openapi.json")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), `"/workers/{id}"`)

	docs := get(t, router, "/docs")
	require.Equal(t, http.StatusOK, docs.Code)
	require.Contains(t, docs.Body.String(), "/openapi.json")
}

func TestRouterMountsResourcesBehindValidator(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, func(context.Context) error { return nil }, nil)

	rec := get(t, router, "/api/v1/workers?isActive=true")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"data":[],"total":0}`, rec.Body.String())

	require.Equal(t, http.StatusBadRequest, get(t, router, "/api/v1/workers?isActive=maybe").Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workers", strings.NewReader(`{"firstName":"a","lastName":"b","email":"a@b.co","nickname":"c"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, problem.ContentType, rec.Header().Get("Content-Type"))
}

func TestRouterGeneratedServerErrorsAreProblems(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, func(context.Context) error { return nil }, nil)

	malformed := get(t, router, "/api/v1/workplaces/not-a-uuid")
	require.Equal(t, http.StatusBadRequest, malformed.Code)
	require.Equal(t, problem.ContentType, malformed.Header().Get("Content-Type"))

	failed := get(t, router, "/api/v1/workers/"+uuid.NewString())
	require.Equal(t, http.StatusInternalServerError, failed.Code)
	require.Equal(t, problem.ContentType, failed.Header().Get("Content-Type"))
	require.NotContains(t, failed.Body.String(), "unexpected failure")

	unknown := get(t, router, "/nowhere")
	require.Equal(t, http.StatusNotFound, unknown.Code)
	require.Equal(t, problem.ContentType, unknown.Header().Get("Content-Type"))
}

func TestRouterMetricsToggle(t *testing.T) {
	t.Parallel()

	disabled := newTestRouter(t, func(context.Context) error { return nil }, nil)
	require.Equal(t, http.StatusNotFound, get(t, disabled, "/metrics").Code)

	enabled := newTestRouter(t, func(context.Context) error { return nil }, metrics.NewHTTP())
	require.Equal(t, http.StatusOK, get(t, enabled, "/healthz").Code)

	rec := get(t, enabled, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `workforce_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}
