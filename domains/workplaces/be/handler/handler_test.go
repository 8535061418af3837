package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/staffline/workforce/domains/workplaces/be/service"
	workplaces "github.com/staffline/workforce/generated/go/workplaces"
	"github.com/staffline/workforce/platform/go/problem"
	"github.com/staffline/workforce/platform/go/query"
)

type mockService struct {
	createFn func(ctx context.Context, input service.CreateInput) (service.Workplace, error)
	listFn   func(ctx context.Context, opts service.ListOptions) (service.ListResult, error)
	getFn    func(ctx context.Context, id uuid.UUID) (service.Workplace, error)
	updateFn func(ctx context.Context, id uuid.UUID, input service.UpdateInput) (service.Workplace, error)
	removeFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockService) Create(ctx context.Context, input service.CreateInput) (service.Workplace, error) {
	if m.createFn == nil {
		panic("createFn not configured")
	}
	return m.createFn(ctx, input)
}

func (m *mockService) List(ctx context.Context, opts service.ListOptions) (service.ListResult, error) {
	if m.listFn == nil {
		panic("listFn not configured")
	}
	return m.listFn(ctx, opts)
}

func (m *mockService) Get(ctx context.Context, id uuid.UUID) (service.Workplace, error) {
	if m.getFn == nil {
		panic("getFn not configured")
	}
	return m.getFn(ctx, id)
}

func (m *mockService) Update(ctx context.Context, id uuid.UUID, input service.UpdateInput) (service.Workplace, error) {
	if m.updateFn == nil {
		panic("updateFn not configured")
	}
	return m.updateFn(ctx, id, input)
}

func (m *mockService) Remove(ctx context.Context, id uuid.UUID) error {
	if m.removeFn == nil {
		panic("removeFn not configured")
	}
	return m.removeFn(ctx, id)
}

func serve(t *testing.T, svc service.Service, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	_ = workplaces.HandlerWithOptions(
		workplaces.NewStrictHandler(New(svc, zaptest.NewLogger(t)), nil),
		workplaces.ChiServerOptions{BaseRouter: router},
	)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWorkplacesListSuccess(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.listFn = func(ctx context.Context, opts service.ListOptions) (service.ListResult, error) {
		require.Equal(t, query.Page{Page: 1, Take: 10}, opts.Page)
		require.NotNil(t, opts.Filter.State)
		require.Equal(t, "IL", *opts.Filter.State)
		require.Nil(t, opts.Filter.IsActive)
		require.Equal(t, []string{"city", "name"}, opts.Sort.Keys)
		require.Equal(t, query.Asc, opts.Sort.Direction)

		return service.ListResult{
			Workplaces: []service.Workplace{{ID: uuid.New(), Name: "Acme", State: "IL", IsActive: true}},
			Total:      1,
		}, nil
	}

	rec := serve(t, svc, http.MethodGet, "/workplaces?state=IL&sortBy=city%26name&sortOrder=ASC", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data  []map[string]any `json:"data"`
		Total int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)
	require.Len(t, body.Data, 1)
	require.NotContains(t, body.Data[0], "address2")
}

func TestWorkplacesCreateMissingBody(t *testing.T) {
	t.Parallel()

	h := New(&mockService{}, zaptest.NewLogger(t))

	resp, err := h.WorkplacesCreate(context.Background(), workplaces.WorkplacesCreateRequestObject{})
	require.NoError(t, err)

	problemResp, ok := resp.(workplaces.WorkplacesCreatedefaultApplicationProblemPlusJSONResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, problemResp.StatusCode)
}

func TestWorkplacesCreateSuccess(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	workplaceID := uuid.New()
	suite := "Suite 4"

	svc := &mockService{}
	svc.createFn = func(ctx context.Context, input service.CreateInput) (service.Workplace, error) {
		require.Equal(t, "Acme", input.Name)
		require.NotNil(t, input.Address2)
		require.Nil(t, input.IsActive)
		return service.Workplace{ID: workplaceID, Name: input.Name, Address2: &suite, IsActive: true, CreatedAt: now, UpdatedAt: now}, nil
	}

	rec := serve(t, svc, http.MethodPost, "/workplaces",
		`{"name":"Acme","address1":"1 Main St","address2":"Suite 4","city":"Springfield","state":"IL","zip":"62701"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "/api/v1/workplaces/"+workplaceID.String(), rec.Header().Get("Location"))
	require.Contains(t, rec.Body.String(), `"address2":"Suite 4"`)
	require.Contains(t, rec.Body.String(), `"isActive":true`)
}

func TestWorkplacesUpdateExplicitNullClearsAddress2(t *testing.T) {
	t.Parallel()

	workplaceID := uuid.New()

	svc := &mockService{}
	svc.updateFn = func(ctx context.Context, id uuid.UUID, input service.UpdateInput) (service.Workplace, error) {
		require.Equal(t, workplaceID, id)
		require.True(t, input.ClearAddress2)
		require.Nil(t, input.Address2)
		require.Nil(t, input.Name)
		return service.Workplace{ID: id, IsActive: true}, nil
	}

	rec := serve(t, svc, http.MethodPatch, "/workplaces/"+workplaceID.String(), `{"address2":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestWorkplacesUpdateAbsentAddress2IsUntouched(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.updateFn = func(ctx context.Context, id uuid.UUID, input service.UpdateInput) (service.Workplace, error) {
		require.False(t, input.ClearAddress2)
		require.Nil(t, input.Address2)
		require.NotNil(t, input.IsActive)
		require.False(t, *input.IsActive)
		return service.Workplace{ID: id}, nil
	}

	rec := serve(t, svc, http.MethodPatch, "/workplaces/"+uuid.NewString(), `{"isActive":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestWorkplacesUpdateSetsAddress2(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.updateFn = func(ctx context.Context, id uuid.UUID, input service.UpdateInput) (service.Workplace, error) {
		require.False(t, input.ClearAddress2)
		require.NotNil(t, input.Address2)
		require.Equal(t, "Unit 9", *input.Address2)
		return service.Workplace{ID: id, Address2: input.Address2}, nil
	}

	rec := serve(t, svc, http.MethodPatch, "/workplaces/"+uuid.NewString(), `{"address2":"Unit 9"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"address2":"Unit 9"`)
}

func TestWorkplacesGetNotFound(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.getFn = func(ctx context.Context, id uuid.UUID) (service.Workplace, error) {
		return service.Workplace{}, service.ErrNotFound
	}

	rec := serve(t, svc, http.MethodGet, "/workplaces/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, problem.ContentType, rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "workplace not found")
}

func TestWorkplacesRemoveMalformedID(t *testing.T) {
	t.Parallel()

	rec := serve(t, &mockService{}, http.MethodDelete, "/workplaces/123", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkplacesRemove(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.removeFn = func(ctx context.Context, id uuid.UUID) error { return nil }

	h := New(svc, zaptest.NewLogger(t))

	resp, err := h.WorkplacesRemove(context.Background(), workplaces.WorkplacesRemoveRequestObject{Id: uuid.New()})
	require.NoError(t, err)

	_, ok := resp.(workplaces.WorkplacesRemove204Response)
	require.True(t, ok)
}

func TestWorkplacesUpdateConflict(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.updateFn = func(ctx context.Context, id uuid.UUID, input service.UpdateInput) (service.Workplace, error) {
		return service.Workplace{}, service.ErrConflict
	}

	h := New(svc, zaptest.NewLogger(t))

	resp, err := h.WorkplacesUpdate(context.Background(), workplaces.WorkplacesUpdateRequestObject{
		Id:   uuid.New(),
		Body: &workplaces.UpdateWorkplace{Name: ptr("Acme")},
	})
	require.NoError(t, err)

	problemResp, ok := resp.(workplaces.WorkplacesUpdatedefaultApplicationProblemPlusJSONResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, problemResp.StatusCode)
	require.Equal(t, problem.TypeConflict, *problemResp.Body.Type)
}

func ptr[T any](v T) *T {
	return &v
}
