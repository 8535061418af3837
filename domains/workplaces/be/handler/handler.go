package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"

	"github.com/staffline/workforce/domains/workplaces/be/service"
	workplaces "github.com/staffline/workforce/generated/go/workplaces"
	platformlogging "github.com/staffline/workforce/platform/go/logging"
	"github.com/staffline/workforce/platform/go/problem"
	"github.com/staffline/workforce/platform/go/query"
	"github.com/staffline/workforce/platform/go/validation"
)

type operation string

const (
	createOperation operation = "workplacesCreate"
	listOperation   operation = "workplacesList"
	getOperation    operation = "workplacesGet"
	updateOperation operation = "workplacesUpdate"
	removeOperation operation = "workplacesRemove"
)

// Handler wires the workplaces service to the generated HTTP contract.
type Handler struct {
	svc    service.Service
	logger *zap.Logger
}

var _ workplaces.StrictServerInterface = (*Handler)(nil)

// New constructs a Handler instance.
func New(svc service.Service, logger *zap.Logger) *Handler {
	if svc == nil {
		panic("workplaces service is required")
	}
	if logger == nil {
		panic("logger is required")
	}

	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) WorkplacesList(ctx context.Context, request workplaces.WorkplacesListRequestObject) (workplaces.WorkplacesListResponseObject, error) {
	result, err := h.svc.List(ctx, buildListOptions(request.Params))
	if err != nil {
		status, problem := h.problemForError(ctx, err, listOperation)
		return workplaces.WorkplacesListdefaultApplicationProblemPlusJSONResponse{Body: problem, StatusCode: status}, nil
	}

	items := make([]workplaces.Workplace, 0, len(result.Workplaces))
	for _, workplace := range result.Workplaces {
		items = append(items, toAPIWorkplace(workplace))
	}

	return workplaces.WorkplacesList200JSONResponse{Data: items, Total: result.Total}, nil
}

func (h *Handler) WorkplacesCreate(ctx context.Context, request workplaces.WorkplacesCreateRequestObject) (workplaces.WorkplacesCreateResponseObject, error) {
	if request.Body == nil {
		status, problem := h.problemForError(ctx, missingBody(), createOperation)
		return workplaces.WorkplacesCreatedefaultApplicationProblemPlusJSONResponse{Body: problem, StatusCode: status}, nil
	}

	created, err := h.svc.Create(ctx, toServiceCreateInput(request.Body))
	if err != nil {
		status, problem := h.problemForError(ctx, err, createOperation)
		return workplaces.WorkplacesCreatedefaultApplicationProblemPlusJSONResponse{Body: problem, StatusCode: status}, nil
	}

	location := fmt.Sprintf("/api/v1/workplaces/%s", created.ID.String())

	return workplaces.WorkplacesCreate201JSONResponse{
		Headers: workplaces.WorkplacesCreate201ResponseHeaders{Location: location},
		Body:    toAPIWorkplace(created),
	}, nil
}

func (h *Handler) WorkplacesGet(ctx context.Context, request workplaces.WorkplacesGetRequestObject) (workplaces.WorkplacesGetResponseObject, error) {
	workplace, err := h.svc.Get(ctx, uuid.UUID(request.Id))
	if err != nil {
		status, problem := h.problemForError(ctx, err, getOperation)
		return workplaces.WorkplacesGetdefaultApplicationProblemPlusJSONResponse{Body: problem, StatusCode: status}, nil
	}

	return workplaces.WorkplacesGet200JSONResponse(toAPIWorkplace(workplace)), nil
}

func (h *Handler) WorkplacesUpdate(ctx context.Context, request workplaces.WorkplacesUpdateRequestObject) (workplaces.WorkplacesUpdateResponseObject, error) {
	if request.Body == nil {
		status, problem := h.problemForError(ctx, missingBody(), updateOperation)
		return workplaces.WorkplacesUpdatedefaultApplicationProblemPlusJSONResponse{Body: problem, StatusCode: status}, nil
	}

	updated, err := h.svc.Update(ctx, uuid.UUID(request.Id), toServiceUpdateInput(request.Body))
	if err != nil {
		status, problem := h.problemForError(ctx, err, updateOperation)
		return workplaces.WorkplacesUpdatedefaultApplicationProblemPlusJSONResponse{Body: problem, StatusCode: status}, nil
	}

	return workplaces.WorkplacesUpdate200JSONResponse(toAPIWorkplace(updated)), nil
}

func (h *Handler) WorkplacesRemove(ctx context.Context, request workplaces.WorkplacesRemoveRequestObject) (workplaces.WorkplacesRemoveResponseObject, error) {
	if err := h.svc.Remove(ctx, uuid.UUID(request.Id)); err != nil {
		status, problem := h.problemForError(ctx, err, removeOperation)
		return workplaces.WorkplacesRemovedefaultApplicationProblemPlusJSONResponse{Body: problem, StatusCode: status}, nil
	}

	return workplaces.WorkplacesRemove204Response{}, nil
}

func buildListOptions(params workplaces.WorkplacesListParams) service.ListOptions {
	opts := service.ListOptions{
		Page: query.ParsePage(deref(params.Page), deref(params.Take)),
		Filter: service.Filter{
			Name:     params.Name,
			City:     params.City,
			State:    params.State,
			IsActive: params.IsActive,
		},
	}

	var keys []string
	if params.SortBy != nil {
		keys = *params.SortBy
	}
	opts.Sort = query.ParseSort(keys, deref(params.SortOrder))

	return opts
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func missingBody() error {
	return validation.NewError(map[string]string{validation.PayloadField: "request body is required"})
}

func toAPIWorkplace(workplace service.Workplace) workplaces.Workplace {
	return workplaces.Workplace{
		Id:        openapi_types.UUID(workplace.ID),
		Name:      workplace.Name,
		Address1:  workplace.Address1,
		Address2:  workplace.Address2,
		City:      workplace.City,
		State:     workplace.State,
		Zip:       workplace.Zip,
		IsActive:  workplace.IsActive,
		CreatedAt: workplace.CreatedAt.UTC(),
		UpdatedAt: workplace.UpdatedAt.UTC(),
	}
}

func toServiceCreateInput(body *workplaces.CreateWorkplace) service.CreateInput {
	return service.CreateInput{
		Name:     body.Name,
		Address1: body.Address1,
		Address2: body.Address2,
		City:     body.City,
		State:    body.State,
		Zip:      body.Zip,
		IsActive: body.IsActive,
	}
}

// toServiceUpdateInput maps an explicit null address2 to ClearAddress2; an
// absent address2 leaves the stored line untouched.
func toServiceUpdateInput(body *workplaces.WorkplacesUpdateJSONRequestBody) service.UpdateInput {
	input := service.UpdateInput{
		Name:     body.Name,
		Address1: body.Address1,
		City:     body.City,
		State:    body.State,
		Zip:      body.Zip,
		IsActive: body.IsActive,
	}

	if body.Address2.IsSpecified() {
		if body.Address2.IsNull() {
			input.ClearAddress2 = true
		} else {
			address2 := body.Address2.MustGet()
			input.Address2 = &address2
		}
	}

	return input
}

func (h *Handler) problemForError(ctx context.Context, err error, op operation) (int, workplaces.ProblemDetails) {
	status, title, detail, problemType, fields := h.classifyError(err)

	logger := h.loggerFrom(ctx)
	fieldsForLog := []zap.Field{
		zap.String("operation", string(op)),
		zap.Int("status", status),
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("workplaces operation failed", append(fieldsForLog, zap.Error(err))...)
	case status == http.StatusNotFound:
		logger.Info("workplaces resource not found", append(fieldsForLog, zap.Error(err))...)
	default:
		logger.Warn("workplaces request rejected", append(fieldsForLog, zap.Error(err))...)
	}

	return status, h.buildProblem(title, detail, problemType, status, fields)
}

func (h *Handler) classifyError(err error) (status int, title, detail, problemType string, fieldErrors validation.FieldErrors) {
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest,
			"Validation failed",
			"one or more fields are invalid",
			problem.TypeValidation,
			validationErr.Fields
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound,
			"Resource not found",
			"workplace not found",
			problem.TypeNotFound,
			nil
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict,
			"Conflict",
			"workplace conflict",
			problem.TypeConflict,
			nil
	default:
		return http.StatusInternalServerError,
			"Internal server error",
			"an unexpected error occurred",
			problem.TypeInternal,
			nil
	}
}

func (h *Handler) buildProblem(title, detail, problemType string, status int, fieldErrors validation.FieldErrors) workplaces.ProblemDetails {
	details := problem.New(status, title, detail, problemType, fieldErrors)

	body := workplaces.ProblemDetails{
		Title:  details.Title,
		Status: details.Status,
		Detail: &details.Detail,
		Type:   &details.Type,
	}
	if details.Errors != nil {
		body.Errors = &details.Errors
	}

	return body
}

func (h *Handler) loggerFrom(ctx context.Context) *zap.Logger {
	if logger, ok := platformlogging.FromContext(ctx); ok {
		return logger
	}
	return h.logger
}
