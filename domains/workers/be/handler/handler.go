package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"

	"github.com/staffline/workforce/domains/workers/be/service"
	workers "github.com/staffline/workforce/generated/go/workers"
	platformlogging "github.com/staffline/workforce/platform/go/logging"
	"github.com/staffline/workforce/platform/go/problem"
	"github.com/staffline/workforce/platform/go/query"
	"github.com/staffline/workforce/platform/go/validation"
)

type operation string

const (
	createOperation operation = "workersCreate"
	listOperation   operation = "workersList"
	getOperation    operation = "workersGet"
	updateOperation operation = "workersUpdate"
	removeOperation operation = "workersRemove"
)

// Handler wires the workers service to the generated HTTP contract.
type Handler struct {
	svc    service.Service
	logger *zap.Logger
}

var _ workers.StrictServerInterface = (*Handler)(nil)

// New constructs a Handler instance.
func New(svc service.Service, logger *zap.Logger) *Handler {
	if svc == nil {
		panic("workers service is required")
	}
	if logger == nil {
		panic("logger is required")
	}

	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) WorkersList(ctx context.Context, request workers.WorkersListRequestObject) (workers.WorkersListResponseObject, error) {
	result, err := h.svc.List(ctx, buildListOptions(request.Params))
	if err != nil {
		status, problem := h.problemForError(ctx, err, listOperation)
		return workers.WorkersListdefaultApplicationProblemPlusJSONResponse{Body: problem, StatusCode: status}, nil
	}

	items := make([]workers.Worker, 0, len(result.Workers))
	for _, worker := range result.Workers {
		items = append(items, toAPIWorker(worker))
	}

	return workers.WorkersList200JSONResponse{Data: items, Total: result.Total}, nil
}

func (h *Handler) WorkersCreate(ctx context.Context, request workers.WorkersCreateRequestObject) (workers.WorkersCreateResponseObject, error) {
	if request.Body == nil {
		status, problem := h.problemForError(ctx, missingBody(), createOperation)
		return workers.WorkersCreatedefaultApplicationProblemPlusJSONResponse{Body: problem, StatusCode: status}, nil
	}

	created, err := h.svc.Create(ctx, toServiceCreateInput(request.Body))
	if err != nil {
		status, problem := h.problemForError(ctx, err, createOperation)
		return workers.WorkersCreatedefaultApplicationProblemPlusJSONResponse{Body: problem, StatusCode: status}, nil
	}

	location := fmt.Sprintf("/api/v1/workers/%s", created.ID.String())

	return workers.WorkersCreate201JSONResponse{
		Headers: workers.WorkersCreate201ResponseHeaders{Location: location},
		Body:    toAPIWorker(created),
	}, nil
}

func (h *Handler) WorkersGet(ctx context.Context, request workers.WorkersGetRequestObject) (workers.WorkersGetResponseObject, error) {
	worker, err := h.svc.Get(ctx, uuid.UUID(request.Id))
	if err != nil {
		status, problem := h.problemForError(ctx, err, getOperation)
		return workers.WorkersGetdefaultApplicationProblemPlusJSONResponse{Body: problem, StatusCode: status}, nil
	}

	return workers.WorkersGet200JSONResponse(toAPIWorker(worker)), nil
}

func (h *Handler) WorkersUpdate(ctx context.Context, request workers.WorkersUpdateRequestObject) (workers.WorkersUpdateResponseObject, error) {
	if request.Body == nil {
		status, problem := h.problemForError(ctx, missingBody(), updateOperation)
		return workers.WorkersUpdatedefaultApplicationProblemPlusJSONResponse{Body: problem, StatusCode: status}, nil
	}

	updated, err := h.svc.Update(ctx, uuid.UUID(request.Id), toServiceUpdateInput(request.Body))
	if err != nil {
		status, problem := h.problemForError(ctx, err, updateOperation)
		return workers.WorkersUpdatedefaultApplicationProblemPlusJSONResponse{Body: problem, StatusCode: status}, nil
	}

	return workers.WorkersUpdate200JSONResponse(toAPIWorker(updated)), nil
}

func (h *Handler) WorkersRemove(ctx context.Context, request workers.WorkersRemoveRequestObject) (workers.WorkersRemoveResponseObject, error) {
	if err := h.svc.Remove(ctx, uuid.UUID(request.Id)); err != nil {
		status, problem := h.problemForError(ctx, err, removeOperation)
		return workers.WorkersRemovedefaultApplicationProblemPlusJSONResponse{Body: problem, StatusCode: status}, nil
	}

	return workers.WorkersRemove204Response{}, nil
}

func buildListOptions(params workers.WorkersListParams) service.ListOptions {
	opts := service.ListOptions{
		Page: query.ParsePage(deref(params.Page), deref(params.Take)),
		Filter: service.Filter{
			FirstName: params.FirstName,
			LastName:  params.LastName,
			Email:     params.Email,
			IsActive:  params.IsActive,
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

func toAPIWorker(worker service.Worker) workers.Worker {
	return workers.Worker{
		Id:        openapi_types.UUID(worker.ID),
		FirstName: worker.FirstName,
		LastName:  worker.LastName,
		Email:     openapi_types.Email(worker.Email),
		IsActive:  worker.IsActive,
		CreatedAt: worker.CreatedAt.UTC(),
		UpdatedAt: worker.UpdatedAt.UTC(),
	}
}

func toServiceCreateInput(body *workers.CreateWorker) service.CreateInput {
	return service.CreateInput{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     string(body.Email),
	}
}

func toServiceUpdateInput(body *workers.WorkersUpdateJSONRequestBody) service.UpdateInput {
	input := service.UpdateInput{
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}

	if body.Email != nil {
		email := string(*body.Email)
		input.Email = &email
	}

	return input
}

func (h *Handler) problemForError(ctx context.Context, err error, op operation) (int, workers.ProblemDetails) {
	status, title, detail, problemType, fields := h.classifyError(err)

	logger := h.loggerFrom(ctx)
	fieldsForLog := []zap.Field{
		zap.String("operation", string(op)),
		zap.Int("status", status),
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("workers operation failed", append(fieldsForLog, zap.Error(err))...)
	case status == http.StatusNotFound:
		logger.Info("workers resource not found", append(fieldsForLog, zap.Error(err))...)
	default:
		logger.Warn("workers request rejected", append(fieldsForLog, zap.Error(err))...)
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
			"worker not found",
			problem.TypeNotFound,
			nil
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict,
			"Conflict",
			"a worker with this email already exists",
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

func (h *Handler) buildProblem(title, detail, problemType string, status int, fieldErrors validation.FieldErrors) workers.ProblemDetails {
	details := problem.New(status, title, detail, problemType, fieldErrors)

	body := workers.ProblemDetails{
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
