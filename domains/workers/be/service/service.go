package service

import (
	"context"
	_ "embed"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/staffline/workforce/domains/workers/be/repo"
	"github.com/staffline/workforce/platform/go/persistence"
	"github.com/staffline/workforce/platform/go/query"
	"github.com/staffline/workforce/platform/go/validation"
)

// Domain sentinel errors.
var (
	ErrNotFound = errors.New("worker not found")
	ErrConflict = errors.New("worker conflict")
)

var (
	//go:embed schemas/create_worker.json
	createWorkerSchemaJSON []byte
	//go:embed schemas/update_worker.json
	updateWorkerSchemaJSON []byte

	createWorkerSchema = validation.MustCompile("create_worker.json", createWorkerSchemaJSON)
	updateWorkerSchema = validation.MustCompile("update_worker.json", updateWorkerSchemaJSON)
)

// Worker represents the domain view of a worker record.
type Worker struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter narrows a listing. Nil fields impose nothing; text fields match
// case-insensitive substrings.
type Filter struct {
	FirstName *string
	LastName  *string
	Email     *string
	IsActive  *bool
}

// ListOptions controls filtering, sorting and pagination.
type ListOptions struct {
	Page   query.Page
	Filter Filter
	Sort   query.Sort
}

// ListResult wraps a page of workers with the number of matching workers.
type ListResult struct {
	Workers []Worker
	Total   int
}

// CreateInput represents the payload required to create a new worker.
type CreateInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// UpdateInput lists the fields that can be changed; nil leaves a field untouched.
type UpdateInput struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// Service defines the business operations for the workers domain.
type Service interface {
	Create(ctx context.Context, input CreateInput) (Worker, error)
	List(ctx context.Context, opts ListOptions) (ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (Worker, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (Worker, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repo.Repository
}

// New constructs a workers Service instance backed by the provided repository.
func New(r repo.Repository) Service {
	if r == nil {
		panic("workers repository is required")
	}
	return &service{repo: r}
}

func (s *service) Create(ctx context.Context, input CreateInput) (Worker, error) {
	input = CreateInput{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     normalizeEmail(input.Email),
	}

	if err := createWorkerSchema.Validate(input); err != nil {
		return Worker{}, err
	}

	record, err := s.repo.Create(ctx, persistence.CreateWorkerParams{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	})
	if err != nil {
		return Worker{}, mapPersistenceError(err)
	}

	return mapWorker(record), nil
}

func (s *service) List(ctx context.Context, opts ListOptions) (ListResult, error) {
	result, err := s.repo.List(ctx, persistence.ListWorkersParams{
		Page: opts.Page,
		Criteria: query.Criteria{
			"firstName": opts.Filter.FirstName,
			"lastName":  opts.Filter.LastName,
			"email":     opts.Filter.Email,
			"isActive":  opts.Filter.IsActive,
		},
		Sort: opts.Sort,
	})
	if err != nil {
		return ListResult{}, err
	}

	workers := make([]Worker, 0, len(result.Workers))
	for _, record := range result.Workers {
		workers = append(workers, mapWorker(record))
	}

	return ListResult{Workers: workers, Total: result.TotalItems}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Worker, error) {
	if id == uuid.Nil {
		return Worker{}, ErrNotFound
	}

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return Worker{}, mapPersistenceError(err)
	}

	return mapWorker(record), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (Worker, error) {
	if id == uuid.Nil {
		return Worker{}, ErrNotFound
	}

	params, err := buildUpdateParams(input)
	if err != nil {
		return Worker{}, err
	}

	record, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return Worker{}, mapPersistenceError(err)
	}

	return mapWorker(record), nil
}

func (s *service) Remove(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrNotFound
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		return mapPersistenceError(err)
	}

	return nil
}

func buildUpdateParams(input UpdateInput) (persistence.UpdateWorkerParams, error) {
	if input.FirstName == nil && input.LastName == nil && input.Email == nil {
		return persistence.UpdateWorkerParams{}, validation.NewError(map[string]string{
			validation.PayloadField: "at least one field must be provided",
		})
	}

	normalized := UpdateInput{
		FirstName: trimmed(input.FirstName),
		LastName:  trimmed(input.LastName),
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		normalized.Email = &email
	}

	if err := updateWorkerSchema.Validate(normalized); err != nil {
		return persistence.UpdateWorkerParams{}, err
	}

	return persistence.UpdateWorkerParams{
		FirstName: normalized.FirstName,
		LastName:  normalized.LastName,
		Email:     normalized.Email,
	}, nil
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	out := strings.TrimSpace(*value)
	return &out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func mapWorker(record persistence.Worker) Worker {
	return Worker{
		ID:        record.ID,
		FirstName: record.FirstName,
		LastName:  record.LastName,
		Email:     record.Email,
		IsActive:  record.IsActive,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func mapPersistenceError(err error) error {
	switch {
	case errors.Is(err, persistence.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, persistence.ErrConflict):
		return ErrConflict
	default:
		return err
	}
}
