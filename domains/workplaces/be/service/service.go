package service

import (
	"context"
	_ "embed"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/staffline/workforce/domains/workplaces/be/repo"
	"github.com/staffline/workforce/platform/go/persistence"
	"github.com/staffline/workforce/platform/go/query"
	"github.com/staffline/workforce/platform/go/validation"
)

// Domain sentinel errors.
var (
	ErrNotFound = errors.New("workplace not found")
	ErrConflict = errors.New("workplace conflict")
)

var (
	//go:embed schemas/create_workplace.json
	createWorkplaceSchemaJSON []byte
	//go:embed schemas/update_workplace.json
	updateWorkplaceSchemaJSON []byte

	createWorkplaceSchema = validation.MustCompile("create_workplace.json", createWorkplaceSchemaJSON)
	updateWorkplaceSchema = validation.MustCompile("update_workplace.json", updateWorkplaceSchemaJSON)
)

// Workplace represents the domain view of a workplace record.
type Workplace struct {
	ID        uuid.UUID
	Name      string
	Address1  string
	Address2  *string
	City      string
	State     string
	Zip       string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter narrows a listing. Nil fields impose nothing.
type Filter struct {
	Name     *string
	City     *string
	State    *string
	IsActive *bool
}

// ListOptions controls filtering, sorting and pagination.
type ListOptions struct {
	Page   query.Page
	Filter Filter
	Sort   query.Sort
}

// ListResult wraps a page of workplaces with the number of matching workplaces.
type ListResult struct {
	Workplaces []Workplace
	Total      int
}

// CreateInput represents the payload required to create a workplace.
// IsActive defaults to true.
type CreateInput struct {
	Name     string  `json:"name"`
	Address1 string  `json:"address1"`
	Address2 *string `json:"address2,omitempty"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	Zip      string  `json:"zip"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// UpdateInput lists the fields that can be changed; nil leaves a field
// untouched and ClearAddress2 removes the second address line.
type UpdateInput struct {
	Name          *string `json:"name,omitempty"`
	Address1      *string `json:"address1,omitempty"`
	Address2      *string `json:"address2,omitempty"`
	ClearAddress2 bool    `json:"-"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	Zip           *string `json:"zip,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

func (in UpdateInput) empty() bool {
	return in.Name == nil && in.Address1 == nil && in.Address2 == nil && !in.ClearAddress2 &&
		in.City == nil && in.State == nil && in.Zip == nil && in.IsActive == nil
}

// Service defines the business operations for the workplaces domain.
type Service interface {
	Create(ctx context.Context, input CreateInput) (Workplace, error)
	List(ctx context.Context, opts ListOptions) (ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (Workplace, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (Workplace, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repo.Repository
}

// New constructs a workplaces Service instance backed by the provided repository.
func New(r repo.Repository) Service {
	if r == nil {
		panic("workplaces repository is required")
	}
	return &service{repo: r}
}

func (s *service) Create(ctx context.Context, input CreateInput) (Workplace, error) {
	input = CreateInput{
		Name:     strings.TrimSpace(input.Name),
		Address1: strings.TrimSpace(input.Address1),
		Address2: optionalLine(input.Address2),
		City:     strings.TrimSpace(input.City),
		State:    strings.TrimSpace(input.State),
		Zip:      strings.TrimSpace(input.Zip),
		IsActive: input.IsActive,
	}

	if err := createWorkplaceSchema.Validate(input); err != nil {
		return Workplace{}, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	record, err := s.repo.Create(ctx, persistence.CreateWorkplaceParams{
		Name:     input.Name,
		Address1: input.Address1,
		Address2: input.Address2,
		City:     input.City,
		State:    input.State,
		Zip:      input.Zip,
		IsActive: active,
	})
	if err != nil {
		return Workplace{}, mapPersistenceError(err)
	}

	return mapWorkplace(record), nil
}

func (s *service) List(ctx context.Context, opts ListOptions) (ListResult, error) {
	result, err := s.repo.List(ctx, persistence.ListWorkplacesParams{
		Page: opts.Page,
		Criteria: query.Criteria{
			"name":     opts.Filter.Name,
			"city":     opts.Filter.City,
			"state":    opts.Filter.State,
			"isActive": opts.Filter.IsActive,
		},
		Sort: opts.Sort,
	})
	if err != nil {
		return ListResult{}, err
	}

	workplaces := make([]Workplace, 0, len(result.Workplaces))
	for _, record := range result.Workplaces {
		workplaces = append(workplaces, mapWorkplace(record))
	}

	return ListResult{Workplaces: workplaces, Total: result.TotalItems}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Workplace, error) {
	if id == uuid.Nil {
		return Workplace{}, ErrNotFound
	}

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return Workplace{}, mapPersistenceError(err)
	}

	return mapWorkplace(record), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (Workplace, error) {
	if id == uuid.Nil {
		return Workplace{}, ErrNotFound
	}

	if input.empty() {
		return Workplace{}, validation.NewError(map[string]string{
			validation.PayloadField: "at least one field must be provided",
		})
	}

	normalized := UpdateInput{
		Name:          trimmed(input.Name),
		Address1:      trimmed(input.Address1),
		Address2:      trimmed(input.Address2),
		ClearAddress2: input.ClearAddress2,
		City:          trimmed(input.City),
		State:         trimmed(input.State),
		Zip:           trimmed(input.Zip),
		IsActive:      input.IsActive,
	}
	// a blank second line means "remove it"
	if normalized.Address2 != nil && *normalized.Address2 == "" {
		normalized.Address2 = nil
		normalized.ClearAddress2 = true
	}

	if err := updateWorkplaceSchema.Validate(normalized); err != nil {
		return Workplace{}, err
	}

	record, err := s.repo.Update(ctx, id, persistence.UpdateWorkplaceParams{
		Name:          normalized.Name,
		Address1:      normalized.Address1,
		Address2:      normalized.Address2,
		ClearAddress2: normalized.ClearAddress2,
		City:          normalized.City,
		State:         normalized.State,
		Zip:           normalized.Zip,
		IsActive:      normalized.IsActive,
	})
	if err != nil {
		return Workplace{}, mapPersistenceError(err)
	}

	return mapWorkplace(record), nil
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

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	out := strings.TrimSpace(*value)
	return &out
}

func optionalLine(value *string) *string {
	out := trimmed(value)
	if out == nil || *out == "" {
		return nil
	}
	return out
}

func mapWorkplace(record persistence.Workplace) Workplace {
	return Workplace{
		ID:        record.ID,
		Name:      record.Name,
		Address1:  record.Address1,
		Address2:  record.Address2,
		City:      record.City,
		State:     record.State,
		Zip:       record.Zip,
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
