// Package task holds the deadline list served by /api/tasks.
package task

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/pkm-kampus/portal/core"
)

// Priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var ErrMissingFields = errors.New("Nama, mata kuliah, dan deadline wajib diisi")

// Task is the API shape of a task. Columns left NULL by an update are encoded as null.
type Task struct {
	ID          int64       `json:"id"`
	Name        null.String `json:"name"`
	Course      null.String `json:"course"`
	DueDate     null.String `json:"dueDate"` // ISO-8601, e.g. 2023-12-15T23:59
	Priority    null.String `json:"priority"`
	Description null.String `json:"description"`
	Completed   bool        `json:"completed"`
}

type NewTask struct {
	Name        string      `json:"name" validate:"required"`
	Course      string      `json:"course" validate:"required"`
	DueDate     string      `json:"dueDate" validate:"required"`
	Priority    null.String `json:"priority"`
	Description null.String `json:"description"`
}

// Validate collapses any missing required field into ErrMissingFields.
func (nt NewTask) Validate(validate *validator.Validate) error {
	if err := validate.Struct(nt); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return core.NewValidationError(ErrMissingFields)
		}
		return err
	}
	return nil
}

// UpdateTask replaces every column of a task. Absent fields are stored as NULL.
type UpdateTask struct {
	Name        null.String `json:"name"`
	Course      null.String `json:"course"`
	DueDate     null.String `json:"dueDate"`
	Priority    null.String `json:"priority"`
	Description null.String `json:"description"`
	Completed   Flag        `json:"completed"`
}

// Flag decodes any JSON value by truthiness: false, 0, "", null and absence are false.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(val)
	case float64:
		*f = val != 0
	case string:
		*f = val != ""
	default: // arrays & objects
		*f = true
	}
	return nil
}

type (
	Repository interface {
		CreateTask(ctx context.Context, t Task) (int64, error)
		// QueryAllTasks returns every task ordered by due date ascending.
		QueryAllTasks(ctx context.Context) ([]Task, error)
		UpdateTask(ctx context.Context, t Task) error
		DeleteTaskByID(ctx context.Context, id int64) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Task, error) {
	return svc.repo.QueryAllTasks(ctx)
}

// Create stores an incomplete task and returns its id.
func (svc *Service) Create(ctx context.Context, nt NewTask) (int64, error) {
	return svc.repo.CreateTask(ctx, Task{
		Name:        null.StringFrom(nt.Name),
		Course:      null.StringFrom(nt.Course),
		DueDate:     null.StringFrom(nt.DueDate),
		Priority:    nt.Priority,
		Description: nt.Description,
	})
}

func (svc *Service) Update(ctx context.Context, id int64, ut UpdateTask) error {
	return svc.repo.UpdateTask(ctx, Task{
		ID:          id,
		Name:        ut.Name,
		Course:      ut.Course,
		DueDate:     ut.DueDate,
		Priority:    ut.Priority,
		Description: ut.Description,
		Completed:   bool(ut.Completed),
	})
}

// Delete succeeds whether or not the task exists.
func (svc *Service) Delete(ctx context.Context, id int64) error {
	return svc.repo.DeleteTaskByID(ctx, id)
}

// PriorityLabel is the Indonesian label shown next to a task.
func PriorityLabel(p string) string {
	switch strings.ToLower(p) {
	case PriorityHigh:
		return "Tinggi"
	case PriorityMedium:
		return "Sedang"
	default:
		return "Rendah"
	}
}
