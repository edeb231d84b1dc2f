// Package student manages the student roster (mahasiswa).
package student

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/pkm-kampus/portal/core"
)

var ErrNotFound = errors.New("student not found")

type Student struct {
	ID      int    `json:"id"`
	Nama    string `json:"nama"`
	NIM     string `json:"nim"`
	Jurusan string `json:"jurusan"`
}

// NewStudent is the add-form payload. Every field must be present.
type NewStudent struct {
	Nama    string `form:"nama" json:"nama" validate:"notblank"`
	NIM     string `form:"nim" json:"nim" validate:"notblank"`
	Jurusan string `form:"jurusan" json:"jurusan" validate:"notblank"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Nama = core.CleanString(ns.Nama)
	ns.NIM = core.CleanString(ns.NIM)
	ns.Jurusan = core.CleanString(ns.Jurusan)
	return validate.Struct(ns)
}

// UpdateStudent is the edit-form payload; it is stored as sent.
type UpdateStudent struct {
	Nama    string `form:"nama" json:"nama"`
	NIM     string `form:"nim" json:"nim"`
	Jurusan string `form:"jurusan" json:"jurusan"`
}

type (
	Repository interface {
		CreateStudent(ctx context.Context, s Student) (Student, error)
		QueryAllStudents(ctx context.Context) ([]Student, error)
		GetStudentByID(ctx context.Context, id int) (Student, error)
		UpdateStudent(ctx context.Context, s Student) error
		DeleteStudentByID(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	return svc.repo.CreateStudent(ctx, Student{Nama: ns.Nama, NIM: ns.NIM, Jurusan: ns.Jurusan})
}

func (svc *Service) QueryAll(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id int, us UpdateStudent) error {
	return svc.repo.UpdateStudent(ctx, Student{ID: id, Nama: us.Nama, NIM: us.NIM, Jurusan: us.Jurusan})
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteStudentByID(ctx, id)
}
