// Package attendance records attendance recap entries (rekap kehadiran).
package attendance

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/pkm-kampus/portal/core"
)

var ErrMissingFields = errors.New("Semua field wajib diisi")

type Entry struct {
	ID        int    `json:"id"`
	NIM       string `json:"nim"`
	Nama      string `json:"nama"`
	Matkul    string `json:"matkul"`
	Pertemuan string `json:"pertemuan"`
	Status    string `json:"status"`
	Tanggal   string `json:"tanggal"` // YYYY-MM-DD
}

type NewEntry struct {
	NIM       string `form:"nim" validate:"required"`
	Nama      string `form:"nama" validate:"required"`
	Matkul    string `form:"matkul" validate:"required"`
	Pertemuan string `form:"pertemuan" validate:"required"`
	Status    string `form:"status" validate:"required"`
	Tanggal   string `form:"tanggal" validate:"required"`
}

// Validate collapses any missing field into ErrMissingFields.
func (ne *NewEntry) Validate(validate *validator.Validate) error {
	ne.NIM = core.CleanString(ne.NIM)
	ne.Nama = core.CleanString(ne.Nama)
	ne.Matkul = core.CleanString(ne.Matkul)
	ne.Pertemuan = core.CleanString(ne.Pertemuan)
	ne.Status = core.CleanString(ne.Status)
	ne.Tanggal = core.CleanString(ne.Tanggal)

	if err := validate.Struct(ne); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return core.NewValidationError(ErrMissingFields)
		}
		return err
	}
	return nil
}

type (
	Repository interface {
		CreateEntry(ctx context.Context, e Entry) (Entry, error)
		// QueryAllEntries returns every entry, newest tanggal first.
		QueryAllEntries(ctx context.Context) ([]Entry, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Entry, error) {
	return svc.repo.QueryAllEntries(ctx)
}

func (svc *Service) Create(ctx context.Context, ne NewEntry) (Entry, error) {
	return svc.repo.CreateEntry(ctx, Entry{
		NIM:       ne.NIM,
		Nama:      ne.Nama,
		Matkul:    ne.Matkul,
		Pertemuan: ne.Pertemuan,
		Status:    ne.Status,
		Tanggal:   ne.Tanggal,
	})
}
