package sqlxrepos

import (
	"context"

	"github.com/pkg/errors"

	"github.com/pkm-kampus/portal/core"
	"github.com/pkm-kampus/portal/core/attendance"
)

type entryRow struct {
	ID        int    `db:"id"`
	NIM       string `db:"nim"`
	Nama      string `db:"nama"`
	Matkul    string `db:"matkul"`
	Pertemuan string `db:"pertemuan"`
	Status    string `db:"status"`
	Tanggal   string `db:"tanggal"`
}

type attendanceRepository struct {
	db core.DBExecutor
}

var _ attendance.Repository = (*attendanceRepository)(nil)

func NewAttendanceRepository(db core.DBExecutor) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) CreateEntry(ctx context.Context, e attendance.Entry) (attendance.Entry, error) {
	id, err := insert(ctx, repo.db,
		"INSERT INTO rekap_kehadiran (nim, nama, matkul, pertemuan, status, tanggal) VALUES (?, ?, ?, ?, ?, ?)",
		e.NIM, e.Nama, e.Matkul, e.Pertemuan, e.Status, e.Tanggal,
	)
	if err != nil {
		return attendance.Entry{}, errors.Wrap(err, "inserting rekap_kehadiran")
	}
	e.ID = int(id)
	return e, nil
}

func (repo *attendanceRepository) QueryAllEntries(ctx context.Context) ([]attendance.Entry, error) {
	var rows []entryRow
	q := "SELECT id, nim, nama, matkul, pertemuan, status, tanggal FROM rekap_kehadiran ORDER BY tanggal DESC, id DESC"
	if err := repo.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, errors.Wrap(err, "selecting rekap_kehadiran")
	}
	entries := make([]attendance.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, attendance.Entry(r))
	}
	return entries, nil
}
