package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/pkm-kampus/portal/core"
	"github.com/pkm-kampus/portal/core/student"
)

// mahasiswa columns are nullable; rows written by older clients may hold NULLs.
type studentRow struct {
	ID      int         `db:"id"`
	Nama    null.String `db:"nama"`
	NIM     null.String `db:"nim"`
	Jurusan null.String `db:"jurusan"`
}

func (r studentRow) toStudent() student.Student {
	return student.Student{ID: r.ID, Nama: r.Nama.String, NIM: r.NIM.String, Jurusan: r.Jurusan.String}
}

type studentRepository struct {
	db core.DBExecutor
}

var _ student.Repository = (*studentRepository)(nil)

func NewStudentRepository(db core.DBExecutor) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(ctx context.Context, s student.Student) (student.Student, error) {
	id, err := insert(ctx, repo.db,
		"INSERT INTO mahasiswa (nama, nim, jurusan) VALUES (?, ?, ?)",
		s.Nama, s.NIM, s.Jurusan,
	)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "inserting mahasiswa")
	}
	s.ID = int(id)
	return s, nil
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	var rows []studentRow
	if err := repo.db.SelectContext(ctx, &rows, "SELECT id, nama, nim, jurusan FROM mahasiswa ORDER BY id"); err != nil {
		return nil, errors.Wrap(err, "selecting mahasiswa")
	}
	students := make([]student.Student, 0, len(rows))
	for _, r := range rows {
		students = append(students, r.toStudent())
	}
	return students, nil
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id int) (student.Student, error) {
	var row studentRow
	q := repo.db.Rebind("SELECT id, nama, nim, jurusan FROM mahasiswa WHERE id = ?")
	if err := repo.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, errors.Wrap(err, "selecting mahasiswa")
	}
	return row.toStudent(), nil
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, s student.Student) error {
	err := exec(ctx, repo.db,
		"UPDATE mahasiswa SET nama = ?, nim = ?, jurusan = ? WHERE id = ?",
		s.Nama, s.NIM, s.Jurusan, s.ID,
	)
	return errors.Wrap(err, "updating mahasiswa")
}

func (repo *studentRepository) DeleteStudentByID(ctx context.Context, id int) error {
	err := exec(ctx, repo.db, "DELETE FROM mahasiswa WHERE id = ?", id)
	return errors.Wrap(err, "deleting mahasiswa")
}
