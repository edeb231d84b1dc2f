// Package testutil holds fixtures shared by the package tests.
package testutil

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/volatiletech/null/v8"

	"github.com/pkm-kampus/portal/core/attendance"
	"github.com/pkm-kampus/portal/core/student"
	"github.com/pkm-kampus/portal/core/task"
	"github.com/pkm-kampus/portal/core/user"
	"github.com/pkm-kampus/portal/storage/database"
)

// CreateUser stores a user. pwd is stored as given, so hash it first for bcrypt tests.
func CreateUser(t *testing.T, repo user.Repository, uname, pwd, role string) user.User {
	t.Helper()
	usr, err := repo.CreateUser(context.Background(), user.User{Username: uname, Password: pwd, Role: role})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateStudent(t *testing.T, repo student.Repository, nama, nim, jurusan string) student.Student {
	t.Helper()
	s, err := repo.CreateStudent(context.Background(), student.Student{Nama: nama, NIM: nim, Jurusan: jurusan})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return s
}

// CreateTask stores a task and applies completed with a follow-up update, as the API would.
func CreateTask(t *testing.T, repo task.Repository, name, course, dueDate, priority string, completed bool) task.Task {
	t.Helper()
	ctx := context.Background()
	tsk := task.Task{
		Name:     null.StringFrom(name),
		Course:   null.StringFrom(course),
		DueDate:  null.StringFrom(dueDate),
		Priority: null.NewString(priority, priority != ""),
	}
	id, err := repo.CreateTask(ctx, tsk)
	if err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}
	tsk.ID = id
	if completed {
		tsk.Completed = true
		if err = repo.UpdateTask(ctx, tsk); err != nil {
			t.Fatalf("CreateTask() failed: %v", err)
		}
	}
	return tsk
}

func CreateEntry(t *testing.T, repo attendance.Repository, nim, nama, matkul, tanggal string) attendance.Entry {
	t.Helper()
	e, err := repo.CreateEntry(context.Background(), attendance.Entry{
		NIM:       nim,
		Nama:      nama,
		Matkul:    matkul,
		Pertemuan: "1",
		Status:    "Hadir",
		Tanggal:   tanggal,
	})
	if err != nil {
		t.Fatalf("CreateEntry() failed: %v", err)
	}
	return e
}

// PrepareDB connects to TEST_DATABASE_URL ("postgres://..." or "mysql://<go-sql-driver dsn>"),
// migrates it and empties every table. Tests are skipped when the variable is unset.
func PrepareDB(t *testing.T) *sqlx.DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	driver, dsn := database.EnginePostgres, url
	if strings.HasPrefix(url, "mysql://") {
		driver, dsn = database.EngineMySQL, strings.TrimPrefix(url, "mysql://")
	}
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = database.Migrate(db); err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	for _, table := range []string{"users", "mahasiswa", "tasks", "rekap_kehadiran"} {
		if _, err = db.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("PrepareDB() failed: %v", err)
		}
	}
	return db
}
