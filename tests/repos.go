package testutil

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/pkm-kampus/portal/core/attendance"
	"github.com/pkm-kampus/portal/core/student"
	"github.com/pkm-kampus/portal/core/task"
	"github.com/pkm-kampus/portal/core/user"
)

// Repos is one storage engine's set of repositories, all backed by the same empty database.
type Repos struct {
	User       user.Repository
	Student    student.Repository
	Task       task.Repository
	Attendance attendance.Repository
}

// RunRepositoryTests checks the behaviour every storage engine shares.
// newRepos must return repositories over an empty database on each call.
func RunRepositoryTests(t *testing.T, newRepos func(t *testing.T) Repos) {
	t.Run("users", func(t *testing.T) { testUserRepository(t, newRepos(t).User) })
	t.Run("students", func(t *testing.T) { testStudentRepository(t, newRepos(t).Student) })
	t.Run("tasks", func(t *testing.T) { testTaskRepository(t, newRepos(t).Task) })
	t.Run("attendance", func(t *testing.T) { testAttendanceRepository(t, newRepos(t).Attendance) })
}

func testUserRepository(t *testing.T, repo user.Repository) {
	ctx := context.Background()
	admin := CreateUser(t, repo, "admin", "admin123", user.RoleAdmin)
	budi1 := CreateUser(t, repo, "budi", "satu", user.RoleLecturer)
	budi2 := CreateUser(t, repo, "budi", "dua", user.RoleStudent)
	assert.NotZero(t, admin.ID)

	users, err := repo.QueryAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []user.User{admin, budi1, budi2}, users)

	got, err := repo.QueryUsersByUsername(ctx, "budi")
	require.NoError(t, err)
	assert.Equal(t, []user.User{budi1, budi2}, got)

	got, err = repo.QueryUsersByUsername(ctx, "andi")
	require.NoError(t, err)
	assert.Empty(t, got)

	usr, err := repo.GetUserByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin, usr)

	_, err = repo.GetUserByID(ctx, admin.ID+100)
	assert.Equal(t, user.ErrNotFound, errors.Cause(err))

	admin.Password = "baru"
	_, err = repo.UpdateUser(ctx, admin)
	require.NoError(t, err)
	usr, err = repo.GetUserByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "baru", usr.Password)
}

func testStudentRepository(t *testing.T, repo student.Repository) {
	ctx := context.Background()
	andi := CreateStudent(t, repo, "Andi", "2201001", "Informatika")
	budi := CreateStudent(t, repo, "Budi", "2201002", "Sistem Informasi")

	students, err := repo.QueryAllStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, []student.Student{andi, budi}, students)

	andi.Jurusan = "Teknik Informatika"
	require.NoError(t, repo.UpdateStudent(ctx, andi))
	got, err := repo.GetStudentByID(ctx, andi.ID)
	require.NoError(t, err)
	assert.Equal(t, andi, got)

	// unknown ids are silently ignored
	require.NoError(t, repo.UpdateStudent(ctx, student.Student{ID: budi.ID + 100, Nama: "X"}))
	require.NoError(t, repo.DeleteStudentByID(ctx, budi.ID+100))

	require.NoError(t, repo.DeleteStudentByID(ctx, andi.ID))
	_, err = repo.GetStudentByID(ctx, andi.ID)
	assert.Equal(t, student.ErrNotFound, errors.Cause(err))

	students, err = repo.QueryAllStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, []student.Student{budi}, students)
}

func testTaskRepository(t *testing.T, repo task.Repository) {
	ctx := context.Background()
	c := CreateTask(t, repo, "C", "Jaringan", "2024-03-01T10:00", "low", false)
	a := CreateTask(t, repo, "A", "Basis Data", "2024-01-01T10:00", "high", true)
	b := CreateTask(t, repo, "B", "Basis Data", "2024-02-01T10:00", "", false)
	assert.NotEqual(t, a.ID, c.ID)

	tasks, err := repo.QueryAllTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, []int64{tasks[0].ID, tasks[1].ID, tasks[2].ID})
	assert.True(t, tasks[0].Completed)
	assert.False(t, tasks[1].Priority.Valid)
	assert.False(t, tasks[2].Description.Valid)

	// a new task is never completed
	id, err := repo.CreateTask(ctx, task.Task{Name: null.StringFrom("D"), DueDate: null.StringFrom("2024-04-01"), Completed: true})
	require.NoError(t, err)

	// updates replace every column
	require.NoError(t, repo.UpdateTask(ctx, task.Task{ID: c.ID, Name: null.StringFrom("C2")}))
	require.NoError(t, repo.UpdateTask(ctx, task.Task{ID: id + 100, Name: null.StringFrom("X")}))

	require.NoError(t, repo.DeleteTaskByID(ctx, b.ID))
	require.NoError(t, repo.DeleteTaskByID(ctx, b.ID))

	tasks, err = repo.QueryAllTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	byID := make(map[int64]task.Task, len(tasks))
	for _, tsk := range tasks {
		byID[tsk.ID] = tsk
	}
	assert.False(t, byID[id].Completed)
	assert.Equal(t, task.Task{ID: c.ID, Name: null.StringFrom("C2")}, byID[c.ID])
	assert.NotContains(t, byID, b.ID)
}

func testAttendanceRepository(t *testing.T, repo attendance.Repository) {
	ctx := context.Background()
	first := CreateEntry(t, repo, "2201001", "Andi", "Basis Data", "2024-03-12")
	newest := CreateEntry(t, repo, "2201002", "Budi", "Basis Data", "2024-03-14")
	oldest := CreateEntry(t, repo, "2201003", "Citra", "Jaringan", "2024-03-01")
	sameDay := CreateEntry(t, repo, "2201004", "Dewi", "Jaringan", "2024-03-12")

	entries, err := repo.QueryAllEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []attendance.Entry{newest, sameDay, first, oldest}, entries)
}
