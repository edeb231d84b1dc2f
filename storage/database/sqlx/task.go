package sqlxrepos

import (
	"context"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/pkm-kampus/portal/core"
	"github.com/pkm-kampus/portal/core/task"
)

const taskColumns = "id, name, course, due_date, priority, description, completed"

// taskRow is the storage shape of a task: due_date and completed as 0/1.
type taskRow struct {
	ID          int64       `db:"id"`
	Name        null.String `db:"name"`
	Course      null.String `db:"course"`
	DueDate     null.String `db:"due_date"`
	Priority    null.String `db:"priority"`
	Description null.String `db:"description"`
	Completed   int         `db:"completed"`
}

func (r taskRow) toTask() task.Task {
	return task.Task{
		ID:          r.ID,
		Name:        r.Name,
		Course:      r.Course,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		Description: r.Description,
		Completed:   r.Completed == 1,
	}
}

func completedInt(completed bool) int {
	if completed {
		return 1
	}
	return 0
}

type taskRepository struct {
	db core.DBExecutor
}

var _ task.Repository = (*taskRepository)(nil)

func NewTaskRepository(db core.DBExecutor) task.Repository {
	return &taskRepository{db: db}
}

func (repo *taskRepository) CreateTask(ctx context.Context, t task.Task) (int64, error) {
	id, err := insert(ctx, repo.db,
		"INSERT INTO tasks (name, course, due_date, priority, description, completed) VALUES (?, ?, ?, ?, ?, 0)",
		t.Name, t.Course, t.DueDate, t.Priority, t.Description,
	)
	return id, errors.Wrap(err, "inserting task")
}

func (repo *taskRepository) QueryAllTasks(ctx context.Context) ([]task.Task, error) {
	var rows []taskRow
	if err := repo.db.SelectContext(ctx, &rows, "SELECT "+taskColumns+" FROM tasks ORDER BY due_date ASC"); err != nil {
		return nil, errors.Wrap(err, "selecting tasks")
	}
	tasks := make([]task.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, r.toTask())
	}
	return tasks, nil
}

func (repo *taskRepository) UpdateTask(ctx context.Context, t task.Task) error {
	err := exec(ctx, repo.db,
		"UPDATE tasks SET name = ?, course = ?, due_date = ?, priority = ?, description = ?, completed = ? WHERE id = ?",
		t.Name, t.Course, t.DueDate, t.Priority, t.Description, completedInt(t.Completed), t.ID,
	)
	return errors.Wrap(err, "updating task")
}

func (repo *taskRepository) DeleteTaskByID(ctx context.Context, id int64) error {
	err := exec(ctx, repo.db, "DELETE FROM tasks WHERE id = ?", id)
	return errors.Wrap(err, "deleting task")
}
