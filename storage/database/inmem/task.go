package inmemdb

import (
	"context"
	"sort"

	"github.com/pkm-kampus/portal/core/task"
)

type taskRepository struct {
	db *taskTable
}

var _ task.Repository = (*taskRepository)(nil)

func NewTaskRepository(db *DB) task.Repository {
	return &taskRepository{db: db.task}
}

func (repo *taskRepository) CreateTask(_ context.Context, t task.Task) (int64, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pkCount++
	t.ID = repo.db.pkCount
	t.Completed = false
	repo.db.table[t.ID] = &t
	return t.ID, nil
}

// QueryAllTasks orders by due date ascending with NULL due dates first, as MySQL does.
func (repo *taskRepository) QueryAllTasks(context.Context) ([]task.Task, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	tasks := make([]task.Task, 0, len(repo.db.table))
	for _, t := range repo.db.table {
		tasks = append(tasks, *t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		di, dj := tasks[i].DueDate, tasks[j].DueDate
		if di.Valid != dj.Valid {
			return !di.Valid
		}
		if di.String != dj.String {
			return di.String < dj.String
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

func (repo *taskRepository) UpdateTask(_ context.Context, t task.Task) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[t.ID]; ok {
		repo.db.table[t.ID] = &t
	}
	return nil
}

func (repo *taskRepository) DeleteTaskByID(_ context.Context, id int64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	delete(repo.db.table, id)
	return nil
}
