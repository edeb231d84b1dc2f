// Package inmemdb keeps every table in process memory. It backs tests and the "memory" engine.
package inmemdb

import (
	"sync"

	"github.com/pkm-kampus/portal/core/attendance"
	"github.com/pkm-kampus/portal/core/student"
	"github.com/pkm-kampus/portal/core/task"
	"github.com/pkm-kampus/portal/core/user"
)

type (
	DB struct {
		user       *userTable
		student    *studentTable
		task       *taskTable
		attendance *attendanceTable
	}

	userTable struct {
		table   map[int]*user.User
		pkCount int
		mutex   sync.RWMutex
	}

	studentTable struct {
		table   map[int]*student.Student
		pkCount int
		mutex   sync.RWMutex
	}

	taskTable struct {
		table   map[int64]*task.Task
		pkCount int64
		mutex   sync.RWMutex
	}

	attendanceTable struct {
		table   map[int]*attendance.Entry
		pkCount int
		mutex   sync.RWMutex
	}
)

func Open() *DB {
	return &DB{
		user:       &userTable{table: make(map[int]*user.User)},
		student:    &studentTable{table: make(map[int]*student.Student)},
		task:       &taskTable{table: make(map[int64]*task.Task)},
		attendance: &attendanceTable{table: make(map[int]*attendance.Entry)},
	}
}
