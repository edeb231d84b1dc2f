package task

import (
	"strings"
	"time"
)

// Status filters
const (
	StatusAll       = "all"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusOverdue   = "overdue"

	PriorityAll = "all"
)

var dueDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDueDate reads an ISO-8601 due date. Dates without a zone are read in local time.
func ParseDueDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsOverdue reports whether t is not completed and due strictly before now.
// A missing or unreadable due date is never overdue.
func IsOverdue(t Task, now time.Time) bool {
	if t.Completed {
		return false
	}
	due, ok := ParseDueDate(t.DueDate.String)
	if !t.DueDate.Valid || !ok {
		return false
	}
	return due.Before(now)
}

// Filter selects tasks the way the deadline page does. Empty fields match everything.
type Filter struct {
	Search   string // case-insensitive substring of name or course
	Status   string // all | active | completed | overdue
	Priority string // all | low | medium | high
}

func (f Filter) Match(t Task, now time.Time) bool {
	if term := strings.ToLower(f.Search); term != "" {
		if !strings.Contains(strings.ToLower(t.Name.String), term) &&
			!strings.Contains(strings.ToLower(t.Course.String), term) {
			return false
		}
	}

	switch f.Status {
	case StatusActive:
		if t.Completed || IsOverdue(t, now) {
			return false
		}
	case StatusCompleted:
		if !t.Completed {
			return false
		}
	case StatusOverdue:
		if !IsOverdue(t, now) {
			return false
		}
	}

	if f.Priority != "" && f.Priority != PriorityAll && t.Priority.String != f.Priority {
		return false
	}
	return true
}

// Apply returns the matching tasks, keeping their order.
func (f Filter) Apply(tasks []Task, now time.Time) []Task {
	filtered := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t, now) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
