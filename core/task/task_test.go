package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/pkm-kampus/portal/core"
)

func TestNewTaskValidate(t *testing.T) {
	validate, _ := core.NewValidator()

	tests := []struct {
		name    string
		nt      NewTask
		wantErr bool
	}{
		{"valid", NewTask{Name: "Kuis", Course: "Basis Data", DueDate: "2024-01-10T08:00"}, false},
		{"missing name", NewTask{Course: "Basis Data", DueDate: "2024-01-10T08:00"}, true},
		{"missing course", NewTask{Name: "Kuis", DueDate: "2024-01-10T08:00"}, true},
		{"missing dueDate", NewTask{Name: "Kuis", Course: "Basis Data"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.nt.Validate(validate)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.True(t, core.IsValidationError(err), "got %v", err)
			assert.Equal(t, "Nama, mata kuliah, dan deadline wajib diisi", err.Error())
		})
	}
}

func TestFlagUnmarshalJSON(t *testing.T) {
	tests := []struct {
		body string
		want Flag
	}{
		{`{}`, false},
		{`{"completed":null}`, false},
		{`{"completed":false}`, false},
		{`{"completed":true}`, true},
		{`{"completed":0}`, false},
		{`{"completed":1}`, true},
		{`{"completed":-2.5}`, true},
		{`{"completed":""}`, false},
		{`{"completed":"false"}`, true},
		{`{"completed":[]}`, true},
		{`{"completed":{}}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var ut UpdateTask
			require.NoError(t, json.Unmarshal([]byte(tt.body), &ut))
			assert.Equal(t, tt.want, ut.Completed)
		})
	}
}

func TestUpdateTaskNulls(t *testing.T) {
	var ut UpdateTask
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Kuis","priority":null}`), &ut))
	assert.Equal(t, null.StringFrom("Kuis"), ut.Name)
	assert.False(t, ut.Course.Valid)
	assert.False(t, ut.Priority.Valid)
}

func TestTaskJSON(t *testing.T) {
	tsk := Task{ID: 3, Name: null.StringFrom("Kuis"), DueDate: null.StringFrom("2024-01-10T08:00"), Completed: true}
	data, err := json.Marshal(tsk)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":3,"name":"Kuis","course":null,"dueDate":"2024-01-10T08:00","priority":null,"description":null,"completed":true}`,
		string(data))
}

func TestPriorityLabel(t *testing.T) {
	tests := map[string]string{
		"high":   "Tinggi",
		"HIGH":   "Tinggi",
		"medium": "Sedang",
		"low":    "Rendah",
		"":       "Rendah",
		"urgent": "Rendah",
	}
	for p, want := range tests {
		if got := PriorityLabel(p); got != want {
			t.Errorf("PriorityLabel(%q) = %q, want %q", p, got, want)
		}
	}
}

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
		want   time.Time
	}{
		{"2024-01-10T08:00", true, time.Date(2024, 1, 10, 8, 0, 0, 0, time.Local)},
		{"2024-01-10T08:00:30", true, time.Date(2024, 1, 10, 8, 0, 30, 0, time.Local)},
		{"2024-01-10 08:00:00", true, time.Date(2024, 1, 10, 8, 0, 0, 0, time.Local)},
		{"2024-01-10", true, time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)},
		{"2024-01-10T08:00:00Z", true, time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)},
		{" 2024-01-10T08:00 ", true, time.Date(2024, 1, 10, 8, 0, 0, 0, time.Local)},
		{"", false, time.Time{}},
		{"besok", false, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDueDate(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestFilter(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)
	tasks := []Task{
		{ID: 1, Name: null.StringFrom("Laporan Praktikum"), Course: null.StringFrom("Basis Data"), DueDate: null.StringFrom("2024-01-10T08:00"), Priority: null.StringFrom("high")},
		{ID: 2, Name: null.StringFrom("Kuis"), Course: null.StringFrom("Jaringan"), DueDate: null.StringFrom("2024-01-20T08:00"), Priority: null.StringFrom("low")},
		{ID: 3, Name: null.StringFrom("UTS"), Course: null.StringFrom("Basis Data"), DueDate: null.StringFrom("2024-01-12T08:00"), Priority: null.StringFrom("high"), Completed: true},
		{ID: 4, Name: null.StringFrom("Esai"), Course: null.StringFrom("Bahasa"), Priority: null.StringFrom("medium")},
		{ID: 5, Name: null.StringFrom("Tepat"), Course: null.StringFrom("Jaringan"), DueDate: null.StringFrom("2024-01-15T12:00")},
	}

	tests := []struct {
		name   string
		filter Filter
		want   []int64
	}{
		{"zero filter", Filter{}, []int64{1, 2, 3, 4, 5}},
		{"all", Filter{Status: StatusAll, Priority: PriorityAll}, []int64{1, 2, 3, 4, 5}},
		{"search name", Filter{Search: "KUIS"}, []int64{2}},
		{"search course", Filter{Search: "basis"}, []int64{1, 3}},
		{"active", Filter{Status: StatusActive}, []int64{2, 4, 5}},
		{"completed", Filter{Status: StatusCompleted}, []int64{3}},
		{"overdue", Filter{Status: StatusOverdue}, []int64{1}},
		{"priority", Filter{Priority: "high"}, []int64{1, 3}},
		{"combined", Filter{Search: "basis", Status: StatusActive, Priority: "high"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []int64
			for _, tsk := range tt.filter.Apply(tasks, now) {
				ids = append(ids, tsk.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
