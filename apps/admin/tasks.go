package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pkm-kampus/portal/core/task"
)

var nowFunc = time.Now // mockable

// listTasks prints the tasks matching f, soonest due first.
func (cli *commandLine) listTasks(f task.Filter) error {
	tasks, err := cli.taskSvc.QueryAll(context.Background())
	if err != nil {
		return err
	}
	now := nowFunc()
	tasks = f.Apply(tasks, now)

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTUGAS\tMATA KULIAH\tDEADLINE\tPRIORITAS\tSTATUS")
	for _, t := range tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Name.String, t.Course.String, t.DueDate.String, task.PriorityLabel(t.Priority.String), statusLabel(t, now))
	}
	if err = w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%d tugas\n", len(tasks))
	return nil
}

func statusLabel(t task.Task, now time.Time) string {
	switch {
	case t.Completed:
		return "Selesai"
	case task.IsOverdue(t, now):
		return "Terlambat"
	default:
		return "Aktif"
	}
}
