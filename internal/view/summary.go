package view

import (
	"taskBoard/internal/models/project"
	"taskBoard/internal/models/task"
	"time"
)

type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Today     int `json:"today"`
	Upcoming  int `json:"upcoming"`
	Overdue   int `json:"overdue"`
}

func Summarize(tasks []task.Task, now time.Time) Summary {
	today := Predicate(project.TodayID, now)
	upcoming := Predicate(project.UpcomingID, now)

	var s Summary
	for _, t := range tasks {
		s.Total++
		if t.Completed {
			s.Completed++
		}
		if today(t) {
			s.Today++
		}
		if upcoming(t) {
			s.Upcoming++
		}
		if t.IsOverdue(now) {
			s.Overdue++
		}
	}
	return s
}
