// Package view вычисляет, что показывает доска, по снимку задач.
// Состояние есть только у Calendar (опорная дата), фильтры считаются заново на каждый вызов.
package view

import (
	"taskBoard/internal/models/project"
	"taskBoard/internal/models/task"
	"time"

	"cloud.google.com/go/civil"
)

// Filter возвращает задачи, видимые в выбранном представлении или проекте, в порядке коллекции.
// Для nil возвращается пустой, но не nil срез
func Filter(tasks []task.Task, selected *string, now time.Time) []task.Task {
	res := []task.Task{}
	if selected == nil {
		return res
	}

	match := Predicate(*selected, now)
	for _, t := range tasks {
		if match(t) {
			res = append(res, t)
		}
	}
	return res
}

// Predicate строит проверку видимости для одного id представления
func Predicate(selected string, now time.Time) func(task.Task) bool {
	switch selected {
	case project.InboxID:
		return func(task.Task) bool { return true }
	case project.TodayID:
		today := civil.DateOf(now)
		return func(t task.Task) bool { return t.DueOn(today) }
	case project.UpcomingID:
		return func(t task.Task) bool { return dueAfter(t, now) }
	default:
		return func(t task.Task) bool { return t.ProjectID == selected }
	}
}

// срок - полночь в часовом поясе now; совпадающий момент не считается предстоящим
func dueAfter(t task.Task, now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.In(now.Location()).After(now)
}
