package task

import (
	"time"

	"cloud.google.com/go/civil"
)

type Task struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Completed   bool        `json:"completed"`
	DueDate     *civil.Date `json:"due_date,omitempty"`
	Priority    *Priority   `json:"priority"`
	ProjectID   string      `json:"project_id"`
	Description string      `json:"description,omitempty"`
	Labels      []string    `json:"labels,omitempty"`
}

// Priority: 1 самый высокий, 4 самый низкий
type Priority int

const PriorityUrgent Priority = 1
const PriorityHigh Priority = 2
const PriorityMedium Priority = 3
const PriorityLow Priority = 4

func (p Priority) Valid() bool {
	return p >= PriorityUrgent && p <= PriorityLow
}

func PriorityOf(p Priority) *Priority {
	return &p
}

// DueOn сообщает, совпадает ли дата выполнения с календарным днём
func (t Task) DueOn(day civil.Date) bool {
	return t.DueDate != nil && *t.DueDate == day
}

// IsOverdue: задача не выполнена и срок раньше сегодняшнего дня
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return t.DueDate.Before(civil.DateOf(now))
}

// Clone копирует задачу вместе с указателями и метками
func (t Task) Clone() Task {
	c := t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.Priority != nil {
		p := *t.Priority
		c.Priority = &p
	}
	if t.Labels != nil {
		c.Labels = append([]string(nil), t.Labels...)
	}
	return c
}
