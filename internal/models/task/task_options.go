package task

import (
	"strings"

	"cloud.google.com/go/civil"
)

// частичное обновление задачи: каждая опция меняет одно поле,
// nil-опции пропускаются при применении
type TaskOption func(*Task)

func Apply(t *Task, options ...TaskOption) {
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
}

func WithTitle(title string) TaskOption {
	return func(task *Task) {
		task.Title = title
	}
}

func WithDescription(description string) TaskOption {
	return func(task *Task) {
		task.Description = description
	}
}

func WithCompleted(completed bool) TaskOption {
	return func(task *Task) {
		task.Completed = completed
	}
}

// nil снимает дату
func WithDueDate(dueDate *civil.Date) TaskOption {
	return func(task *Task) {
		if dueDate == nil {
			task.DueDate = nil
			return
		}
		d := *dueDate
		task.DueDate = &d
	}
}

// nil снимает приоритет
func WithPriority(priority *Priority) TaskOption {
	return func(task *Task) {
		if priority == nil {
			task.Priority = nil
			return
		}
		p := *priority
		task.Priority = &p
	}
}

func WithProject(projectID string) TaskOption {
	return func(task *Task) {
		task.ProjectID = projectID
	}
}

func WithLabels(labels []string) TaskOption {
	return func(task *Task) {
		task.Labels = NormalizeLabels(labels)
	}
}

// NormalizeLabels убирает пустые и повторяющиеся метки, порядок первого вхождения сохраняется
func NormalizeLabels(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(labels))
	res := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		res = append(res, label)
	}

	if len(res) == 0 {
		return nil
	}
	return res
}
