package service

import (
	"context"
	"fmt"
	"taskBoard/internal/logger"
	"taskBoard/internal/models/project"
	"taskBoard/internal/models/task"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"
)

// SeedDemo заполняет пустую доску примерами: три проекта, секции и задачи.
// Даты задач отсчитываются от текущего дня.
func (s *BoardService) SeedDemo(ctx context.Context) error {
	work, err := s.CreateProject(ctx, project.Project{Name: "Work", Icon: "💼", Color: "#ff9900"})
	if err != nil {
		return fmt.Errorf("демо-проект Work: %w", err)
	}
	personal, err := s.CreateProject(ctx, project.Project{Name: "Personal", Icon: "🏠", Color: "#36b37e"})
	if err != nil {
		return fmt.Errorf("демо-проект Personal: %w", err)
	}
	shopping, err := s.CreateProject(ctx, project.Project{Name: "Shopping", Icon: "🛒", Color: "#6554c0"})
	if err != nil {
		return fmt.Errorf("демо-проект Shopping: %w", err)
	}

	sections := []struct {
		projectID string
		title     string
		order     int
	}{
		{work.ID, "To Do", 1},
		{work.ID, "In Progress", 2},
		{work.ID, "Done", 3},
		{personal.ID, "Personal Tasks", 1},
	}
	for _, sec := range sections {
		if _, err := s.CreateSection(ctx, sec.projectID, project.Section{Title: sec.title, Order: sec.order}); err != nil {
			return fmt.Errorf("демо-секция %s: %w", sec.title, err)
		}
	}

	today := civil.DateOf(s.now())
	dueIn := func(days int) *civil.Date {
		d := today.AddDays(days)
		return &d
	}

	tasks := []task.Task{
		{
			Title:       "Complete project proposal",
			DueDate:     dueIn(2),
			Priority:    task.PriorityOf(task.PriorityUrgent),
			ProjectID:   work.ID,
			Description: "Finish the project proposal for the new client",
			Labels:      []string{"work", "important"},
		},
		{
			Title:     "Buy groceries",
			DueDate:   dueIn(0),
			Priority:  task.PriorityOf(task.PriorityHigh),
			ProjectID: shopping.ID,
			Labels:    []string{"shopping"},
		},
		{
			Title:     "Schedule doctor appointment",
			DueDate:   dueIn(7),
			Priority:  task.PriorityOf(task.PriorityMedium),
			ProjectID: personal.ID,
			Labels:    []string{"health"},
		},
		{
			Title:     "Review documentation",
			ProjectID: work.ID,
			Labels:    []string{"work"},
		},
	}

	var reviewID string
	for _, t := range tasks {
		created, err := s.CreateTask(ctx, t)
		if err != nil {
			return fmt.Errorf("демо-задача %s: %w", t.Title, err)
		}
		reviewID = created.ID
	}

	// последняя демо-задача уже выполнена
	if _, err := s.ToggleTask(ctx, reviewID); err != nil {
		return fmt.Errorf("демо-задача выполнена: %w", err)
	}

	logger.Info("Service: Демо-данные загружены",
		zap.Int("projects", 3),
		zap.Int("sections", len(sections)),
		zap.Int("tasks", len(tasks)))
	return nil
}
