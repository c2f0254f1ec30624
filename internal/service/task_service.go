package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"taskBoard/internal/logger"
	"taskBoard/internal/models/project"
	"taskBoard/internal/models/task"
	rep "taskBoard/internal/repository"
	"taskBoard/internal/view"

	"go.uber.org/zap"
)

// CreateTask проверяет ввод и добавляет задачу; id из входа игнорируется
func (s *BoardService) CreateTask(ctx context.Context, newTask task.Task) (task.Task, error) {
	newTask.Title = strings.TrimSpace(newTask.Title)
	newTask.Description = strings.TrimSpace(newTask.Description)
	newTask.Completed = false

	newTask.ProjectID = strings.TrimSpace(newTask.ProjectID)
	if newTask.ProjectID == "" {
		newTask.ProjectID = project.InboxID
	}

	if err := validateTask(newTask); err != nil {
		logger.Warn("Service: Задача не прошла проверку", zap.Error(err))
		return task.Task{}, err
	}

	if !s.projects.Exists(newTask.ProjectID) {
		logger.Info("Service: Проект для новой задачи не найден", zap.String("project_id", newTask.ProjectID))
		return task.Task{}, NewNotFound(ResourceProject, newTask.ProjectID)
	}

	id := s.tasks.Add(newTask)
	logger.Info("Service: Задача создана",
		zap.String("task_id", id),
		zap.String("project_id", newTask.ProjectID))

	return s.GetTaskByID(ctx, id)
}

func (s *BoardService) GetTaskByID(ctx context.Context, id string) (task.Task, error) {
	t, err := s.tasks.GetByID(id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.String("target_id", id))
			return task.Task{}, NewNotFound(ResourceTask, id)
		}
		return task.Task{}, fmt.Errorf("получение задачи: %w", err)
	}
	return t, nil
}

func (s *BoardService) ListTasks(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("список задач: %w", err)
	}
	return s.tasks.List(), nil
}

// SearchTasks перебирает все задачи, поэтому сначала проверяет дедлайн запроса
func (s *BoardService) SearchTasks(ctx context.Context, query string) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("поиск задач: %w", err)
	}
	return view.Search(s.tasks.List(), query), nil
}

// UpdateTask применяет опции к копии, проверяет результат и только потом пишет в хранилище
func (s *BoardService) UpdateTask(ctx context.Context, id string, options ...task.TaskOption) (task.Task, error) {
	current, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return task.Task{}, err
	}

	candidate := current.Clone()
	task.Apply(&candidate, options...)
	if err := validateTask(candidate); err != nil {
		logger.Warn("Service: Обновление задачи не прошло проверку",
			zap.String("task_id", id),
			zap.Error(err))
		return task.Task{}, err
	}

	if !s.tasks.Update(id, options...) {
		return task.Task{}, NewNotFound(ResourceTask, id)
	}
	return s.GetTaskByID(ctx, id)
}

// DeleteTask идемпотентен и не сообщает об отсутствии задачи
func (s *BoardService) DeleteTask(ctx context.Context, id string) error {
	if s.tasks.Delete(id) {
		logger.Info("Service: Задача удалена", zap.String("task_id", id))
	}
	return nil
}

func (s *BoardService) ToggleTask(ctx context.Context, id string) (task.Task, error) {
	if !s.tasks.ToggleCompletion(id) {
		return task.Task{}, NewNotFound(ResourceTask, id)
	}
	return s.GetTaskByID(ctx, id)
}

// MoveTask не проверяет, существует ли целевой проект
func (s *BoardService) MoveTask(ctx context.Context, id, projectID string) (task.Task, error) {
	if strings.TrimSpace(projectID) == "" {
		return task.Task{}, NewValidationError("project_id", "пустое значение")
	}
	if !s.tasks.Move(id, projectID) {
		return task.Task{}, NewNotFound(ResourceTask, id)
	}
	return s.GetTaskByID(ctx, id)
}

func validateTask(t task.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "название не может быть пустым")
	}
	if strings.TrimSpace(t.ProjectID) == "" {
		return NewValidationError("project_id", "задача должна принадлежать проекту")
	}
	if t.Priority != nil && !t.Priority.Valid() {
		return NewValidationError("priority", "допустимы значения от 1 до 4")
	}
	return nil
}
