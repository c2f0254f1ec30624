package inmemory

import (
	"context"
	"slices"
	"sync"
	"taskBoard/internal/logger"
	"taskBoard/internal/models/task"
	repo "taskBoard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskStorage хранит задачи в порядке добавления.
// Каждая мутация собирает новый срез и подменяет его под блокировкой,
// поэтому выданные наружу снимки никогда не меняются.
type TaskStorage struct {
	tasks    []task.Task
	mtx      *sync.RWMutex
	revision uint64
}

func NewTaskStorage(initial ...task.Task) *TaskStorage {
	tasks := make([]task.Task, 0, len(initial))
	for _, t := range initial {
		tasks = append(tasks, t.Clone())
	}

	return &TaskStorage{
		tasks: tasks,
		mtx:   &sync.RWMutex{},
	}
}

func (s *TaskStorage) HealthCheck(ctx context.Context) error {
	s.mtx.RLock()
	count := len(s.tasks)
	s.mtx.RUnlock()

	logger.Info("Repository: Хранилище задач доступно", zap.Int("tasks", count))
	return nil
}

// Add присваивает новый id и добавляет задачу в конец коллекции
func (s *TaskStorage) Add(taskToAdd task.Task) string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	created := taskToAdd.Clone()
	created.ID = uuid.New().String()
	created.Labels = task.NormalizeLabels(created.Labels)

	next := make([]task.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	s.tasks = append(next, created)
	s.revision++

	return created.ID
}

func (s *TaskStorage) Update(id string, options ...task.TaskOption) bool {
	return s.replace(id, func(t *task.Task) {
		task.Apply(t, options...)
		t.ID = id
	})
}

// ToggleCompletion инвертирует признак выполнения
func (s *TaskStorage) ToggleCompletion(id string) bool {
	return s.replace(id, func(t *task.Task) {
		t.Completed = !t.Completed
	})
}

// Move не проверяет существование проекта
func (s *TaskStorage) Move(id, projectID string) bool {
	return s.replace(id, func(t *task.Task) {
		t.ProjectID = projectID
	})
}

// Delete идемпотентен: повторный вызов ничего не меняет
func (s *TaskStorage) Delete(id string) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ind := s.indexOf(id)
	if ind < 0 {
		return false
	}

	next := make([]task.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:ind]...)
	next = append(next, s.tasks[ind+1:]...)
	s.tasks = next
	s.revision++

	return true
}

func (s *TaskStorage) GetByID(id string) (task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	ind := s.indexOf(id)
	if ind < 0 {
		return task.Task{}, repo.ErrNotFound
	}
	return s.tasks[ind].Clone(), nil
}

// List отдаёт снимок всех задач в порядке добавления
func (s *TaskStorage) List() []task.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return slices.Clone(s.tasks)
}

// Revision растёт на каждой успешной мутации
func (s *TaskStorage) Revision() uint64 {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.revision
}

func (s *TaskStorage) replace(id string, mutate func(*task.Task)) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ind := s.indexOf(id)
	if ind < 0 {
		return false
	}

	next := slices.Clone(s.tasks)
	updated := next[ind].Clone()
	mutate(&updated)
	next[ind] = updated

	s.tasks = next
	s.revision++
	return true
}

func (s *TaskStorage) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool {
		return t.ID == id
	})
}
