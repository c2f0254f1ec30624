package service

import (
	"context"
	"fmt"
	"taskBoard/internal/logger"
	"taskBoard/internal/preferences"
	"taskBoard/internal/view"
	"time"

	"github.com/google/uuid"
)

// здесь происходит проверка ошибок бизнес-логики,
// сами хранилища любые корректные вызовы принимают без ошибок

type BoardService struct {
	tasks    TaskRepository
	projects ProjectRepository
	prefs    preferences.Store
	calendar *view.Calendar
	now      func() time.Time
	epoch    string
}

type Option func(*BoardService)

// WithClock подменяет источник текущего времени (нужно тестам)
func WithClock(now func() time.Time) Option {
	return func(s *BoardService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewBoardService(tasks TaskRepository, projects ProjectRepository, prefs preferences.Store, options ...Option) *BoardService {
	s := &BoardService{
		tasks:    tasks,
		projects: projects,
		prefs:    prefs,
		now:      time.Now,
		epoch:    uuid.New().String()[:8],
	}

	for _, opt := range options {
		opt(s)
	}

	if s.prefs == nil {
		s.prefs = preferences.NewMemoryStore(preferences.Preferences{})
	}
	s.calendar = view.NewCalendar(s.now)

	return s
}

func (s *BoardService) HealthCheck(ctx context.Context) error {
	if err := s.tasks.HealthCheck(ctx); err != nil {
		logger.Error("Service: Хранилище задач недоступно", err)
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	if err := s.projects.HealthCheck(ctx); err != nil {
		logger.Error("Service: Хранилище проектов недоступно", err)
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	return nil
}

// Revisions - счётчики изменений хранилищ. Epoch меняется при каждом запуске,
// поэтому ревизии разных процессов не совпадают
type Revisions struct {
	Epoch    string
	Tasks    uint64
	Projects uint64
}

func (s *BoardService) Revisions(ctx context.Context) (Revisions, error) {
	if err := ctx.Err(); err != nil {
		return Revisions{}, err
	}
	return Revisions{
		Epoch:    s.epoch,
		Tasks:    s.tasks.Revision(),
		Projects: s.projects.Revision(),
	}, nil
}
