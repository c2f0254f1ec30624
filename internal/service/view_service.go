package service

import (
	"context"
	"taskBoard/internal/logger"
	"taskBoard/internal/models/task"
	"taskBoard/internal/view"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"
)

const defaultTitle = "Tasks"

type ActiveView struct {
	ProjectID *string `json:"project_id"`
	Title     string  `json:"title"`
}

// SetActiveProject принимает любой id: нераспознанный просто даёт пустой список
func (s *BoardService) SetActiveProject(ctx context.Context, id *string) (ActiveView, error) {
	s.projects.SetActive(id)

	selected := "<nil>"
	if id != nil {
		selected = *id
	}
	logger.Info("Service: Выбрано представление", zap.String("project_id", selected))

	return s.ActiveProject(ctx)
}

func (s *BoardService) ActiveProject(ctx context.Context) (ActiveView, error) {
	active := s.projects.Active()
	res := ActiveView{ProjectID: active, Title: defaultTitle}
	if active == nil {
		return res, nil
	}

	if p, err := s.projects.GetByID(*active); err == nil {
		res.Title = p.Title()
	}
	return res, nil
}

func (s *BoardService) ActiveTasks(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	active := s.projects.Active()
	if active == nil || !s.projects.Exists(*active) {
		return []task.Task{}, nil
	}
	return view.Filter(s.tasks.List(), active, s.now()), nil
}

// ViewTasks фильтрует по id представления или проекта без проверки существования
func (s *BoardService) ViewTasks(ctx context.Context, id string) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return view.Filter(s.tasks.List(), &id, s.now()), nil
}

func (s *BoardService) Summary(ctx context.Context) (view.Summary, error) {
	if err := ctx.Err(); err != nil {
		return view.Summary{}, err
	}
	return view.Summarize(s.tasks.List(), s.now()), nil
}

func (s *BoardService) CalendarWeek(ctx context.Context) (view.Week, error) {
	return s.week(s.calendar.Pivot()), nil
}

func (s *BoardService) CalendarNext(ctx context.Context) (view.Week, error) {
	return s.week(s.calendar.Next()), nil
}

func (s *BoardService) CalendarPrev(ctx context.Context) (view.Week, error) {
	return s.week(s.calendar.Prev()), nil
}

func (s *BoardService) CalendarToday(ctx context.Context) (view.Week, error) {
	return s.week(s.calendar.Reset()), nil
}

func (s *BoardService) week(pivot civil.Date) view.Week {
	return view.BuildWeek(s.tasks.List(), pivot, civil.DateOf(s.now()))
}
