package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"taskBoard/internal/logger"
	"taskBoard/internal/models/project"
	rep "taskBoard/internal/repository"

	"go.uber.org/zap"
)

// ListProjects - пользовательские проекты без архивных, как в боковой панели
func (s *BoardService) ListProjects(ctx context.Context) ([]project.Project, error) {
	return s.filterProjects(false), nil
}

func (s *BoardService) ListArchivedProjects(ctx context.Context) ([]project.Project, error) {
	return s.filterProjects(true), nil
}

func (s *BoardService) ListBuiltinProjects(ctx context.Context) ([]project.Project, error) {
	return s.projects.Builtins(), nil
}

func (s *BoardService) GetProject(ctx context.Context, id string) (project.Project, error) {
	p, err := s.projects.GetByID(id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: Проект не найден", zap.String("target_id", id))
			return project.Project{}, NewNotFound(ResourceProject, id)
		}
		return project.Project{}, fmt.Errorf("получение проекта: %w", err)
	}
	return p, nil
}

// цвет и иконку по умолчанию подставляет вызывающая сторона
func (s *BoardService) CreateProject(ctx context.Context, newProject project.Project) (project.Project, error) {
	newProject.Name = strings.TrimSpace(newProject.Name)
	if newProject.Name == "" {
		return project.Project{}, NewValidationError("name", "название не может быть пустым")
	}

	id := s.projects.Add(newProject)
	logger.Info("Service: Проект создан",
		zap.String("project_id", id),
		zap.String("name", newProject.Name))

	return s.GetProject(ctx, id)
}

func (s *BoardService) UpdateProject(ctx context.Context, id string, options ...project.ProjectOption) (project.Project, error) {
	if project.IsBuiltin(id) {
		return project.Project{}, NewReservedProject(id)
	}

	current, err := s.GetProject(ctx, id)
	if err != nil {
		return project.Project{}, err
	}

	candidate := current
	project.ApplyProject(&candidate, options...)
	if strings.TrimSpace(candidate.Name) == "" {
		return project.Project{}, NewValidationError("name", "название не может быть пустым")
	}

	if !s.projects.Update(id, options...) {
		return project.Project{}, NewNotFound(ResourceProject, id)
	}
	return s.GetProject(ctx, id)
}

// DeleteProject удаляет проект и его секции. Задачи проекта остаются
// с прежним project_id: они видны во "Входящих" и их можно перенести.
func (s *BoardService) DeleteProject(ctx context.Context, id string) error {
	if project.IsBuiltin(id) {
		return NewReservedProject(id)
	}

	if s.projects.Delete(id) {
		logger.Info("Service: Проект удалён", zap.String("project_id", id))
	}
	return nil
}

func (s *BoardService) ToggleArchiveProject(ctx context.Context, id string) (project.Project, error) {
	if project.IsBuiltin(id) {
		return project.Project{}, NewReservedProject(id)
	}
	if !s.projects.ToggleArchive(id) {
		return project.Project{}, NewNotFound(ResourceProject, id)
	}
	return s.GetProject(ctx, id)
}

func (s *BoardService) ListSections(ctx context.Context, projectID string) ([]project.Section, error) {
	if !s.projects.Exists(projectID) {
		return nil, NewNotFound(ResourceProject, projectID)
	}
	return s.projects.Sections(projectID), nil
}

func (s *BoardService) CreateSection(ctx context.Context, projectID string, newSection project.Section) (project.Section, error) {
	newSection.Title = strings.TrimSpace(newSection.Title)
	if newSection.Title == "" {
		return project.Section{}, NewValidationError("title", "название не может быть пустым")
	}
	if !s.projects.Exists(projectID) {
		return project.Section{}, NewNotFound(ResourceProject, projectID)
	}

	newSection.ProjectID = projectID
	id := s.projects.AddSection(newSection)
	logger.Info("Service: Секция создана",
		zap.String("section_id", id),
		zap.String("project_id", projectID))

	return s.getSection(id)
}

func (s *BoardService) UpdateSection(ctx context.Context, id string, options ...project.SectionOption) (project.Section, error) {
	current, err := s.getSection(id)
	if err != nil {
		return project.Section{}, err
	}

	candidate := current
	project.ApplySection(&candidate, options...)
	if strings.TrimSpace(candidate.Title) == "" {
		return project.Section{}, NewValidationError("title", "название не может быть пустым")
	}
	if candidate.ProjectID != current.ProjectID && !s.projects.Exists(candidate.ProjectID) {
		return project.Section{}, NewNotFound(ResourceProject, candidate.ProjectID)
	}

	if !s.projects.UpdateSection(id, options...) {
		return project.Section{}, NewNotFound(ResourceSection, id)
	}
	return s.getSection(id)
}

func (s *BoardService) DeleteSection(ctx context.Context, id string) error {
	if s.projects.DeleteSection(id) {
		logger.Info("Service: Секция удалена", zap.String("section_id", id))
	}
	return nil
}

func (s *BoardService) getSection(id string) (project.Section, error) {
	section, err := s.projects.GetSection(id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return project.Section{}, NewNotFound(ResourceSection, id)
		}
		return project.Section{}, fmt.Errorf("получение секции: %w", err)
	}
	return section, nil
}

func (s *BoardService) filterProjects(archived bool) []project.Project {
	res := []project.Project{}
	for _, p := range s.projects.List() {
		if p.IsArchived == archived {
			res = append(res, p)
		}
	}
	return res
}
