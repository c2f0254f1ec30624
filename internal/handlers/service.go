package handlers

import (
	"context"
	"taskBoard/internal/models/project"
	"taskBoard/internal/models/task"
	"taskBoard/internal/preferences"
	"taskBoard/internal/service"
	"taskBoard/internal/view"
)

type Service interface {
	HealthCheck(context.Context) error
	Revisions(context.Context) (service.Revisions, error)

	CreateTask(context.Context, task.Task) (task.Task, error)
	GetTaskByID(context.Context, string) (task.Task, error)
	ListTasks(context.Context) ([]task.Task, error)
	SearchTasks(context.Context, string) ([]task.Task, error)
	UpdateTask(context.Context, string, ...task.TaskOption) (task.Task, error)
	DeleteTask(context.Context, string) error
	ToggleTask(context.Context, string) (task.Task, error)
	MoveTask(context.Context, string, string) (task.Task, error)

	ListProjects(context.Context) ([]project.Project, error)
	ListArchivedProjects(context.Context) ([]project.Project, error)
	ListBuiltinProjects(context.Context) ([]project.Project, error)
	GetProject(context.Context, string) (project.Project, error)
	CreateProject(context.Context, project.Project) (project.Project, error)
	UpdateProject(context.Context, string, ...project.ProjectOption) (project.Project, error)
	DeleteProject(context.Context, string) error
	ToggleArchiveProject(context.Context, string) (project.Project, error)

	ListSections(context.Context, string) ([]project.Section, error)
	CreateSection(context.Context, string, project.Section) (project.Section, error)
	UpdateSection(context.Context, string, ...project.SectionOption) (project.Section, error)
	DeleteSection(context.Context, string) error

	SetActiveProject(context.Context, *string) (service.ActiveView, error)
	ActiveProject(context.Context) (service.ActiveView, error)
	ActiveTasks(context.Context) ([]task.Task, error)
	ViewTasks(context.Context, string) ([]task.Task, error)
	Summary(context.Context) (view.Summary, error)

	CalendarWeek(context.Context) (view.Week, error)
	CalendarNext(context.Context) (view.Week, error)
	CalendarPrev(context.Context) (view.Week, error)
	CalendarToday(context.Context) (view.Week, error)

	GetPreferences(context.Context) (preferences.Preferences, error)
	SetPreferences(context.Context, preferences.Preferences) (preferences.Preferences, error)
	ToggleDarkMode(context.Context) (preferences.Preferences, error)
}

var _ Service = (*service.BoardService)(nil)
