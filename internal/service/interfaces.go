package service

import (
	"context"
	"taskBoard/internal/models/project"
	"taskBoard/internal/models/task"
)

type TaskRepository interface {
	HealthCheck(context.Context) error
	Add(task.Task) string
	Update(string, ...task.TaskOption) bool
	Delete(string) bool
	ToggleCompletion(string) bool
	Move(string, string) bool
	GetByID(string) (task.Task, error)
	List() []task.Task
	Revision() uint64
}

type ProjectRepository interface {
	HealthCheck(context.Context) error
	Builtins() []project.Project
	List() []project.Project
	GetByID(string) (project.Project, error)
	Exists(string) bool
	Add(project.Project) string
	Update(string, ...project.ProjectOption) bool
	ToggleArchive(string) bool
	Delete(string) bool
	Sections(string) []project.Section
	GetSection(string) (project.Section, error)
	AddSection(project.Section) string
	UpdateSection(string, ...project.SectionOption) bool
	DeleteSection(string) bool
	SetActive(*string)
	Active() *string
	Revision() uint64
}
