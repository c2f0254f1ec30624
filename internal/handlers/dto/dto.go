package dto

import (
	"fmt"
	"strings"
	"taskBoard/internal/models/project"
	"taskBoard/internal/models/task"
	"time"

	"cloud.google.com/go/civil"
)

type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     *string  `json:"due_date,omitempty"`
	Priority    *int     `json:"priority,omitempty"`
	ProjectID   string   `json:"project_id"`
	Labels      []string `json:"labels,omitempty"`
}

// отсутствующее поле не меняется; due_date "" и priority 0 снимают значение
type UpdateTaskRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	Priority    *int      `json:"priority,omitempty"`
	ProjectID   *string   `json:"project_id,omitempty"`
	Labels      *[]string `json:"labels,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
}

type MoveTaskRequest struct {
	ProjectID string `json:"project_id"`
}

type TaskResponse struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Completed   bool        `json:"completed"`
	DueDate     *civil.Date `json:"due_date,omitempty"`
	Priority    *int        `json:"priority"`
	ProjectID   string      `json:"project_id"`
	Description string      `json:"description,omitempty"`
	Labels      []string    `json:"labels"`
	IsOverdue   bool        `json:"is_overdue"`
}

type CreateProjectRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type UpdateProjectRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}

type ProjectResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	Icon       string `json:"icon,omitempty"`
	IsArchived bool   `json:"is_archived"`
	Builtin    bool   `json:"builtin"`
}

type CreateSectionRequest struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}

type UpdateSectionRequest struct {
	Title     *string `json:"title,omitempty"`
	Order     *int    `json:"order,omitempty"`
	ProjectID *string `json:"project_id,omitempty"`
}

// project_id: null снимает выбор
type SetActiveRequest struct {
	ProjectID *string `json:"project_id"`
}

type PreferencesRequest struct {
	DarkMode *bool `json:"dark_mode"`
}

func ParseDueDate(raw *string) (*civil.Date, error) {
	if raw == nil {
		return nil, nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil, nil
	}

	d, err := civil.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("дата должна быть в формате YYYY-MM-DD: %w", err)
	}
	return &d, nil
}

// 0 и nil означают «без приоритета»
func toPriority(raw *int) *task.Priority {
	if raw == nil || *raw == 0 {
		return nil
	}
	return task.PriorityOf(task.Priority(*raw))
}

func (r CreateTaskRequest) ToTask() (task.Task, error) {
	dueDate, err := ParseDueDate(r.DueDate)
	if err != nil {
		return task.Task{}, err
	}

	return task.Task{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     dueDate,
		Priority:    toPriority(r.Priority),
		ProjectID:   strings.TrimSpace(r.ProjectID),
		Labels:      r.Labels,
	}, nil
}

func (r UpdateTaskRequest) Options() ([]task.TaskOption, error) {
	options := []task.TaskOption{}

	if r.Title != nil {
		options = append(options, task.WithTitle(strings.TrimSpace(*r.Title)))
	}
	if r.Description != nil {
		options = append(options, task.WithDescription(strings.TrimSpace(*r.Description)))
	}
	if r.DueDate != nil {
		dueDate, err := ParseDueDate(r.DueDate)
		if err != nil {
			return nil, err
		}
		options = append(options, task.WithDueDate(dueDate))
	}
	if r.Priority != nil {
		options = append(options, task.WithPriority(toPriority(r.Priority)))
	}
	if r.ProjectID != nil {
		options = append(options, task.WithProject(strings.TrimSpace(*r.ProjectID)))
	}
	if r.Labels != nil {
		options = append(options, task.WithLabels(*r.Labels))
	}
	if r.Completed != nil {
		options = append(options, task.WithCompleted(*r.Completed))
	}

	return options, nil
}

func (r CreateProjectRequest) ToProject() project.Project {
	return project.Project{
		Name:  r.Name,
		Color: r.Color,
		Icon:  r.Icon,
	}
}

func (r UpdateProjectRequest) Options() []project.ProjectOption {
	options := []project.ProjectOption{}
	if r.Name != nil {
		options = append(options, project.WithName(strings.TrimSpace(*r.Name)))
	}
	if r.Color != nil {
		options = append(options, project.WithColor(*r.Color))
	}
	if r.Icon != nil {
		options = append(options, project.WithIcon(*r.Icon))
	}
	return options
}

func (r CreateSectionRequest) ToSection() project.Section {
	return project.Section{
		Title: r.Title,
		Order: r.Order,
	}
}

func (r UpdateSectionRequest) Options() []project.SectionOption {
	options := []project.SectionOption{}
	if r.Title != nil {
		options = append(options, project.WithSectionTitle(strings.TrimSpace(*r.Title)))
	}
	if r.Order != nil {
		options = append(options, project.WithOrder(*r.Order))
	}
	if r.ProjectID != nil {
		options = append(options, project.WithSectionProject(strings.TrimSpace(*r.ProjectID)))
	}
	return options
}

// IsOverdue считается относительно переданного now
func FromTask(t task.Task, now time.Time) TaskResponse {
	var priority *int
	if t.Priority != nil {
		p := int(*t.Priority)
		priority = &p
	}

	labels := t.Labels
	if labels == nil {
		labels = []string{}
	}

	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Completed:   t.Completed,
		DueDate:     t.DueDate,
		Priority:    priority,
		ProjectID:   t.ProjectID,
		Description: t.Description,
		Labels:      labels,
		IsOverdue:   t.IsOverdue(now),
	}
}

func FromTaskList(tasks []task.Task, now time.Time) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t, now)
	}
	return result
}

func FromProject(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:         p.ID,
		Name:       p.Name,
		Color:      p.Color,
		Icon:       p.Icon,
		IsArchived: p.IsArchived,
		Builtin:    project.IsBuiltin(p.ID),
	}
}

func FromProjectList(projects []project.Project) []ProjectResponse {
	result := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		result[i] = FromProject(p)
	}
	return result
}
