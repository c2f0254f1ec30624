package inmemory

import (
	"context"
	"slices"
	"sync"
	"taskBoard/internal/logger"
	"taskBoard/internal/models/project"
	repo "taskBoard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProjectStorage владеет встроенными и пользовательскими проектами,
// их секциями и текущим выбранным представлением.
// Встроенные проекты заполняются один раз и больше не меняются.
type ProjectStorage struct {
	builtins []project.Project
	projects []project.Project
	sections []project.Section
	active   *string
	mtx      *sync.RWMutex
	revision uint64
}

func NewProjectStorage() *ProjectStorage {
	inbox := project.InboxID
	return &ProjectStorage{
		builtins: project.Builtins(),
		projects: []project.Project{},
		sections: []project.Section{},
		active:   &inbox,
		mtx:      &sync.RWMutex{},
	}
}

func (s *ProjectStorage) HealthCheck(ctx context.Context) error {
	s.mtx.RLock()
	projects, sections := len(s.projects), len(s.sections)
	s.mtx.RUnlock()

	logger.Info("Repository: Хранилище проектов доступно",
		zap.Int("projects", projects),
		zap.Int("sections", sections))
	return nil
}

func (s *ProjectStorage) Builtins() []project.Project {
	return slices.Clone(s.builtins)
}

// List отдаёт пользовательские проекты, включая архивные
func (s *ProjectStorage) List() []project.Project {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return slices.Clone(s.projects)
}

// GetByID ищет сначала среди встроенных, затем среди пользовательских
func (s *ProjectStorage) GetByID(id string) (project.Project, error) {
	if ind := slices.IndexFunc(s.builtins, byProjectID(id)); ind >= 0 {
		return s.builtins[ind], nil
	}

	s.mtx.RLock()
	defer s.mtx.RUnlock()

	ind := slices.IndexFunc(s.projects, byProjectID(id))
	if ind < 0 {
		return project.Project{}, repo.ErrNotFound
	}
	return s.projects[ind], nil
}

func (s *ProjectStorage) Exists(id string) bool {
	_, err := s.GetByID(id)
	return err == nil
}

// Add никогда не выдаёт зарезервированный id
func (s *ProjectStorage) Add(projectToAdd project.Project) string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	projectToAdd.ID = uuid.New().String()

	next := make([]project.Project, len(s.projects), len(s.projects)+1)
	copy(next, s.projects)
	s.projects = append(next, projectToAdd)
	s.revision++

	return projectToAdd.ID
}

// Update встроенные проекты не трогает
func (s *ProjectStorage) Update(id string, options ...project.ProjectOption) bool {
	return s.replaceProject(id, func(p *project.Project) {
		project.ApplyProject(p, options...)
		p.ID = id
	})
}

func (s *ProjectStorage) ToggleArchive(id string) bool {
	return s.replaceProject(id, func(p *project.Project) {
		p.IsArchived = !p.IsArchived
	})
}

// Delete убирает проект вместе с его секциями; задачи не затрагиваются
func (s *ProjectStorage) Delete(id string) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ind := slices.IndexFunc(s.projects, byProjectID(id))
	if ind < 0 {
		return false
	}

	projects := make([]project.Project, 0, len(s.projects)-1)
	projects = append(projects, s.projects[:ind]...)
	projects = append(projects, s.projects[ind+1:]...)

	sections := make([]project.Section, 0, len(s.sections))
	for _, section := range s.sections {
		if section.ProjectID == id {
			continue
		}
		sections = append(sections, section)
	}

	s.projects = projects
	s.sections = sections
	s.revision++

	return true
}

// Sections отдаёт секции проекта по возрастанию order, при равенстве в порядке добавления
func (s *ProjectStorage) Sections(projectID string) []project.Section {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []project.Section{}
	for _, section := range s.sections {
		if section.ProjectID == projectID {
			res = append(res, section)
		}
	}

	slices.SortStableFunc(res, func(a, b project.Section) int {
		return a.Order - b.Order
	})
	return res
}

func (s *ProjectStorage) GetSection(id string) (project.Section, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	ind := slices.IndexFunc(s.sections, bySectionID(id))
	if ind < 0 {
		return project.Section{}, repo.ErrNotFound
	}
	return s.sections[ind], nil
}

func (s *ProjectStorage) AddSection(sectionToAdd project.Section) string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	sectionToAdd.ID = uuid.New().String()

	next := make([]project.Section, len(s.sections), len(s.sections)+1)
	copy(next, s.sections)
	s.sections = append(next, sectionToAdd)
	s.revision++

	return sectionToAdd.ID
}

func (s *ProjectStorage) UpdateSection(id string, options ...project.SectionOption) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ind := slices.IndexFunc(s.sections, bySectionID(id))
	if ind < 0 {
		return false
	}

	next := slices.Clone(s.sections)
	project.ApplySection(&next[ind], options...)
	next[ind].ID = id

	s.sections = next
	s.revision++
	return true
}

// DeleteSection не перенумеровывает оставшиеся секции
func (s *ProjectStorage) DeleteSection(id string) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ind := slices.IndexFunc(s.sections, bySectionID(id))
	if ind < 0 {
		return false
	}

	next := make([]project.Section, 0, len(s.sections)-1)
	next = append(next, s.sections[:ind]...)
	next = append(next, s.sections[ind+1:]...)

	s.sections = next
	s.revision++
	return true
}

// SetActive запоминает выбранное представление; nil снимает выбор
func (s *ProjectStorage) SetActive(id *string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if id == nil {
		s.active = nil
	} else {
		selected := *id
		s.active = &selected
	}
	s.revision++
}

func (s *ProjectStorage) Active() *string {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if s.active == nil {
		return nil
	}
	selected := *s.active
	return &selected
}

func (s *ProjectStorage) Revision() uint64 {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.revision
}

func (s *ProjectStorage) replaceProject(id string, mutate func(*project.Project)) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ind := slices.IndexFunc(s.projects, byProjectID(id))
	if ind < 0 {
		return false
	}

	next := slices.Clone(s.projects)
	mutate(&next[ind])

	s.projects = next
	s.revision++
	return true
}

func byProjectID(id string) func(project.Project) bool {
	return func(p project.Project) bool {
		return p.ID == id
	}
}

func bySectionID(id string) func(project.Section) bool {
	return func(s project.Section) bool {
		return s.ID == id
	}
}
