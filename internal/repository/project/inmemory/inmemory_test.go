package inmemory_test

import (
	"context"
	"taskBoard/internal/models/project"
	"taskBoard/internal/repository"
	"taskBoard/internal/repository/project/inmemory"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProjectStorage_New тестирует начальное состояние
func TestProjectStorage_New(t *testing.T) {
	storage := inmemory.NewProjectStorage()

	builtins := storage.Builtins()
	require.Len(t, builtins, 3)
	assert.Equal(t, project.InboxID, builtins[0].ID)
	assert.Equal(t, project.TodayID, builtins[1].ID)
	assert.Equal(t, project.UpcomingID, builtins[2].ID)

	assert.Empty(t, storage.List())

	active := storage.Active()
	require.NotNil(t, active)
	assert.Equal(t, project.InboxID, *active)

	assert.NoError(t, storage.HealthCheck(context.Background()))
}

// TestProjectStorage_AddAndGet тестирует добавление проекта
func TestProjectStorage_AddAndGet(t *testing.T) {
	storage := inmemory.NewProjectStorage()

	id := storage.Add(project.Project{Name: "Errands", Color: "#DB4C3F", Icon: "🛒"})
	assert.NotEmpty(t, id)
	assert.False(t, project.IsBuiltin(id))

	p, err := storage.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Errands", p.Name)
	assert.False(t, p.IsArchived)
	assert.True(t, storage.Exists(id))

	inbox, err := storage.GetByID(project.InboxID)
	require.NoError(t, err)
	assert.Equal(t, "Inbox", inbox.Name)

	_, err = storage.GetByID("missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestProjectStorage_Update тестирует обновление и защиту встроенных проектов
func TestProjectStorage_Update(t *testing.T) {
	storage := inmemory.NewProjectStorage()
	id := storage.Add(project.Project{Name: "Old", Icon: "💼"})

	require.True(t, storage.Update(id, project.WithName("New"), project.WithColor("#0065FF")))

	p, err := storage.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "New", p.Name)
	assert.Equal(t, "#0065FF", p.Color)
	assert.Equal(t, "💼", p.Icon)

	assert.False(t, storage.Update(project.InboxID, project.WithName("Hacked")))
	inbox, _ := storage.GetByID(project.InboxID)
	assert.Equal(t, "Inbox", inbox.Name)
}

// TestProjectStorage_ToggleArchive тестирует архивирование
func TestProjectStorage_ToggleArchive(t *testing.T) {
	storage := inmemory.NewProjectStorage()
	id := storage.Add(project.Project{Name: "Archive me"})

	require.True(t, storage.ToggleArchive(id))
	p, _ := storage.GetByID(id)
	assert.True(t, p.IsArchived)

	require.True(t, storage.ToggleArchive(id))
	p, _ = storage.GetByID(id)
	assert.False(t, p.IsArchived)

	assert.False(t, storage.ToggleArchive(project.TodayID))
}

// TestProjectStorage_DeleteRemovesSections тестирует каскадное удаление секций
func TestProjectStorage_DeleteRemovesSections(t *testing.T) {
	storage := inmemory.NewProjectStorage()
	p := storage.Add(project.Project{Name: "Errands"})
	other := storage.Add(project.Project{Name: "Other"})

	storage.AddSection(project.Section{Title: "A", ProjectID: p, Order: 1})
	storage.AddSection(project.Section{Title: "B", ProjectID: p, Order: 2})
	kept := storage.AddSection(project.Section{Title: "C", ProjectID: other, Order: 1})

	require.True(t, storage.Delete(p))

	assert.False(t, storage.Exists(p))
	assert.Empty(t, storage.Sections(p))
	_, err := storage.GetSection(kept)
	assert.NoError(t, err)

	assert.False(t, storage.Delete(p))
	assert.False(t, storage.Delete(project.InboxID))
	assert.True(t, storage.Exists(project.InboxID))
}

// TestProjectStorage_Sections тестирует CRUD секций
func TestProjectStorage_Sections(t *testing.T) {
	storage := inmemory.NewProjectStorage()
	p := storage.Add(project.Project{Name: "Work"})

	done := storage.AddSection(project.Section{Title: "Done", ProjectID: p, Order: 3})
	todo := storage.AddSection(project.Section{Title: "To Do", ProjectID: p, Order: 1})
	progress := storage.AddSection(project.Section{Title: "In Progress", ProjectID: p, Order: 2})

	sections := storage.Sections(p)
	require.Len(t, sections, 3)
	assert.Equal(t, []string{todo, progress, done}, []string{sections[0].ID, sections[1].ID, sections[2].ID})

	require.True(t, storage.UpdateSection(progress, project.WithSectionTitle("Doing")))
	s, err := storage.GetSection(progress)
	require.NoError(t, err)
	assert.Equal(t, "Doing", s.Title)
	assert.Equal(t, 2, s.Order)

	// после удаления порядок не перенумеровывается
	require.True(t, storage.DeleteSection(progress))
	sections = storage.Sections(p)
	require.Len(t, sections, 2)
	assert.Equal(t, 1, sections[0].Order)
	assert.Equal(t, 3, sections[1].Order)

	assert.False(t, storage.DeleteSection(progress))
	assert.False(t, storage.UpdateSection("missing", project.WithOrder(5)))
}

// TestProjectStorage_SectionsStableOrder тестирует порядок при равных order
func TestProjectStorage_SectionsStableOrder(t *testing.T) {
	storage := inmemory.NewProjectStorage()
	p := storage.Add(project.Project{Name: "Work"})

	first := storage.AddSection(project.Section{Title: "First", ProjectID: p, Order: 1})
	second := storage.AddSection(project.Section{Title: "Second", ProjectID: p, Order: 1})

	sections := storage.Sections(p)
	require.Len(t, sections, 2)
	assert.Equal(t, first, sections[0].ID)
	assert.Equal(t, second, sections[1].ID)
}

// TestProjectStorage_Active тестирует выбор представления
func TestProjectStorage_Active(t *testing.T) {
	storage := inmemory.NewProjectStorage()

	selected := "today"
	storage.SetActive(&selected)
	selected = "changed after call"

	active := storage.Active()
	require.NotNil(t, active)
	assert.Equal(t, "today", *active)

	storage.SetActive(nil)
	assert.Nil(t, storage.Active())
}

// TestProjectStorage_SnapshotIsolation тестирует неизменность снимков
func TestProjectStorage_SnapshotIsolation(t *testing.T) {
	storage := inmemory.NewProjectStorage()
	id := storage.Add(project.Project{Name: "Before"})

	snapshot := storage.List()
	storage.Update(id, project.WithName("After"))

	assert.Equal(t, "Before", snapshot[0].Name)
	assert.Equal(t, uint64(2), storage.Revision())
}
