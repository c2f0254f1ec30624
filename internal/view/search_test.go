package view_test

import (
	"taskBoard/internal/models/task"
	"taskBoard/internal/view"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearch тестирует нечёткий поиск по названиям
func TestSearch(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", Title: "Buy milk"},
		{ID: "2", Title: "Write report"},
		{ID: "3", Title: "Call plumber"},
	}

	t.Run("matches subsequence", func(t *testing.T) {
		got := view.Search(tasks, "milk")
		assert.Equal(t, []string{"1"}, ids(got))
	})

	t.Run("blank query", func(t *testing.T) {
		got := view.Search(tasks, "   ")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("no match", func(t *testing.T) {
		got := view.Search(tasks, "xyz")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}
