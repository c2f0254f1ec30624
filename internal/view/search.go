package view

import (
	"strings"
	"taskBoard/internal/models/task"

	"github.com/sahilm/fuzzy"
)

type titles []task.Task

func (t titles) String(i int) string { return t[i].Title }
func (t titles) Len() int            { return len(t) }

// Search ищет запрос в названиях задач, лучшие совпадения первыми.
// Пустой запрос ничего не находит
func Search(tasks []task.Task, query string) []task.Task {
	res := []task.Task{}
	query = strings.TrimSpace(query)
	if query == "" {
		return res
	}

	for _, m := range fuzzy.FindFrom(query, titles(tasks)) {
		res = append(res, tasks[m.Index])
	}
	return res
}
