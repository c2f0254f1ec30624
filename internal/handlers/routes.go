package handlers

import "github.com/go-chi/chi/v5"

func (h *BoardHandler) Register(r chi.Router) {
	r.Get("/health", h.HealthCheck)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.GetAllTasks)       // GET /tasks
		r.Post("/", h.PostTask)         // POST /tasks
		r.Get("/search", h.SearchTasks) // GET /tasks/search?q=

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetTaskByID)       // GET /tasks/{id}
			r.Put("/", h.UpdateTaskByID)    // PUT /tasks/{id}
			r.Delete("/", h.DeleteTaskByID) // DELETE /tasks/{id}

			r.Post("/toggle", h.ToggleTask) // POST /tasks/{id}/toggle
			r.Post("/move", h.MoveTask)     // POST /tasks/{id}/move
		})
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.GetProjects)                 // GET /projects
		r.Post("/", h.PostProject)                // POST /projects
		r.Get("/archived", h.GetArchivedProjects) // GET /projects/archived
		r.Get("/builtin", h.GetBuiltinProjects)   // GET /projects/builtin

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetProjectByID)       // GET /projects/{id}
			r.Put("/", h.UpdateProjectByID)    // PUT /projects/{id}
			r.Delete("/", h.DeleteProjectByID) // DELETE /projects/{id}

			r.Post("/archive", h.ToggleArchiveProject) // POST /projects/{id}/archive
			r.Get("/sections", h.GetSections)          // GET /projects/{id}/sections
			r.Post("/sections", h.PostSection)         // POST /projects/{id}/sections
		})
	})

	r.Route("/sections/{id}", func(r chi.Router) {
		r.Put("/", h.UpdateSectionByID)    // PUT /sections/{id}
		r.Delete("/", h.DeleteSectionByID) // DELETE /sections/{id}
	})

	r.Get("/views/{id}/tasks", h.GetViewTasks) // GET /views/{id}/tasks

	r.Route("/active", func(r chi.Router) {
		r.Get("/", h.GetActive)           // GET /active
		r.Put("/", h.SetActive)           // PUT /active
		r.Get("/tasks", h.GetActiveTasks) // GET /active/tasks
	})

	r.Get("/summary", h.GetSummary)

	r.Route("/calendar", func(r chi.Router) {
		r.Get("/", h.GetCalendar)       // GET /calendar
		r.Post("/next", h.NextWeek)     // POST /calendar/next
		r.Post("/prev", h.PrevWeek)     // POST /calendar/prev
		r.Post("/today", h.CurrentWeek) // POST /calendar/today
	})

	r.Route("/preferences", func(r chi.Router) {
		r.Get("/", h.GetPreferences)                  // GET /preferences
		r.Put("/", h.PutPreferences)                  // PUT /preferences
		r.Post("/dark-mode/toggle", h.ToggleDarkMode) // POST /preferences/dark-mode/toggle
	})
}
