package handlers

import (
	"net/http"
	"taskBoard/internal/handlers/dto"
	"taskBoard/internal/logger"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *BoardHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	revisions, err := h.Service.Revisions(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "list_projects")
		return
	}
	if writeRevision(w, r, "projects", revisions.Epoch, revisions.Projects) {
		return
	}

	projects, err := h.Service.ListProjects(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "list_projects")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("projects", dto.FromProjectList(projects)))
}

func (h *BoardHandler) GetArchivedProjects(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	projects, err := h.Service.ListArchivedProjects(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "list_archived_projects")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("projects", dto.FromProjectList(projects)))
}

func (h *BoardHandler) GetBuiltinProjects(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	projects, err := h.Service.ListBuiltinProjects(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "list_builtin_projects")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("projects", dto.FromProjectList(projects)))
}

func (h *BoardHandler) PostProject(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CreateProjectRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	created, err := h.Service.CreateProject(r.Context(), request.ToProject())
	if err != nil {
		handleServiceError(w, r, err, "create_project")
		return
	}

	logger.Info("HTTP_OUT: Проект создан",
		zap.String("project_id", created.ID),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, toPayload("project", dto.FromProject(created)))
}

func (h *BoardHandler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.Service.GetProject(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, "get_project")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("project", dto.FromProject(p)))
}

func (h *BoardHandler) UpdateProjectByID(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var request dto.UpdateProjectRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	updated, err := h.Service.UpdateProject(r.Context(), id, request.Options()...)
	if err != nil {
		handleServiceError(w, r, err, "update_project")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("project", dto.FromProject(updated)))
}

func (h *BoardHandler) DeleteProjectByID(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteProject(r.Context(), id); err != nil {
		handleServiceError(w, r, err, "delete_project")
		return
	}

	logger.Info("HTTP_OUT: Проект удалён",
		zap.String("project_id", id),
		zap.Int("http_status", http.StatusNoContent))

	responseNoContent(w)
}

func (h *BoardHandler) ToggleArchiveProject(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.Service.ToggleArchiveProject(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, "archive_project")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("project", dto.FromProject(p)))
}

func (h *BoardHandler) GetSections(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	sections, err := h.Service.ListSections(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, "list_sections")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("sections", sections))
}

func (h *BoardHandler) PostSection(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	projectID, ok := pathID(w, r)
	if !ok {
		return
	}

	var request dto.CreateSectionRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	created, err := h.Service.CreateSection(r.Context(), projectID, request.ToSection())
	if err != nil {
		handleServiceError(w, r, err, "create_section")
		return
	}
	responseWithJSON(w, http.StatusCreated, toPayload("section", created))
}

func (h *BoardHandler) UpdateSectionByID(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var request dto.UpdateSectionRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	updated, err := h.Service.UpdateSection(r.Context(), id, request.Options()...)
	if err != nil {
		handleServiceError(w, r, err, "update_section")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("section", updated))
}

func (h *BoardHandler) DeleteSectionByID(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteSection(r.Context(), id); err != nil {
		handleServiceError(w, r, err, "delete_section")
		return
	}
	responseNoContent(w)
}

// GetViewTasks - список для представления или проекта из пути
func (h *BoardHandler) GetViewTasks(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	tasks, err := h.Service.ViewTasks(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, "view_tasks")
		return
	}

	responseWithJSON(w, http.StatusOK,
		toPayload("view", chi.URLParam(r, "id")),
		toPayload("tasks", dto.FromTaskList(tasks, h.now())),
	)
}
