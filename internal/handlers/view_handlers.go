package handlers

import (
	"context"
	"net/http"
	"taskBoard/internal/handlers/dto"
	"taskBoard/internal/logger"
	"taskBoard/internal/preferences"
	"taskBoard/internal/view"

	"go.uber.org/zap"
)

func (h *BoardHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	active, err := h.Service.ActiveProject(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "get_active")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("active", active))
}

func (h *BoardHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.SetActiveRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	active, err := h.Service.SetActiveProject(r.Context(), request.ProjectID)
	if err != nil {
		handleServiceError(w, r, err, "set_active")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("active", active))
}

func (h *BoardHandler) GetActiveTasks(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	tasks, err := h.Service.ActiveTasks(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "active_tasks")
		return
	}

	logger.Info("HTTP_OUT: Задачи представления получены", zap.Int("count", len(tasks)))
	responseWithJSON(w, http.StatusOK, toPayload("tasks", dto.FromTaskList(tasks, h.now())))
}

func (h *BoardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	summary, err := h.Service.Summary(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "summary")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("summary", summary))
}

func (h *BoardHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	h.respondWeek(w, r, "calendar_week", h.Service.CalendarWeek)
}

func (h *BoardHandler) NextWeek(w http.ResponseWriter, r *http.Request) {
	h.respondWeek(w, r, "calendar_next", h.Service.CalendarNext)
}

func (h *BoardHandler) PrevWeek(w http.ResponseWriter, r *http.Request) {
	h.respondWeek(w, r, "calendar_prev", h.Service.CalendarPrev)
}

func (h *BoardHandler) CurrentWeek(w http.ResponseWriter, r *http.Request) {
	h.respondWeek(w, r, "calendar_today", h.Service.CalendarToday)
}

func (h *BoardHandler) respondWeek(w http.ResponseWriter, r *http.Request, operation string, load func(context.Context) (view.Week, error)) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	week, err := load(r.Context())
	if err != nil {
		handleServiceError(w, r, err, operation)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("week", week))
}

func (h *BoardHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	prefs, err := h.Service.GetPreferences(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "get_preferences")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("preferences", prefs))
}

func (h *BoardHandler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.PreferencesRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if request.DarkMode == nil {
		logger.Warn("HTTP: Ошибка валидации",
			zap.String("field", "dark_mode"),
			zap.String("error", "empty_field"),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "поле dark_mode обязательно")
		return
	}

	saved, err := h.Service.SetPreferences(r.Context(), preferences.Preferences{DarkMode: *request.DarkMode})
	if err != nil {
		handleServiceError(w, r, err, "set_preferences")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("preferences", saved))
}

func (h *BoardHandler) ToggleDarkMode(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	prefs, err := h.Service.ToggleDarkMode(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "toggle_dark_mode")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("preferences", prefs))
}
