package handlers

import (
	"net/http"
	"taskBoard/internal/handlers/dto"
	"taskBoard/internal/logger"
	"time"

	"go.uber.org/zap"
)

type BoardHandler struct {
	Service Service
	now     func() time.Time
}

type Option func(*BoardHandler)

// WithClock задаёт время, относительно которого считается is_overdue
func WithClock(now func() time.Time) Option {
	return func(h *BoardHandler) {
		if now != nil {
			h.now = now
		}
	}
}

func NewBoardHandler(svc Service, options ...Option) *BoardHandler {
	h := &BoardHandler{
		Service: svc,
		now:     time.Now,
	}
	for _, opt := range options {
		opt(h)
	}
	return h
}

func (h *BoardHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")

	if err := h.Service.HealthCheck(r.Context()); err != nil {
		logger.Error("HTTP: Сервис недоступен", err)
		responseWithJSON(w, http.StatusServiceUnavailable,
			toPayload("status", "unavailable"),
			toPayload("service", "task-board"),
			toPayload("error", err.Error()),
		)
		return
	}

	responseWithJSON(w, http.StatusOK,
		toPayload("status", "ok"),
		toPayload("service", "task-board"),
	)
}

func (h *BoardHandler) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	// ревизия читается до списка: при гонке ETag окажется старше данных, а не наоборот
	revisions, err := h.Service.Revisions(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "list_tasks")
		return
	}
	if writeRevision(w, r, "tasks", revisions.Epoch, revisions.Tasks) {
		logger.Info("HTTP_OUT: Задачи не изменились", zap.Uint64("revision", revisions.Tasks))
		return
	}

	tasks, err := h.Service.ListTasks(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "list_tasks")
		return
	}

	logger.Info("HTTP_OUT: Задачи получены",
		zap.Int("count", len(tasks)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("tasks", dto.FromTaskList(tasks, h.now())))
}

func (h *BoardHandler) SearchTasks(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	query := r.URL.Query().Get("q")
	tasks, err := h.Service.SearchTasks(r.Context(), query)
	if err != nil {
		handleServiceError(w, r, err, "search_tasks")
		return
	}

	responseWithJSON(w, http.StatusOK,
		toPayload("query", query),
		toPayload("tasks", dto.FromTaskList(tasks, h.now())),
	)
}

func (h *BoardHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CreateTaskRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	newTask, err := request.ToTask()
	if err != nil {
		logger.Warn("HTTP: Ошибка валидации",
			zap.String("field", "due_date"),
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.Info("HTTP: Вызов сервиса создания задачи")
	created, err := h.Service.CreateTask(r.Context(), newTask)
	if err != nil {
		handleServiceError(w, r, err, "create_task")
		return
	}

	logger.Info("HTTP_OUT: Задача создана",
		zap.String("task_id", created.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, toPayload("task", dto.FromTask(created, h.now())))
}

func (h *BoardHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	t, err := h.Service.GetTaskByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, "get_task")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(t, h.now())))
}

func (h *BoardHandler) UpdateTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var request dto.UpdateTaskRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	options, err := request.Options()
	if err != nil {
		logger.Warn("HTTP: Ошибка валидации",
			zap.String("field", "due_date"),
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.Info("HTTP: Запрос к сервису обновления задачи", zap.Int("fields", len(options)))
	updated, err := h.Service.UpdateTask(r.Context(), id, options...)
	if err != nil {
		handleServiceError(w, r, err, "update_task")
		return
	}

	logger.Info("HTTP_OUT: Задача обновлена",
		zap.String("task_id", id),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(updated, h.now())))
}

func (h *BoardHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteTask(r.Context(), id); err != nil {
		handleServiceError(w, r, err, "delete_task")
		return
	}

	logger.Info("HTTP_OUT: Задача удалена",
		zap.String("task_id", id),
		zap.Int("http_status", http.StatusNoContent))

	responseNoContent(w)
}

func (h *BoardHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	t, err := h.Service.ToggleTask(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, "toggle_task")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(t, h.now())))
}

func (h *BoardHandler) MoveTask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var request dto.MoveTaskRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	t, err := h.Service.MoveTask(r.Context(), id, request.ProjectID)
	if err != nil {
		handleServiceError(w, r, err, "move_task")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(t, h.now())))
}
