package handlers

import (
	"context"
	"errors"
	"net/http"
	"taskBoard/internal/logger"
	"taskBoard/internal/service"

	"go.uber.org/zap"
)

func handleBusinessError(w http.ResponseWriter, err error) bool {
	businessErr, ok := service.AsBusinessError(err)
	if !ok {
		return false
	}

	statusCode := mapBusinessErrorToHTTP(businessErr.Code)

	logger.Warn("HTTP: Бизнес-ошибка",
		zap.String("error_code", businessErr.Code),
		zap.Int("http_status", statusCode))

	responseWithJSON(w, statusCode,
		toPayload("error", businessErr.Code),
		toPayload("message", businessErr.Message),
		toPayload("details", businessErr.Details),
	)
	return true
}

// handleServiceError отвечает бизнес-ошибкой либо 500.
// На истёкший дедлайн ничего не пишет: ответ 504 отдаёт middleware.Timeout
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	if handleBusinessError(w, err) {
		return
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		logger.Warn("HTTP: Запрос прерван до ответа",
			zap.String("operation", operation),
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		return
	}

	logger.Error("HTTP: Ошибка в Service", err,
		zap.String("operation", operation),
		zap.String("client_ip", r.RemoteAddr))

	responseWithError(w, http.StatusInternalServerError, err.Error())
}

func mapBusinessErrorToHTTP(code string) int {
	switch code {
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeValidation:
		return http.StatusBadRequest
	case service.CodeReservedProject:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
