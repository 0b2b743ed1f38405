package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError — нормализованная ошибка бэкенда: HTTP статус плюс
// строка detail из тела ответа, которую клиент показывает как есть.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %d: %s", e.StatusCode, e.Detail)
}

// Фразы для совместимости с прокси, переписывающими статус-коды.
// Основной сигнал — сам 404, подстроки только запасной механизм.
var notFoundPhrases = []string{
	"not found",
	"no active assignment",
}

// IsNotFound распознает класс ошибок "еще не найдено" при ожидании
// назначения: до исчерпания бюджета ожидания они ретраятся молча.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode == http.StatusNotFound {
		return true
	}
	detail := strings.ToLower(apiErr.Detail)
	for _, phrase := range notFoundPhrases {
		if strings.Contains(detail, phrase) {
			return true
		}
	}
	return false
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	// Транспортные сбои (обрыв соединения, DNS) ретраятся,
	// отмена контекста — нет.
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
