package reconcile

import (
	"errors"
	"fmt"
)

var ErrNoIDs = errors.New("no assignment or request id to fetch by")

// DriftError: сервер вернул другой канонический request id.
// Деталь из устаревшего ответа не используется — вызывающий обновляет
// локальный id и перечитывает уже по исправленному.
type DriftError struct {
	Local  string
	Server string
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("request id drift: local %s, server %s", e.Local, e.Server)
}
