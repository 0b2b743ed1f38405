package resolve

import "errors"

// Ошибки резолва терминальны для сессии и показываются пользователю
// отдельным сообщением — их нельзя путать с таймаутом ожидания.
var (
	ErrRequestNotFound = errors.New("not found")
	ErrNoUsableID      = errors.New("no offer or request id")
	ErrUnknownRole     = errors.New("unknown role")
)
