package logger

// NewNoop возвращает логгер, молча отбрасывающий записи.
// Используется в тестах.
func NewNoop() Logger {
	return noop{}
}

type noop struct{}

func (noop) Debug(string, ...Field) {}
func (noop) Info(string, ...Field)  {}
func (noop) Warn(string, ...Field)  {}
func (noop) Error(string, ...Field) {}

func (n noop) With(...Field) Logger { return n }
