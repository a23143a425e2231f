package availability

// Logger интерфейс для логирования пропущенных записей шаблона
type Logger interface {
	Warn(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}
