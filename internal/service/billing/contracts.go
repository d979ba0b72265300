package billing

import "context"

// SettingsRepository интерфейс хранилища настроек
type SettingsRepository interface {
	Get(ctx context.Context, name string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
