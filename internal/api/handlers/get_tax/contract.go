package get_tax

import (
	"context"

	"github.com/kratvil/HES-HotelService/internal/service/settings"
)

type SettingsService interface {
	GetTax(ctx context.Context) (*settings.TaxResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
