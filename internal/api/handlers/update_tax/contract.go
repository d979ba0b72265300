package update_tax

import (
	"context"

	"github.com/kratvil/HES-HotelService/internal/service/settings"
)

type SettingsService interface {
	SetTax(ctx context.Context, req *settings.SetTaxRequest) (*settings.TaxResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
