package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/kratvil/HES-HotelService/internal/domain"
	settingsRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/settings"
)

// TaxResponse текущий процент налога
type TaxResponse struct {
	TaxPercent int `json:"taxPercent"`
}

// SetTaxRequest заявка на смену процента налога
type SetTaxRequest struct {
	TaxPercent int `json:"taxPercent"`
}

// Service сервис настроек отеля
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetTax возвращает текущий процент налога.
// Отсутствующая настройка трактуется как значение по умолчанию.
func (s *Service) GetTax(ctx context.Context) (*TaxResponse, error) {
	raw, err := s.settingsRepo.Get(ctx, domain.TaxSettingKey)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingNotFound) {
			return &TaxResponse{TaxPercent: domain.DefaultTaxPercent}, nil
		}
		s.logger.Error("GetTax: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetTax - repository error: %v", ErrInternal, err)
	}

	percent, err := strconv.Atoi(raw)
	if err != nil || percent < domain.MinTaxPercent || percent > domain.MaxTaxPercent {
		s.logger.Error("GetTax: stored tax value is corrupt: %q", raw)
		return nil, fmt.Errorf("%w: GetTax - stored tax value %q is not a valid percent", ErrInternal, raw)
	}

	return &TaxResponse{TaxPercent: percent}, nil
}

// SetTax сохраняет новый процент налога, [0, 100]
func (s *Service) SetTax(ctx context.Context, req *SetTaxRequest) (*TaxResponse, error) {
	if req.TaxPercent < domain.MinTaxPercent || req.TaxPercent > domain.MaxTaxPercent {
		s.logger.Warn("SetTax: percent %d out of range", req.TaxPercent)
		return nil, ErrTaxOutOfRange
	}

	if err := s.settingsRepo.Set(ctx, domain.TaxSettingKey, strconv.Itoa(req.TaxPercent)); err != nil {
		s.logger.Error("SetTax: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetTax - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetTax: tax percent set to %d", req.TaxPercent)
	return &TaxResponse{TaxPercent: req.TaxPercent}, nil
}
