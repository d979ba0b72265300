package billing

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/kratvil/HES-HotelService/internal/domain"
)

// Breakdown итог расчета: суммы хранятся с полной точностью,
// округление до двух знаков — только при отображении (см. Round2)
type Breakdown struct {
	People     int
	StayDays   int
	Subtotal   float64
	TaxPercent int
	TaxAmount  float64
	Total      float64
}

// Calculator считает стоимость проживания.
// Налоговая ставка читается из настроек при каждом расчете, без кеша.
type Calculator struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewCalculator создает новый калькулятор
func NewCalculator(settingsRepo SettingsRepository, logger Logger) *Calculator {
	return &Calculator{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// TaxPercent возвращает текущую налоговую ставку из настроек
func (c *Calculator) TaxPercent(ctx context.Context) (int, error) {
	raw, err := c.settingsRepo.Get(ctx, domain.TaxSettingKey)
	if err != nil {
		return 0, fmt.Errorf("%w: TaxPercent - read setting: %v", ErrInternal, err)
	}

	tax, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadTaxValue, raw)
	}
	if tax < domain.MinTaxPercent || tax > domain.MaxTaxPercent {
		return 0, fmt.Errorf("%w: %d out of range", ErrBadTaxValue, tax)
	}

	return tax, nil
}

// CheckoutPrice считает счет при выселении: цена комнаты за ночь
// умножается на срок проживания и берется С КАЖДОГО гостя комнаты,
// не делится между соседями. stayDays — плановый срок брони
// (dateTo - dateFrom), не фактический: ранний выезд не уменьшает счет.
func (c *Calculator) CheckoutPrice(ctx context.Context, rooms []*domain.Room, guests []*domain.Guest, stayDays int) (*Breakdown, error) {
	tax, err := c.TaxPercent(ctx)
	if err != nil {
		return nil, err
	}

	priceByRoom := make(map[string]float64, len(rooms))
	for _, room := range rooms {
		priceByRoom[room.Key] = room.Price
	}

	subtotal := 0.0
	for _, g := range guests {
		price, ok := priceByRoom[g.Room]
		if !ok {
			return nil, fmt.Errorf("%w: guest id=%d room=%q", ErrGuestWithoutRoom, g.ID, g.Room)
		}
		subtotal += price * float64(stayDays)
	}

	taxAmount := subtotal * float64(tax) / 100
	breakdown := &Breakdown{
		People:     len(guests),
		StayDays:   stayDays,
		Subtotal:   subtotal,
		TaxPercent: tax,
		TaxAmount:  taxAmount,
		Total:      subtotal + taxAmount,
	}

	c.logger.Info("CheckoutPrice: people=%d, stayDays=%d, subtotal=%.2f, tax=%d%%, total=%.2f",
		breakdown.People, stayDays, subtotal, tax, breakdown.Total)
	return breakdown, nil
}

// RoomQuote предварительный расчет для одной комнаты
// (информация о комнате со стоимостью за плановый срок)
func (c *Calculator) RoomQuote(ctx context.Context, room *domain.Room, stayDays int) (*Breakdown, error) {
	tax, err := c.TaxPercent(ctx)
	if err != nil {
		return nil, err
	}

	subtotal := room.Price * float64(stayDays)
	taxAmount := subtotal * float64(tax) / 100

	return &Breakdown{
		StayDays:   stayDays,
		Subtotal:   subtotal,
		TaxPercent: tax,
		TaxAmount:  taxAmount,
		Total:      subtotal + taxAmount,
	}, nil
}

// Round2 округляет до двух знаков для отображения
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
