package guests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kratvil/HES-HotelService/internal/domain"
	guestRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/guest"
	"github.com/kratvil/HES-HotelService/internal/service/guests/models"
)

// Service сервис карточек гостей
type Service struct {
	guestRepo GuestRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса гостей
func NewService(guestRepo GuestRepository, logger Logger) *Service {
	return &Service{
		guestRepo: guestRepo,
		logger:    logger,
	}
}

// List возвращает гостей, опционально по брони или комнате
func (s *Service) List(ctx context.Context, filter models.ListFilter) (*models.GuestListResponse, error) {
	var (
		guests []*domain.Guest
		err    error
	)

	switch {
	case filter.ReservationID != nil:
		guests, err = s.guestRepo.ListByReservation(ctx, *filter.ReservationID)
	case filter.RoomKey != nil:
		guests, err = s.guestRepo.ListByRoom(ctx, *filter.RoomKey)
	default:
		guests, err = s.guestRepo.ListAll(ctx)
	}
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainGuestList(guests), nil
}

// GetByID возвращает одного гостя по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*models.GuestResponse, error) {
	g, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("GetByID: guest id=%d not found", id)
			return nil, ErrGuestNotFound
		}
		s.logger.Error("GetByID: repository error for guest id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainGuest(g)
	return &resp, nil
}

// Update правит карточку гостя. Полевые правила те же, что при заселении:
// имя обязательно, id-карта обязательна для взрослых, info до 1000 знаков.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateGuestRequest) (*models.GuestResponse, error) {
	g, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("Update: guest id=%d not found", id)
			return nil, ErrGuestNotFound
		}
		s.logger.Error("Update: repository error for guest id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if violations := ValidateGuestFields(req.Name, req.IDCard, req.Generation, req.Info); len(violations) > 0 {
		s.logger.Warn("Update: validation failed for guest id=%d: %v", id, violations)
		return nil, &ValidationError{Violations: violations}
	}

	g.Name = req.Name
	g.IDCard = req.IDCard
	g.Generation = domain.GuestGeneration(req.Generation)
	g.Info = req.Info

	if err := s.guestRepo.Update(ctx, g); err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			return nil, ErrGuestNotFound
		}
		s.logger.Error("Update: repository error for guest id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: guest id=%d updated", id)
	resp := models.FromDomainGuest(g)
	return &resp, nil
}

// ValidateGuestFields возвращает полный список нарушений, без раннего выхода
func ValidateGuestFields(name, idCard, generation, info string) []string {
	var violations []string

	if strings.TrimSpace(name) == "" {
		violations = append(violations, RuleNameRequired)
	}

	gen := domain.GuestGeneration(generation)
	switch gen {
	case domain.GenerationAdult, domain.GenerationChild:
	default:
		violations = append(violations, RuleBadGeneration)
	}

	if gen != domain.GenerationChild && strings.TrimSpace(idCard) == "" {
		violations = append(violations, RuleIDCardRequired)
	}

	if len(info) > domain.MaxInfoLength {
		violations = append(violations, RuleInfoTooLong)
	}

	return violations
}
