package models

import (
	"time"

	"github.com/kratvil/HES-HotelService/internal/domain"
	"github.com/kratvil/HES-HotelService/pkg/ptr"
)

// Request модели

// SaveReservationRequest заявка на создание или изменение бронирования.
// ID заполнен только при редактировании.
type SaveReservationRequest struct {
	ID        *int64
	Name      string
	DateFrom  time.Time
	DateTo    time.Time
	Telephone string
	Email     *string
	People    int
	Info      string
}

// ToDomain строит domain модель; новое бронирование всегда UPCOMING
func (r *SaveReservationRequest) ToDomain() *domain.Reservation {
	res := &domain.Reservation{
		Name:      r.Name,
		DateFrom:  r.DateFrom,
		DateTo:    r.DateTo,
		Telephone: r.Telephone,
		Email:     r.Email,
		People:    r.People,
		Info:      r.Info,
		State:     domain.StateUpcoming,
	}
	if r.ID != nil {
		res.ID = *r.ID
	}
	return res
}

// Response модели

// ReservationResponse ответ с данными бронирования.
// daysToPerform присутствует только у активных броней: для терминальных
// состояний поле опускается, сентинель наружу не отдается.
type ReservationResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	DateFrom      string  `json:"dateFrom"` // "2026-06-01"
	DateTo        string  `json:"dateTo"`
	Telephone     string  `json:"telephone"`
	Email         *string `json:"email,omitempty"`
	People        int     `json:"people"`
	Info          string  `json:"info,omitempty"`
	State         string  `json:"state"`
	DaysToPerform *int    `json:"daysToPerform,omitempty"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO.
// daysToPerform вычисляется на момент чтения.
func FromDomainReservation(res *domain.Reservation, now time.Time) *ReservationResponse {
	if res == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:        res.ID,
		Name:      res.Name,
		DateFrom:  res.DateFrom.Format(domain.DateFormat),
		DateTo:    res.DateTo.Format(domain.DateFormat),
		Telephone: res.Telephone,
		Email:     res.Email,
		People:    res.People,
		Info:      res.Info,
		State:     string(res.State),
	}
	if res.IsActive() {
		resp.DaysToPerform = ptr.Ptr(res.DaysToPerform(now))
	}
	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation, now time.Time) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}
	for _, res := range reservations {
		if dto := FromDomainReservation(res, now); dto != nil {
			resp.Reservations = append(resp.Reservations, *dto)
		}
	}
	return resp
}
