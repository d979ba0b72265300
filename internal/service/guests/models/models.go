package models

import (
	"github.com/kratvil/HES-HotelService/internal/domain"
)

// GuestResponse ответ с данными гостя
type GuestResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Room          string `json:"room,omitempty"`
	IDCard        string `json:"idCard,omitempty"`
	Generation    string `json:"generation"`
	Info          string `json:"info,omitempty"`
	ReservationID int64  `json:"reservationId"`
}

// GuestListResponse ответ со списком гостей
type GuestListResponse struct {
	Guests []GuestResponse `json:"guests"`
}

// UpdateGuestRequest заявка на правку карточки гостя.
// Комната и привязка к брони меняются только через распределение комнат.
type UpdateGuestRequest struct {
	Name       string `json:"name"`
	IDCard     string `json:"idCard"`
	Generation string `json:"generation"`
	Info       string `json:"info"`
}

// ListFilter фильтры выборки гостей
type ListFilter struct {
	ReservationID *int64
	RoomKey       *string
}

// FromDomainGuest конвертирует доменную модель в ответ API
func FromDomainGuest(g *domain.Guest) GuestResponse {
	return GuestResponse{
		ID:            g.ID,
		Name:          g.Name,
		Room:          g.Room,
		IDCard:        g.IDCard,
		Generation:    string(g.Generation),
		Info:          g.Info,
		ReservationID: g.ReservationID,
	}
}

// FromDomainGuestList конвертирует список доменных моделей в ответ API
func FromDomainGuestList(guests []*domain.Guest) *GuestListResponse {
	resp := &GuestListResponse{Guests: make([]GuestResponse, 0, len(guests))}
	for _, g := range guests {
		resp.Guests = append(resp.Guests, FromDomainGuest(g))
	}
	return resp
}
