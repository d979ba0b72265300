package models

import (
	"github.com/kratvil/HES-HotelService/internal/domain"
	"github.com/kratvil/HES-HotelService/internal/service/billing"
)

// Request модели

// CreateRoomRequest заявка на создание комнаты
type CreateRoomRequest struct {
	Key   string  `json:"key"`
	Type  string  `json:"type"`
	Beds  int     `json:"beds"`
	Price float64 `json:"price"`
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	Key    string  `json:"key"`
	Type   string  `json:"type"`
	Beds   int     `json:"beds"`
	Status string  `json:"status"`
	Price  float64 `json:"price"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// RoomGuestResponse гость в составе информации о комнате
type RoomGuestResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IDCard     string `json:"idCard,omitempty"`
	Generation string `json:"generation"`
	Info       string `json:"info,omitempty"`
}

// PriceQuoteResponse расчет стоимости (округлен для отображения)
type PriceQuoteResponse struct {
	StayDays   int     `json:"stayDays"`
	Subtotal   float64 `json:"subtotal"`
	TaxPercent int     `json:"taxPercent"`
	TaxAmount  float64 `json:"taxAmount"`
	Total      float64 `json:"total"`
}

// RoomInfoResponse информация о комнате с жильцами и расчетом стоимости
type RoomInfoResponse struct {
	Room   RoomResponse        `json:"room"`
	Guests []RoomGuestResponse `json:"guests"`
	Quote  *PriceQuoteResponse `json:"quote,omitempty"`
}

// OccupancySummaryResponse сводка занятости отеля
type OccupancySummaryResponse struct {
	GuestsWithRoom int `json:"guestsWithRoom"`
	OccupiedRooms  int `json:"occupiedRooms"`
	TotalRooms     int `json:"totalRooms"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(rm *domain.Room) *RoomResponse {
	if rm == nil {
		return nil
	}
	return &RoomResponse{
		Key:    rm.Key,
		Type:   string(rm.Type),
		Beds:   rm.Beds,
		Status: string(rm.Status),
		Price:  rm.Price,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, rm := range rooms {
		if dto := FromDomainRoom(rm); dto != nil {
			resp.Rooms = append(resp.Rooms, *dto)
		}
	}
	return resp
}

// FromBreakdown конвертирует расчет в DTO, округляя суммы для отображения
func FromBreakdown(b *billing.Breakdown) *PriceQuoteResponse {
	if b == nil {
		return nil
	}
	return &PriceQuoteResponse{
		StayDays:   b.StayDays,
		Subtotal:   billing.Round2(b.Subtotal),
		TaxPercent: b.TaxPercent,
		TaxAmount:  billing.Round2(b.TaxAmount),
		Total:      billing.Round2(b.Total),
	}
}
