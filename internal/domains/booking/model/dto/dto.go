package dto

import (
	"net/url"
	"pgsystem/internal/domains/booking/model"
	"pgsystem/shared"
	"pgsystem/shared/constant"
	"strconv"
	"strings"
	"time"
)

type BookRequest struct {
	RoomID      int    `json:"-"            form:"room_id"      validate:"required,min=1"`
	BookingDate string `json:"booking_date" form:"booking_date" validate:"required,datetime=2006-01-02"`
}

// FromValues reads a booking form. A missing or non-numeric room id is left at zero.
func (b *BookRequest) FromValues(values url.Values) {
	if roomID := shared.ConvertStringToInt(values.Get(constant.RequestParamRoomID)); roomID != nil {
		b.RoomID = *roomID
	}

	b.BookingDate = strings.TrimSpace(values.Get(constant.RequestParamBookingDate))
}

type BookingResponse struct {
	RoomID      int    `json:"room_id"`
	BookedBy    string `json:"booked_by"`
	BookingDate string `json:"booking_date"`
}

func NewEvent(eventType string, roomID int, username, bookingDate string, at time.Time) model.Event {
	return model.Event{
		Type:        eventType,
		RoomID:      roomID,
		Username:    username,
		BookingDate: bookingDate,
		OccurredAt:  at,
	}
}

// EventKey partitions events by room so a room's history stays ordered.
func EventKey(roomID int) string {
	return strconv.Itoa(roomID)
}
