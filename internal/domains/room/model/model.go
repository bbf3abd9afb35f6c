package model

import (
	"database/sql"
	"fmt"
	"pgsystem/shared/model"
	"time"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldRoomID      = "room_id"
	FieldName        = "name"
	FieldPrice       = "price"
	FieldRating      = "rating"
	FieldImage       = "image"
	FieldBooked      = "booked"
	FieldBookedBy    = "booked_by"
	FieldBookedAt    = "booked_at"
	FieldBookingDate = "booking_date"
)

const (
	basePrice      = 3000
	pricePerID     = 10
	ratingBuckets  = 5
	imageVariants  = 8
	imageExtension = ".jpeg"
)

type Room struct {
	RoomID      int            `db:"room_id"`
	Name        string         `db:"name"`
	Price       int            `db:"price"`
	Rating      int            `db:"rating"`
	Image       string         `db:"image"`
	Booked      bool           `db:"booked"`
	BookedBy    sql.NullString `db:"booked_by"`
	BookedAt    sql.NullTime   `db:"booked_at"`
	BookingDate sql.NullString `db:"booking_date"`
	model.Metadata
}

// Summary is the occupancy aggregate over the whole inventory.
type Summary struct {
	TotalRooms   int   `db:"total_rooms"`
	BookedRooms  int   `db:"booked_rooms"`
	TotalRevenue int64 `db:"total_revenue"`
}

type BookingCount struct {
	Username string `db:"booked_by"`
	Count    int    `db:"bookings"`
}

// CatalogRoom derives the fixed attributes of room id. Booking fields start empty.
func CatalogRoom(id int, actor string, now time.Time) Room {
	return Room{
		RoomID:   id,
		Name:     fmt.Sprintf("Room %d", id),
		Price:    basePrice + id*pricePerID,
		Rating:   id%ratingBuckets + 1,
		Image:    fmt.Sprintf("%d%s", id%imageVariants+1, imageExtension),
		Metadata: model.NewMetadata(actor, now),
	}
}
