package dto

import (
	roomModel "pgsystem/internal/domains/room/model"
	roomDto "pgsystem/internal/domains/room/model/dto"
)

type UserBookings struct {
	Username string `json:"username"`
	Bookings int    `json:"bookings"`
}

type DashboardResponse struct {
	Username        string                 `json:"username"`
	TotalRooms      int                    `json:"total_rooms"`
	BookedRooms     int                    `json:"booked_rooms"`
	AvailableRooms  int                    `json:"available_rooms"`
	TotalRevenue    int64                  `json:"total_revenue"`
	MyRooms         []roomDto.RoomResponse `json:"my_rooms"`
	BookingsPerUser []UserBookings         `json:"bookings_per_user"`
}

func (d *DashboardResponse) FromModels(username string, summary roomModel.Summary, myRooms []roomModel.Room, counts []roomModel.BookingCount) {
	d.Username = username
	d.TotalRooms = summary.TotalRooms
	d.BookedRooms = summary.BookedRooms
	d.AvailableRooms = summary.TotalRooms - summary.BookedRooms
	d.TotalRevenue = summary.TotalRevenue
	d.MyRooms = roomDto.FromModels(myRooms)

	d.BookingsPerUser = make([]UserBookings, len(counts))
	for i, count := range counts {
		d.BookingsPerUser[i] = UserBookings{Username: count.Username, Bookings: count.Count}
	}
}
