package dto

import (
	"net/url"
	"pgsystem/internal/domains/room/model"
	"pgsystem/shared"
	"pgsystem/shared/constant"
	gDto "pgsystem/shared/dto"
	"pgsystem/shared/timezone"
	"strconv"
	"strings"
)

// CatalogFilter holds the optional catalog predicates. Nil means the filter is absent.
type CatalogFilter struct {
	MinPrice  *int   `json:"min_price,omitempty"`
	MaxPrice  *int   `json:"max_price,omitempty"`
	MinRating *int   `json:"min_rating,omitempty"`
	Search    string `json:"q,omitempty"`
}

// FromValues reads filters from query or form values, ignoring non-numeric bounds.
func (f *CatalogFilter) FromValues(values url.Values) {
	f.MinPrice = shared.ConvertStringToInt(values.Get(constant.RequestParamMinPrice))
	f.MaxPrice = shared.ConvertStringToInt(values.Get(constant.RequestParamMaxPrice))
	f.MinRating = shared.ConvertStringToInt(values.Get(constant.RequestParamMinRating))
	f.Search = strings.TrimSpace(values.Get(constant.RequestParamSearch))
}

// ToFilterGroup ANDs every present predicate.
func (f *CatalogFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Search != "" {
		group.Add(gDto.Filter{
			Field:    model.FieldName,
			ArgName:  constant.RequestParamSearch,
			Value:    f.Search,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	if f.MinPrice != nil {
		group.Add(gDto.Filter{
			Field:    model.FieldPrice,
			ArgName:  constant.RequestParamMinPrice,
			Value:    *f.MinPrice,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if f.MaxPrice != nil {
		group.Add(gDto.Filter{
			Field:    model.FieldPrice,
			ArgName:  constant.RequestParamMaxPrice,
			Value:    *f.MaxPrice,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		})
	}

	if f.MinRating != nil {
		group.Add(gDto.Filter{
			Field:    model.FieldRating,
			ArgName:  constant.RequestParamMinRating,
			Value:    *f.MinRating,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	return group
}

// Available narrows the filter to rooms that are not booked.
func (f *CatalogFilter) Available() gDto.FilterGroup {
	group := f.ToFilterGroup()
	group.Add(gDto.Filter{
		Field:    model.FieldBooked,
		ArgName:  "available_" + model.FieldBooked,
		Value:    false,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	return group
}

// Values encodes the present filters, used for cache keys and pagination links.
func (f *CatalogFilter) Values() url.Values {
	values := url.Values{}

	if f.Search != "" {
		values.Set(constant.RequestParamSearch, f.Search)
	}

	if f.MinPrice != nil {
		values.Set(constant.RequestParamMinPrice, strconv.Itoa(*f.MinPrice))
	}

	if f.MaxPrice != nil {
		values.Set(constant.RequestParamMaxPrice, strconv.Itoa(*f.MaxPrice))
	}

	if f.MinRating != nil {
		values.Set(constant.RequestParamMinRating, strconv.Itoa(*f.MinRating))
	}

	return values
}

type RoomResponse struct {
	RoomID      int    `json:"room_id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Rating      int    `json:"rating"`
	Image       string `json:"image"`
	Booked      bool   `json:"booked"`
	BookedBy    string `json:"booked_by,omitempty"`
	BookedAt    string `json:"booked_at,omitempty"`
	BookingDate string `json:"booking_date,omitempty"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.RoomID = room.RoomID
	r.Name = room.Name
	r.Price = room.Price
	r.Rating = room.Rating
	r.Image = room.Image
	r.Booked = room.Booked
	r.BookedBy = room.BookedBy.String
	r.BookingDate = room.BookingDate.String

	if room.BookedAt.Valid {
		r.BookedAt = timezone.Format(room.BookedAt.Time, constant.DateFormat)
	}
}

func FromModels(rooms []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		res[i].FromModel(room)
	}

	return res
}

type ListRoomsResponse struct {
	Rooms      []RoomResponse `json:"rooms"`
	Total      int            `json:"total"`
	Available  int            `json:"available"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Filters    CatalogFilter  `json:"filters"`
}

func (r *ListRoomsResponse) FromModels(rooms []model.Room, total, available int, params gDto.QueryParams, filter CatalogFilter) {
	r.Rooms = FromModels(rooms)
	r.Total = total
	r.Available = available
	r.Page = params.Page
	r.TotalPages = shared.CalculateTotalPage(total, params.Limit)
	r.Filters = filter
}
