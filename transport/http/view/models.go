package view

import (
	roomDto "pgsystem/internal/domains/room/model/dto"
	"pgsystem/shared/constant"
	"strconv"
)

// Catalog backs the room listing page.
type Catalog struct {
	roomDto.ListRoomsResponse
	Today string
}

// PageLink keeps the active filters while moving to another page.
func (c Catalog) PageLink(page int) string {
	values := c.Filters.Values()
	values.Set(constant.RequestParamPage, strconv.Itoa(page))

	return "/?" + values.Encode()
}

// Action is the booking form target, so the redirect after booking returns to the same view.
func (c Catalog) Action() string {
	return c.PageLink(c.Page)
}

func (c Catalog) HasPrev() bool {
	return c.Page > 1
}

func (c Catalog) HasNext() bool {
	return c.Page < c.TotalPages
}

func (c Catalog) MinPrice() string {
	return optional(c.Filters.MinPrice)
}

func (c Catalog) MaxPrice() string {
	return optional(c.Filters.MaxPrice)
}

func (c Catalog) MinRating() string {
	return optional(c.Filters.MinRating)
}

func optional(value *int) string {
	if value == nil {
		return constant.Empty
	}

	return strconv.Itoa(*value)
}
