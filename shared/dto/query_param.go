package dto

import (
	"math"
	"net/url"
	"pgsystem/shared/constant"
	"strconv"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// MaxPage keeps (page-1)*pageSize inside a positive int32 OFFSET.
const MaxPage = math.MaxInt32 / constant.DefaultValuePageSize

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromValues reads the page number from query or form values. Non-numeric and non-positive
// pages fall back to the first page and pages past MaxPage are clamped to it. The page size is
// fixed and not client controlled.
//
//	q := &dto.QueryParams{}
//	q.FromValues(r.URL.Query())
func (q *QueryParams) FromValues(values url.Values) {
	q.Page = constant.DefaultValuePage

	if page := values.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = min(pageInt, MaxPage)
		}
	}

	q.Limit = constant.DefaultValuePageSize
	q.SortBy = constant.DefaultValueSortBy
	q.SortDir = constant.DefaultValueSortDir
}

// Offset returns the number of rows to skip for the current page.
func (q *QueryParams) Offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}

	page := q.Page
	if maxPage := math.MaxInt32 / q.Limit; page > maxPage {
		page = maxPage
	}

	return (page - 1) * q.Limit
}
