package dto_test

import (
	"math"
	"net/url"
	"pgsystem/shared/constant"
	"pgsystem/shared/dto"
	"pgsystem/shared/model"
	"pgsystem/shared/timezone"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.NewMetadata("system", createdAt))

	expected := timezone.Format(createdAt, constant.DateFormat)

	if metadata.CreatedAt != expected {
		t.Errorf("expected CreatedAt to be %s, got %s", expected, metadata.CreatedAt)
	}
	if metadata.ModifiedAt != expected {
		t.Errorf("expected ModifiedAt to be %s, got %s", expected, metadata.ModifiedAt)
	}
	if metadata.CreatedBy != "system" || metadata.ModifiedBy != "system" {
		t.Errorf("expected actors to be system, got %s and %s", metadata.CreatedBy, metadata.ModifiedBy)
	}
}

func TestQueryParams_FromValues(t *testing.T) {
	tests := []struct {
		name         string
		page         string
		expectedPage int
	}{
		{name: "no page", page: "", expectedPage: 1},
		{name: "valid page", page: "3", expectedPage: 3},
		{name: "zero page", page: "0", expectedPage: 1},
		{name: "negative page", page: "-2", expectedPage: 1},
		{name: "non numeric page", page: "two", expectedPage: 1},
		{name: "huge page is clamped", page: "461168601842738792", expectedPage: dto.MaxPage},
		{name: "page past int range", page: "99999999999999999999", expectedPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			if tt.page != "" {
				values.Set(constant.RequestParamPage, tt.page)
			}

			params := &dto.QueryParams{}
			params.FromValues(values)

			if params.Page != tt.expectedPage {
				t.Errorf("expected Page to be %d, got %d", tt.expectedPage, params.Page)
			}
			if params.Limit != constant.DefaultValuePageSize {
				t.Errorf("expected Limit to be %d, got %d", constant.DefaultValuePageSize, params.Limit)
			}
			if params.SortBy != "room_id" || params.SortDir != dto.SortDirAsc {
				t.Errorf("expected room_id ASC ordering, got %s %s", params.SortBy, params.SortDir)
			}
			if params.Offset() != (tt.expectedPage-1)*constant.DefaultValuePageSize {
				t.Errorf("unexpected offset %d", params.Offset())
			}
			if params.Offset() < 0 || params.Offset() > math.MaxInt32 {
				t.Errorf("offset %d outside the int32 range", params.Offset())
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name:          "equal",
			filter:        dto.Filter{Field: "booked", Value: false, Operator: dto.FilterOperatorEq},
			expectedWhere: "booked = :booked",
			expectedArgs:  map[string]any{"booked": false},
		},
		{
			name:          "greater or equal with arg name",
			filter:        dto.Filter{Field: "price", ArgName: "min_price", Value: 3050, Operator: dto.FilterOperatorGreaterEq, Table: "rooms"},
			expectedWhere: "rooms.price >= :min_price",
			expectedArgs:  map[string]any{"min_price": 3050},
		},
		{
			name:          "like escapes wildcards",
			filter:        dto.Filter{Field: "name", Value: `50%_off\`, Operator: dto.FilterOperatorLike},
			expectedWhere: `LOWER(name) LIKE LOWER(:name) ESCAPE '\'`,
			expectedArgs:  map[string]any{"name": `%50\%\_off\\%`},
		},
		{
			name:          "in slice",
			filter:        dto.Filter{Field: "room_id", Value: []int{1, 2}, Operator: dto.FilterOperatorIn},
			expectedWhere: "room_id IN (:room_id_0, :room_id_1)",
			expectedArgs:  map[string]any{"room_id_0": 1, "room_id_1": 2},
		},
		{
			name:          "in empty slice",
			filter:        dto.Filter{Field: "room_id", Value: []int{}, Operator: dto.FilterOperatorIn},
			expectedWhere: "FALSE",
			expectedArgs:  map[string]any{},
		},
		{
			name:          "is null",
			filter:        dto.Filter{Field: "booked_by", Operator: dto.FilterIsNull},
			expectedWhere: "booked_by IS NULL",
			expectedArgs:  map[string]any{},
		},
		{
			name:          "unknown operator",
			filter:        dto.Filter{Field: "name", Operator: "between"},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where %q, got %q", tt.expectedWhere, where)
			}
			if len(args) != len(tt.expectedArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}
			for key, value := range tt.expectedArgs {
				if args[key] != value {
					t.Errorf("expected arg %s to be %v, got %v", key, value, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "price", ArgName: "min_price", Value: 3050, Operator: dto.FilterOperatorGreaterEq},
			dto.FilterGroup{},
			dto.Filter{Field: "name", Operator: "unknown"},
			dto.Filter{Field: "price", ArgName: "max_price", Value: 3100, Operator: dto.FilterOperatorLessEq},
			"ignored",
		},
	}

	where, args := group.GetWhereClause()

	if where != "(price >= :min_price AND price <= :max_price)" {
		t.Errorf("unexpected where clause %q", where)
	}
	if args["min_price"] != 3050 || args["max_price"] != 3100 {
		t.Errorf("unexpected args %v", args)
	}

	empty := dto.FilterGroup{}
	if where, _ := empty.GetWhereClause(); where != "" {
		t.Errorf("expected empty clause, got %q", where)
	}

	nested := dto.FilterGroup{Operator: dto.FilterGroupOperatorOr}
	nested.Add(
		dto.Filter{Field: "booked", Value: true, Operator: dto.FilterOperatorEq},
		dto.FilterGroup{Filters: []any{dto.Filter{Field: "rating", Value: 5, Operator: dto.FilterOperatorEq}}},
	)

	if where, _ := nested.GetWhereClause(); where != "(booked = :booked OR (rating = :rating))" {
		t.Errorf("unexpected nested clause %q", where)
	}
}

func TestQueryParams_Offset(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected int
	}{
		{name: "first page", params: dto.QueryParams{Page: 1, Limit: 20}, expected: 0},
		{name: "third page", params: dto.QueryParams{Page: 3, Limit: 20}, expected: 40},
		{name: "zero page", params: dto.QueryParams{Page: 0, Limit: 20}, expected: 0},
		{name: "zero limit", params: dto.QueryParams{Page: 5, Limit: 0}, expected: 0},
		{name: "overflowing page", params: dto.QueryParams{Page: math.MaxInt, Limit: 20}, expected: (dto.MaxPage - 1) * 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Offset(); got != tt.expected {
				t.Errorf("expected offset %d, got %d", tt.expected, got)
			}
		})
	}
}
