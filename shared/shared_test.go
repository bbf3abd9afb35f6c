package shared_test

import (
	"context"
	"errors"
	"net/url"
	"pgsystem/shared"
	"pgsystem/shared/constant"
	"pgsystem/shared/dto"
	"reflect"
	"testing"
	"time"

	cacheMocks "pgsystem/shared/cache/mocks"

	"go.uber.org/mock/gomock"
)

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *int
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "whitespace returns nil", input: "  ", expected: nil},
		{name: "valid number", input: "3050", expected: intPtr(3050)},
		{name: "padded number", input: " 4 ", expected: intPtr(4)},
		{name: "negative number", input: "-1", expected: intPtr(-1)},
		{name: "decimal returns nil", input: "3.5", expected: nil},
		{name: "text returns nil", input: "cheap", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToInt(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil {
				t.Fatalf("expected %v, got nil", *tt.expected)
			}
			if *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "nothing matched", total: 0, limit: 20, expected: 0},
		{name: "zero limit", total: 100, limit: 0, expected: 1},
		{name: "full catalog", total: 100, limit: 20, expected: 5},
		{name: "one over a page", total: 21, limit: 20, expected: 2},
		{name: "single room", total: 1, limit: 20, expected: 1},
		{name: "exact page", total: 20, limit: 20, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := shared.CalculateTotalPage(tt.total, tt.limit); result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	first := url.Values{}
	first.Set("min_price", "3050")
	first.Set("page", "2")

	second := url.Values{}
	second.Set("page", "2")
	second.Set("min_price", "3050")

	keyA := shared.BuildCacheKeyWithQuery(first, constant.CacheKeyRooms, "list")
	keyB := shared.BuildCacheKeyWithQuery(second, constant.CacheKeyRooms, "list")

	if keyA != keyB {
		t.Errorf("expected equal keys, got %s and %s", keyA, keyB)
	}
	if keyA != "rooms:list:min_price=3050&page=2" {
		t.Errorf("unexpected key %s", keyA)
	}

	if key := shared.BuildCacheKeyWithQuery(url.Values{}, constant.CacheKeyRooms, "list"); key != "rooms:list" {
		t.Errorf("expected key without query, got %s", key)
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	ctx := context.Background()

	mockCache.EXPECT().Clear(ctx, "rooms:*").Return(errors.New("redis down"))
	mockCache.EXPECT().Clear(ctx, "dashboard:*").Return(nil)

	shared.InvalidateCaches(ctx, mockCache, constant.CacheKeyRooms, "dashboard")
}

func TestAuditFields(t *testing.T) {
	fields := shared.AuditFields("alice")

	if fields[constant.FieldModifiedBy] != "alice" {
		t.Errorf("expected modified_by to be alice, got %v", fields[constant.FieldModifiedBy])
	}
	if _, ok := fields[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(5, "room_id", "rooms")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "room_id", Value: 5, Operator: dto.FilterOperatorEq, Table: "rooms"},
		},
		Operator: dto.FilterGroupOperatorAnd,
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}

	where, args := result.GetWhereClause()
	if where != "(rooms.room_id = :room_id)" {
		t.Errorf("unexpected where clause %s", where)
	}
	if args["room_id"] != 5 {
		t.Errorf("expected room_id arg 5, got %v", args["room_id"])
	}
}

func intPtr(i int) *int {
	return &i
}
