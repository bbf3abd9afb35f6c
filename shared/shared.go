package shared

import (
	"context"
	"math"
	"net/url"
	"pgsystem/shared/cache"
	"pgsystem/shared/constant"
	"pgsystem/shared/dto"
	"pgsystem/shared/timezone"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// ConvertStringToInt returns nil for empty or non-numeric input.
func ConvertStringToInt(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("ignoring non-numeric parameter")

		return nil
	}

	return &intValue
}

// CalculateTotalPage returns ceil(total/limit), zero when nothing matched.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 {
		return 0
	}

	if limit <= 0 {
		return 1
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

// BuildCacheKeyWithQuery appends the encoded query so equal filters share a key regardless of order.
func BuildCacheKeyWithQuery(query url.Values, parts ...string) string {
	key := BuildCacheKey(parts...)

	if encoded := query.Encode(); encoded != "" {
		key = BuildCacheKey(key, encoded)
	}

	return key
}

// InvalidateCaches clears every key under each prefix. Failures are logged and skipped.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefixes ...string) {
	for _, prefix := range prefixes {
		pattern := BuildCacheKey(prefix, constant.Asterix)

		if err := redisCache.Clear(ctx, pattern); err != nil {
			log.Warn().Err(err).Str("pattern", pattern).Msg("failed to invalidate cache")
		}
	}
}

// AuditFields returns the modified_* columns for an update issued by actor.
func AuditFields(actor string) map[string]any {
	return map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
		Operator: dto.FilterGroupOperatorAnd,
	}
}

// UsernameFromContext returns the user the API auth middleware attached to ctx.
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	return username
}
