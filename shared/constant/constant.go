package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUsername  contextKey = "username"
	ContextKeyTokenID   contextKey = "token_id"
	ContextKeySession   contextKey = "session"
	ContextKeySessionID contextKey = "session_id"
)

const (
	RequestParamPage        = "page"
	RequestParamSearch      = "q"
	RequestParamMinPrice    = "min_price"
	RequestParamMaxPrice    = "max_price"
	RequestParamMinRating   = "min_rating"
	RequestParamRoomID      = "room_id"
	RequestParamBookingDate = "booking_date"
	RequestParamID          = "id"
)

const (
	DefaultValuePage     = 1
	DefaultValuePageSize = 20
	DefaultValueSortBy   = "room_id"
	DefaultValueSortDir  = "ASC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat        = time.RFC3339
	BookingDateFormat = "2006-01-02"
)

const (
	MinutesToSeconds = 60
)

const (
	CatalogSize   = 100
	SystemUser    = "system"
	CacheKeyRooms = "rooms"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderReferer            = "Referer"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeHTML           = "text/html; charset=utf-8"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	EventsDriverKafka    = "kafka"
	EventsDriverRabbitMQ = "rabbitmq"
	EventsDriverNone     = "none"

	EventTypeRoomBooked   = "room.booked"
	EventTypeRoomCanceled = "room.cancelled"
)

const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashInfo    = "info"
)

const (
	Asterix = "*"
	Empty   = ""
)
