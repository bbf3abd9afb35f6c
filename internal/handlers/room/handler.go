package room

import (
	"net/http"
	"pgsystem/infras/otel"
	"pgsystem/internal/domains/room/model/dto"
	"pgsystem/internal/domains/room/service"
	"pgsystem/shared"
	"pgsystem/shared/constant"
	gDto "pgsystem/shared/dto"
	"pgsystem/shared/failure"
	"pgsystem/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers flat routes so the booking handler can share the /rooms prefix.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms", handler.GetRooms)
	router.Get("/rooms/{id}", handler.GetRoomByID)
}

// GetRooms lists one catalog page.
// @Summary List rooms
// @Description Twenty rooms per page ordered by room id, with optional filters.
// @Tags Room
// @Accept json
// @Produce json
// @Param page query integer false "Page number, starting at 1"
// @Param q query string false "Case-insensitive name search"
// @Param min_price query integer false "Minimum price, inclusive"
// @Param max_price query integer false "Maximum price, inclusive"
// @Param min_rating query integer false "Minimum rating"
// @Success 200 {object} response.Data[dto.ListRoomsResponse] "Catalog page"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromValues(r.URL.Query())

	filter := dto.CatalogFilter{}
	filter.FromValues(r.URL.Query())

	rooms, err := handler.service.List(ctx, filter, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room and its booking state.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path integer true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if id == nil {
		response.WithError(w, failure.RoomNotFoundError)

		return
	}

	room, err := handler.service.Get(ctx, *id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}
