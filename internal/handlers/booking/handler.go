package booking

import (
	"fmt"
	"net/http"
	"pgsystem/infras/otel"
	"pgsystem/internal/domains/booking/model/dto"
	"pgsystem/internal/domains/booking/service"
	"pgsystem/shared"
	"pgsystem/shared/constant"
	"pgsystem/shared/failure"
	"pgsystem/shared/validator"
	"pgsystem/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/rooms/{id}/book", handler.BookRoom)
	router.Post("/rooms/{id}/cancel", handler.CancelBooking)
}

// BookRoom books a free room for the caller.
// @Summary Book a room
// @Description Book a free room for a date. Booking a booked room fails without touching the existing booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path integer true "Room ID"
// @Param request body dto.BookRequest true "Book Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Room booked"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/book [post]
// @Security BearerAuth
func (handler *Handler) BookRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	id := shared.ConvertStringToInt(chi.URLParam(request, constant.RequestParamID))
	if id == nil {
		response.WithError(writer, failure.RoomNotFoundError)

		return
	}

	req := dto.BookRequest{RoomID: *id}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	username := shared.UsernameFromContext(ctx)

	res, err := handler.service.Book(ctx, req, username)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("room_id", req.RoomID).Msg("failed to book room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room booked successfully by user " + username)

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelBooking releases a room.
// @Summary Cancel a booking
// @Description Release a booked room. Cancelling a free room succeeds and changes nothing.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path integer true "Room ID"
// @Success 200 {object} response.Message "Booking canceled"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := shared.ConvertStringToInt(chi.URLParam(request, constant.RequestParamID))
	if id == nil {
		response.WithError(writer, failure.RoomNotFoundError)

		return
	}

	username := shared.UsernameFromContext(ctx)

	if err := handler.service.Cancel(ctx, *id, username); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("room_id", *id).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking canceled by user " + username)

	response.WithMessage(writer, http.StatusOK, fmt.Sprintf("Booking for Room %d canceled", *id))
}
