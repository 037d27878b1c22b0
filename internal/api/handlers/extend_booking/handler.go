package extend_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/RentalBookingService/internal/api/handlers"
	extendBooking "github.com/m04kA/RentalBookingService/internal/usecase/extend_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgNotFound           = "бронирование не найдено"
	msgNotExtendable      = "бронирование нельзя продлить в текущем статусе"
	msgInvalidDates       = "новая дата возврата должна быть позже текущей"
	msgRentalTooLong      = "слишком длинный срок аренды"
	msgInvalidInput       = "некорректные данные запроса"
	msgOverlap            = "автомобиль уже забронирован на эти даты"
)

type Handler struct {
	useCase ExtendBookingUseCase
	logger  Logger
}

func NewHandler(useCase ExtendBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{code}/extend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req ExtendBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{code}/extend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(code)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{code}/extend - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, extendBooking.ErrOverlap):
			h.logger.Warn("PATCH /bookings/{code}/extend - Overlap: code=%s", code)
			handlers.RespondConflict(w, msgOverlap)

		case errors.Is(err, extendBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{code}/extend - Booking not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, extendBooking.ErrNotExtendable):
			h.logger.Warn("PATCH /bookings/{code}/extend - Not extendable: code=%s, error=%v", code, err)
			handlers.RespondBadRequest(w, msgNotExtendable)

		case errors.Is(err, extendBooking.ErrInvalidDates):
			h.logger.Warn("PATCH /bookings/{code}/extend - Invalid dates: code=%s, error=%v", code, err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, extendBooking.ErrRentalTooLong):
			h.logger.Warn("PATCH /bookings/{code}/extend - Rental too long: code=%s", code)
			handlers.RespondBadRequest(w, msgRentalTooLong)

		case errors.Is(err, extendBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{code}/extend - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{code}/extend - Failed to extend booking: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /bookings/{code}/extend - Booking extended: code=%s, added_days=%d, added_price=%s",
		response.Booking.BookingCode, response.AddedDays, response.AddedPrice)
	handlers.RespondJSON(w, http.StatusOK, response)
}
