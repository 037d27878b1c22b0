package update_booking_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/RentalBookingService/internal/api/handlers"
	"github.com/m04kA/RentalBookingService/internal/api/middleware"
	updateBookingDates "github.com/m04kA/RentalBookingService/internal/usecase/update_booking_dates"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgNotFound           = "бронирование не найдено"
	msgNotEditable        = "даты бронирования нельзя изменить в текущем статусе"
	msgInvalidDates       = "дата возврата должна быть позже даты выдачи"
	msgRentalTooLong      = "слишком длинный срок аренды"
	msgInvalidInput       = "укажите pickupDate или dropoffDate"
	msgOverlap            = "автомобиль уже забронирован на эти даты"
)

type Handler struct {
	useCase UpdateBookingDatesUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{id}/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/dates - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor, _ := middleware.GetActor(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(bookingID, actor)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/dates - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBookingDates.ErrOverlap):
			h.logger.Warn("PATCH /admin/bookings/{id}/dates - Overlap: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgOverlap)

		case errors.Is(err, updateBookingDates.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/dates - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBookingDates.ErrNotEditable):
			h.logger.Warn("PATCH /admin/bookings/{id}/dates - Not editable: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgNotEditable)

		case errors.Is(err, updateBookingDates.ErrInvalidDates):
			h.logger.Warn("PATCH /admin/bookings/{id}/dates - Invalid dates: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, updateBookingDates.ErrRentalTooLong):
			h.logger.Warn("PATCH /admin/bookings/{id}/dates - Rental too long: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgRentalTooLong)

		case errors.Is(err, updateBookingDates.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id}/dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/dates - Failed to update dates: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /admin/bookings/{id}/dates - Dates updated: booking_id=%d, days=%d, total=%s, actor=%s",
		bookingID, response.Days, response.Booking.TotalPrice, actor)
	handlers.RespondJSON(w, http.StatusOK, response)
}
