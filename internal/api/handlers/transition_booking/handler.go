package transition_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/RentalBookingService/internal/api/handlers"
	"github.com/m04kA/RentalBookingService/internal/api/middleware"
	"github.com/m04kA/RentalBookingService/internal/domain"
	"github.com/m04kA/RentalBookingService/internal/service/bookings/models"
	transitionBooking "github.com/m04kA/RentalBookingService/internal/usecase/transition_booking"
)

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgInvalidAction     = "неизвестное действие"
	msgNotFound          = "бронирование не найдено"
	msgIllegalTransition = "действие недопустимо для текущего статуса бронирования"
	msgStatusChanged     = "статус бронирования изменился, обновите данные"
)

type Handler struct {
	useCase TransitionBookingUseCase
	logger  Logger
}

func NewHandler(useCase TransitionBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{id}/{action}, action: start, cancel, complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/{action} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	action, err := domain.ParseAction(mux.Vars(r)["action"])
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/{action} - Invalid action: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	actor, _ := middleware.GetActor(r.Context())

	result, err := h.useCase.Execute(r.Context(), &transitionBooking.Request{
		BookingID: bookingID,
		Action:    action,
		Actor:     actor,
	})
	if err != nil {
		switch {
		case errors.Is(err, transitionBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/%s - Booking not found: booking_id=%d", action, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, transitionBooking.ErrIllegalTransition):
			h.logger.Warn("PATCH /admin/bookings/{id}/%s - Illegal transition: booking_id=%d, error=%v", action, bookingID, err)
			handlers.RespondConflict(w, msgIllegalTransition)

		case errors.Is(err, transitionBooking.ErrStatusChanged):
			h.logger.Warn("PATCH /admin/bookings/{id}/%s - Status changed concurrently: booking_id=%d", action, bookingID)
			handlers.RespondConflict(w, msgStatusChanged)

		case errors.Is(err, transitionBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id}/%s - Invalid input: %v", action, err)
			handlers.RespondBadRequest(w, msgInvalidAction)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/%s - Failed to apply action: booking_id=%d, error=%v",
				action, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/%s - Booking %s is now %s, actor=%s",
		action, result.Booking.Code, result.Booking.Status, actor)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAdminBooking(result.Booking))
}
