package create_manual_booking

import (
	"net/http"

	"github.com/m04kA/RentalBookingService/internal/api/handlers"
	createBookingHandler "github.com/m04kA/RentalBookingService/internal/api/handlers/create_booking"
	"github.com/m04kA/RentalBookingService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
)

type Handler struct {
	useCase ManualBookingUseCase
	logger  Logger
}

func NewHandler(useCase ManualBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActor(r.Context())

	var req createBookingHandler.CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings - Invalid request body: actor=%s, error=%v", actor, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	useCaseReq.Actor = actor

	result, err := h.useCase.ExecuteManual(r.Context(), useCaseReq)
	if err != nil {
		if status, msg, ok := createBookingHandler.MapError(err); ok {
			h.logger.Warn("POST /admin/bookings - Rejected: actor=%s, vehicle_id=%d, error=%v", actor, req.VehicleID, err)
			handlers.RespondError(w, status, msg)
			return
		}
		h.logger.Error("POST /admin/bookings - Failed to create booking: actor=%s, vehicle_id=%d, error=%v",
			actor, req.VehicleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/bookings - Manual booking created: code=%s, actor=%s", result.Booking.Code, actor)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
