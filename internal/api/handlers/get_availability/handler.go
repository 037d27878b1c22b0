package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/RentalBookingService/internal/api/handlers"
	"github.com/m04kA/RentalBookingService/internal/domain"
	getAvailability "github.com/m04kA/RentalBookingService/internal/usecase/get_availability"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgMissingRange     = "параметры from и to обязательны"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange     = "дата to должна быть позже from"
	msgRangeTooLong     = "слишком длинный период календаря"
	msgVehicleNotFound  = "автомобиль не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{id}/availability
// Query params: from, to (YYYY-MM-DD, to не включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/availability - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	query := r.URL.Query()
	fromStr, toStr := query.Get("from"), query.Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /vehicles/{id}/availability - Missing range: vehicle_id=%d", vehicleID)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/availability - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/availability - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		VehicleID: vehicleID,
		From:      from,
		To:        to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{id}/availability - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, getAvailability.ErrRangeTooLong):
			h.logger.Warn("GET /vehicles/{id}/availability - Range too long: vehicle_id=%d", vehicleID)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /vehicles/{id}/availability - Failed to build calendar: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id}/availability - Calendar built: vehicle_id=%d, days=%d, cached=%t",
		vehicleID, len(result.Days), result.Cached)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
