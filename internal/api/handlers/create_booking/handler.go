package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/RentalBookingService/internal/api/handlers"
	"github.com/m04kA/RentalBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/RentalBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgVehicleNotFound     = "автомобиль не найден"
	msgBranchNotFound      = "филиал не найден"
	msgVehicleUnavailable  = "автомобиль недоступен для бронирования"
	msgInvalidDates        = "дата возврата должна быть позже даты выдачи"
	msgPickupInPast        = "дата выдачи в прошлом"
	msgRentalTooLong       = "слишком длинный срок аренды"
	msgInvalidCustomer     = "некорректные данные клиента"
	msgInvalidInput        = "некорректные данные запроса"
	msgVehicleAlreadyTaken = "автомобиль уже забронирован на эти даты"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Пользователь витрины необязателен
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		useCaseReq.UserID = &userID
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if status, msg, ok := MapError(err); ok {
			h.logger.Warn("POST /bookings - Rejected: vehicle_id=%d, error=%v", req.VehicleID, err)
			handlers.RespondError(w, status, msg)
			return
		}
		h.logger.Error("POST /bookings - Failed to create booking: vehicle_id=%d, error=%v", req.VehicleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: code=%s, vehicle_id=%d",
		result.Booking.Code, result.Booking.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// MapError статус и сообщение для известных ошибок use case.
// Используется и ручным бронированием в админке.
func MapError(err error) (int, string, bool) {
	switch {
	case errors.Is(err, createBooking.ErrOverlap):
		return http.StatusConflict, msgVehicleAlreadyTaken, true
	case errors.Is(err, createBooking.ErrVehicleNotFound):
		return http.StatusNotFound, msgVehicleNotFound, true
	case errors.Is(err, createBooking.ErrBranchNotFound):
		return http.StatusNotFound, msgBranchNotFound, true
	case errors.Is(err, createBooking.ErrVehicleUnavailable):
		return http.StatusBadRequest, msgVehicleUnavailable, true
	case errors.Is(err, createBooking.ErrInvalidDates):
		return http.StatusBadRequest, msgInvalidDates, true
	case errors.Is(err, createBooking.ErrPickupInPast):
		return http.StatusBadRequest, msgPickupInPast, true
	case errors.Is(err, createBooking.ErrRentalTooLong):
		return http.StatusBadRequest, msgRentalTooLong, true
	case errors.Is(err, createBooking.ErrInvalidCustomer):
		return http.StatusBadRequest, msgInvalidCustomer, true
	case errors.Is(err, createBooking.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidInput, true
	}
	return 0, "", false
}
