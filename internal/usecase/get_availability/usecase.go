package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RentalBookingService/internal/domain"
	vehicleRepo "github.com/m04kA/RentalBookingService/internal/infra/storage/vehicle"
	"github.com/m04kA/RentalBookingService/pkg/types"
)

// UseCase календарь доступности автомобиля.
// Только чтение: результат не является гарантией, авторитетная проверка делается при бронировании.
type UseCase struct {
	bookingRepo BookingRepository
	vehicleRepo VehicleRepository
	cache       CalendarCache
	metrics     Metrics
	maxDays     int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case. cache и metrics могут быть nil.
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	cache CalendarCache,
	metrics Metrics,
	maxDays int,
	logger Logger,
) *UseCase {
	if maxDays <= 0 {
		maxDays = domain.DefaultMaxCalendarDays
	}
	return &UseCase{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		cache:       cache,
		metrics:     metrics,
		maxDays:     maxDays,
		logger:      logger,
	}
}

// Execute выполняет use case получения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: vehicle=%d, from=%s, to=%s",
		req.VehicleID, types.FormatDate(req.From), types.FormatDate(req.To))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxDays); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}
	from, to := types.StartOfDay(req.From), types.StartOfDay(req.To)

	// 2. Автомобиль должен существовать: неизвестный id не равен пустому календарю
	if _, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("GetAvailability: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("GetAvailability: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	response := &Response{VehicleID: req.VehicleID, From: from, To: to}

	// 3. Пробуем кэш; ошибки кэша не ломают запрос
	var cacheKey string
	if uc.cache != nil {
		lookup, err := uc.cache.Get(ctx, req.VehicleID, from, to)
		if err != nil {
			uc.logger.Warn("GetAvailability: cache read failed, falling back to db: %v", err)
		}
		if lookup.Hit {
			uc.observeCache("hit")
			response.Days = lookup.Days
			response.Cached = true
			return response, nil
		}
		uc.observeCache("miss")
		cacheKey = lookup.Key
	}

	// 4. Читаем бронирования, пересекающие период
	bookings, err := uc.bookingRepo.FindOverlapping(ctx, req.VehicleID, domain.DateRange{Start: from, End: to}, nil)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Строим календарь
	response.Days = buildCalendar(from, to, bookings)

	// 6. Сохраняем в кэш
	if uc.cache != nil && cacheKey != "" {
		if err := uc.cache.Set(ctx, cacheKey, response.Days); err != nil {
			uc.logger.Warn("GetAvailability: cache write failed: %v", err)
		}
	}

	uc.logger.Info("GetAvailability: vehicle=%d, %d days, %d bookings in range",
		req.VehicleID, len(response.Days), len(bookings))

	return response, nil
}

func (uc *UseCase) observeCache(result string) {
	if uc.metrics != nil {
		uc.metrics.IncCalendarCache(result)
	}
}
