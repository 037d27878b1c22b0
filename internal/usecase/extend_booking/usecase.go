package extend_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/RentalBookingService/internal/domain"
	bookingRepo "github.com/m04kA/RentalBookingService/internal/infra/storage/booking"
	"github.com/m04kA/RentalBookingService/internal/pricing"
)

// UseCase use case продления бронирования (перенос даты возврата на более позднюю)
type UseCase struct {
	bookingRepo BookingRepository
	vehicleRepo VehicleRepository
	txManager   TransactionManager
	events      EventPublisher
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	txManager TransactionManager,
	events EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		txManager:   txManager,
		events:      events,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute продлевает бронирование по коду
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExtendBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ExtendBooking: code=%s, newDropoff=%s", req.Code, req.NewDropoffDate.Format(domain.DateFormat))

	// 2. Определяем автомобиль, чтобы взять его блокировку
	current, err := uc.bookingRepo.GetByCode(ctx, req.Code)
	if err != nil {
		return nil, uc.mapGetError(req.Code, err)
	}

	var result *domain.Booking
	var previousDropoff time.Time
	var addedDays int
	var addedPrice decimal.Decimal

	// 3. Проверка и обновление атомарно, как при создании
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокировка по автомобилю
		if err := uc.bookingRepo.LockVehicle(txCtx, current.VehicleID); err != nil {
			uc.logger.Error("ExtendBooking: failed to lock vehicle=%d: %v", current.VehicleID, err)
			return fmt.Errorf("%w: failed to lock vehicle: %w", ErrInternal, err)
		}

		// 3.2. Перечитываем бронирование под блокировкой
		booking, err := uc.bookingRepo.GetByCodeForUpdate(txCtx, req.Code)
		if err != nil {
			return uc.mapGetError(req.Code, err)
		}

		// 3.3. Предусловия
		if !booking.CanBeExtended() {
			uc.logger.Warn("ExtendBooking: booking %s is %s", booking.Code, booking.Status)
			return fmt.Errorf("%w: status %s", ErrNotExtendable, booking.Status)
		}
		if !req.NewDropoffDate.After(booking.DropoffDate) {
			return fmt.Errorf("%w: current dropoff %s", ErrInvalidDates, booking.DropoffDate.Format(domain.DateFormat))
		}
		if req.NewDropoffDate.Sub(booking.PickupDate) > domain.MaxRentalDays*24*time.Hour {
			return fmt.Errorf("%w: at most %d days", ErrRentalTooLong, domain.MaxRentalDays)
		}

		// 3.4. Расширенный период не должен пересекаться с другими бронированиями
		widened := domain.DateRange{Start: booking.PickupDate, End: req.NewDropoffDate}
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, booking.VehicleID, widened, &booking.ID)
		if err != nil {
			uc.logger.Error("ExtendBooking: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %w", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("ExtendBooking: %s conflicts with %s", booking.Code, overlapping[0].Code)
			return ErrOverlap
		}

		// 3.5. Доплата только за добавленный период
		vehicle, err := uc.vehicleRepo.GetByID(txCtx, booking.VehicleID)
		if err != nil {
			uc.logger.Error("ExtendBooking: failed to get vehicle id=%d: %v", booking.VehicleID, err)
			return fmt.Errorf("%w: failed to get vehicle: %w", ErrInternal, err)
		}
		addedPrice, err = pricing.ExtensionPrice(vehicle.Rates(), booking.DropoffDate, req.NewDropoffDate)
		if err != nil {
			uc.logger.Error("ExtendBooking: failed to calculate price: %v", err)
			return fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
		}
		addedDays = pricing.DayCount(booking.DropoffDate, req.NewDropoffDate)

		// 3.6. Исходная дата возврата сохраняется только при первом продлении
		previousDropoff = booking.DropoffDate
		if booking.OriginalDropoffDate == nil {
			original := booking.DropoffDate
			booking.OriginalDropoffDate = &original
		}
		booking.DropoffDate = req.NewDropoffDate
		booking.TotalPrice = booking.TotalPrice.Add(addedPrice).Round(domain.PriceDecimalPlaces)

		if err := uc.bookingRepo.UpdateDates(txCtx, booking); err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrOverlap):
				return ErrOverlap
			case errors.Is(err, bookingRepo.ErrStatusMismatch):
				return fmt.Errorf("%w: status changed concurrently", ErrNotExtendable)
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			}
			uc.logger.Error("ExtendBooking: failed to update booking %s: %v", booking.Code, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrOverlap) {
			uc.metrics.IncBookingConflict("extend")
		}
		return nil, classify(err)
	}

	uc.logger.Info("ExtendBooking: extended %s to %s, added=%s total=%s",
		result.Code, result.DropoffDate.Format(domain.DateFormat),
		addedPrice.StringFixed(domain.PriceDecimalPlaces), result.TotalPrice.StringFixed(domain.PriceDecimalPlaces))

	// 4. Побочные эффекты после commit
	uc.events.Publish(ctx, domain.BookingEvent{
		Type:    domain.EventBookingExtended,
		Booking: result,
		Audit:   domain.AuditBookingExtended,
		Details: map[string]string{
			"previousDropoffDate": previousDropoff.Format(domain.DateFormat),
			"newDropoffDate":      result.DropoffDate.Format(domain.DateFormat),
			"addedPrice":          addedPrice.StringFixed(domain.PriceDecimalPlaces),
		},
	})

	return &Response{Booking: result, AddedDays: addedDays, AddedPrice: addedPrice}, nil
}

func (uc *UseCase) mapGetError(code string, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		uc.logger.Warn("ExtendBooking: booking %s not found", code)
		return ErrBookingNotFound
	}
	uc.logger.Error("ExtendBooking: failed to get booking %s: %v", code, err)
	return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
}

// classify оставляет бизнес-ошибки как есть, остальное считает внутренней ошибкой
func classify(err error) error {
	for _, known := range []error{
		ErrBookingNotFound,
		ErrNotExtendable,
		ErrInvalidDates,
		ErrRentalTooLong,
		ErrOverlap,
		ErrInternal,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
