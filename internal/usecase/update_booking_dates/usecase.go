package update_booking_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RentalBookingService/internal/domain"
	bookingRepo "github.com/m04kA/RentalBookingService/internal/infra/storage/booking"
	"github.com/m04kA/RentalBookingService/internal/pricing"
)

// UseCase use case переноса дат бронирования администратором
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

// Execute переносит даты бронирования и пересчитывает цену за весь период
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBookingDates: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UpdateBookingDates: booking id=%d, actor=%s", req.BookingID, req.Actor)

	// 2. Определяем автомобиль, чтобы взять его блокировку
	current, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, uc.mapGetError(req.BookingID, err)
	}

	var result *domain.Booking
	var previous domain.DateRange
	var days int

	// 3. Проверка и обновление атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокировка по автомобилю
		if err := uc.bookingRepo.LockVehicle(txCtx, current.VehicleID); err != nil {
			uc.logger.Error("UpdateBookingDates: failed to lock vehicle=%d: %v", current.VehicleID, err)
			return fmt.Errorf("%w: failed to lock vehicle: %w", ErrInternal, err)
		}

		// 3.2. Перечитываем бронирование под блокировкой
		booking, err := uc.bookingRepo.GetByIDForUpdate(txCtx, req.BookingID)
		if err != nil {
			return uc.mapGetError(req.BookingID, err)
		}

		if !booking.CanBeExtended() {
			uc.logger.Warn("UpdateBookingDates: booking %s is %s", booking.Code, booking.Status)
			return fmt.Errorf("%w: status %s", ErrNotEditable, booking.Status)
		}

		// 3.3. Итоговый период
		previous = booking.Range()
		period := previous
		if req.PickupDate != nil {
			period.Start = req.PickupDate.UTC()
		}
		if req.DropoffDate != nil {
			period.End = req.DropoffDate.UTC()
		}
		if err := validateRange(period); err != nil {
			return err
		}

		// 3.4. Тот же контроль пересечений, что и при создании, без самой брони
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, booking.VehicleID, period, &booking.ID)
		if err != nil {
			uc.logger.Error("UpdateBookingDates: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %w", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("UpdateBookingDates: %s conflicts with %s", booking.Code, overlapping[0].Code)
			return ErrOverlap
		}

		// 3.5. Полный пересчет цены
		vehicle, err := uc.vehicleRepo.GetByID(txCtx, booking.VehicleID)
		if err != nil {
			uc.logger.Error("UpdateBookingDates: failed to get vehicle id=%d: %v", booking.VehicleID, err)
			return fmt.Errorf("%w: failed to get vehicle: %w", ErrInternal, err)
		}
		breakdown, err := pricing.Calculate(vehicle.Rates(), period.Start, period.End)
		if err != nil {
			uc.logger.Error("UpdateBookingDates: failed to calculate price: %v", err)
			return fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
		}
		days = breakdown.Days

		// 3.6. Более поздний возврат фиксируется как продление
		if period.End.After(booking.DropoffDate) && booking.OriginalDropoffDate == nil {
			original := booking.DropoffDate
			booking.OriginalDropoffDate = &original
		}
		booking.PickupDate, booking.DropoffDate = period.Start, period.End
		booking.TotalPrice = breakdown.Total

		if err := uc.bookingRepo.UpdateDates(txCtx, booking); err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrOverlap):
				return ErrOverlap
			case errors.Is(err, bookingRepo.ErrStatusMismatch):
				return fmt.Errorf("%w: status changed concurrently", ErrNotEditable)
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBookingDates: failed to update booking %s: %v", booking.Code, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrOverlap) {
			uc.metrics.IncBookingConflict("update_dates")
		}
		return nil, classify(err)
	}

	uc.logger.Info("UpdateBookingDates: booking %s moved to [%s, %s), total=%s",
		result.Code, result.PickupDate.Format(domain.DateFormat), result.DropoffDate.Format(domain.DateFormat),
		result.TotalPrice.StringFixed(domain.PriceDecimalPlaces))

	// 4. Побочные эффекты после commit
	uc.events.Publish(ctx, domain.BookingEvent{
		Type:    domain.EventBookingDatesChanged,
		Booking: result,
		Actor:   req.Actor,
		Audit:   domain.AuditBookingDatesChanged,
		Details: map[string]string{
			"previousPickupDate":  previous.Start.Format(domain.DateFormat),
			"previousDropoffDate": previous.End.Format(domain.DateFormat),
			"pickupDate":          result.PickupDate.Format(domain.DateFormat),
			"dropoffDate":         result.DropoffDate.Format(domain.DateFormat),
			"totalPrice":          result.TotalPrice.StringFixed(domain.PriceDecimalPlaces),
		},
	})

	return &Response{Booking: result, Days: days}, nil
}

func (uc *UseCase) mapGetError(id int64, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		uc.logger.Warn("UpdateBookingDates: booking id=%d not found", id)
		return ErrBookingNotFound
	}
	uc.logger.Error("UpdateBookingDates: failed to get booking id=%d: %v", id, err)
	return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
}

// classify оставляет бизнес-ошибки как есть, остальное считает внутренней ошибкой
func classify(err error) error {
	for _, known := range []error{
		ErrBookingNotFound,
		ErrNotEditable,
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
