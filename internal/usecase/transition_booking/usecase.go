package transition_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/RentalBookingService/internal/domain"
	bookingRepo "github.com/m04kA/RentalBookingService/internal/infra/storage/booking"
)

// UseCase use case смены статуса бронирования (start, cancel, complete)
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

// Execute применяет действие к бронированию.
// Переход выполняется одним условным UPDATE по ожидаемому статусу.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("TransitionBooking: booking id=%d, action=%s, actor=%s", req.BookingID, req.Action, req.Actor)

	var result *domain.Booking
	var from domain.BookingStatus

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Текущее состояние
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("TransitionBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("TransitionBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 3. Проверка по таблице переходов
		from = booking.Status
		to, err := domain.NextStatus(from, req.Action)
		if err != nil {
			uc.logger.Warn("TransitionBooking: %s: %v", booking.Code, err)
			return fmt.Errorf("%w: %s from %s", ErrIllegalTransition, req.Action, from)
		}

		// 4. Условное обновление: статус не должен был измениться с момента чтения
		updatedAt, err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, from, to)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrStatusMismatch):
				uc.logger.Warn("TransitionBooking: %s status changed concurrently", booking.Code)
				return ErrStatusChanged
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			}
			uc.logger.Error("TransitionBooking: failed to update status of %s: %v", booking.Code, err)
			return fmt.Errorf("%w: failed to update status: %w", ErrInternal, err)
		}
		applyTransition(booking, to, updatedAt)

		// 5. Возвращенный автомобиль остается в филиале возврата
		if to == domain.StatusCompleted {
			if err := uc.vehicleRepo.UpdateCurrentBranch(txCtx, booking.VehicleID, booking.DropoffBranchID); err != nil {
				uc.logger.Error("TransitionBooking: failed to move vehicle=%d to branch=%d: %v",
					booking.VehicleID, booking.DropoffBranchID, err)
				return fmt.Errorf("%w: failed to update vehicle branch: %w", ErrInternal, err)
			}
		}

		result = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrStatusChanged) {
			uc.metrics.IncBookingConflict(string(req.Action))
		}
		return nil, classify(err)
	}

	uc.logger.Info("TransitionBooking: %s %s -> %s", result.Code, from, result.Status)
	uc.metrics.IncBookingTransition(string(req.Action))

	// 6. Побочные эффекты после commit (отмена освобождает календарь)
	uc.events.Publish(ctx, domain.BookingEvent{
		Type:    domain.EventTypeFor(req.Action),
		Booking: result,
		Actor:   req.Actor,
		Audit:   domain.AuditActionFor(req.Action),
		Details: map[string]string{
			"from": string(from),
			"to":   string(result.Status),
		},
	})

	return &Response{Booking: result}, nil
}

// applyTransition отражает в модели то, что UPDATE записал в базу
func applyTransition(b *domain.Booking, to domain.BookingStatus, at time.Time) {
	b.Status = to
	b.UpdatedAt = at

	switch to {
	case domain.StatusActive:
		b.StartedAt = &at
	case domain.StatusCompleted:
		b.CompletedAt = &at
	case domain.StatusCancelled:
		b.CancelledAt = &at
	}
}

// classify оставляет бизнес-ошибки как есть, остальное считает внутренней ошибкой
func classify(err error) error {
	for _, known := range []error{
		ErrBookingNotFound,
		ErrIllegalTransition,
		ErrStatusChanged,
		ErrInternal,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
