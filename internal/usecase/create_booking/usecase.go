package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RentalBookingService/internal/domain"
	bookingRepo "github.com/m04kA/RentalBookingService/internal/infra/storage/booking"
	branchRepo "github.com/m04kA/RentalBookingService/internal/infra/storage/branch"
	vehicleRepo "github.com/m04kA/RentalBookingService/internal/infra/storage/vehicle"
	"github.com/m04kA/RentalBookingService/internal/pricing"
)

// UseCase use case создания бронирования (публичного и ручного)
type UseCase struct {
	bookingRepo  BookingRepository
	vehicleRepo  VehicleRepository
	branchRepo   BranchRepository
	txManager    TransactionManager
	codes        CodeGenerator
	events       EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	branchRepo BranchRepository,
	txManager TransactionManager,
	codes CodeGenerator,
	events EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		vehicleRepo:  vehicleRepo,
		branchRepo:   branchRepo,
		txManager:    txManager,
		codes:        codes,
		events:       events,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает публичное бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	return uc.create(ctx, req, domain.SourcePublic)
}

// ExecuteManual создает бронирование от имени администратора (walk-in клиент).
// Проверка пересечений выполняется так же, как для публичного бронирования.
func (uc *UseCase) ExecuteManual(ctx context.Context, req *Request) (*Response, error) {
	return uc.create(ctx, req, domain.SourceAdmin)
}

func (uc *UseCase) create(ctx context.Context, req *Request, source domain.BookingSource) (*Response, error) {
	req.Customer = req.Customer.Normalize()
	req.PickupDate, req.DropoffDate = req.PickupDate.UTC(), req.DropoffDate.UTC()
	period := domain.DateRange{Start: req.PickupDate, End: req.DropoffDate}

	uc.logger.Info("CreateBooking: source=%s, vehicle=%d, pickup=%s, dropoff=%s",
		source, req.VehicleID, req.PickupDate.Format(domain.DateFormat), req.DropoffDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, source, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking
	var days int

	// 2. Проверка и вставка атомарно: блокировка автомобиля + SERIALIZABLE транзакция
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Блокировка по автомобилю: конкурирующие брони той же машины ждут здесь
		if err := uc.bookingRepo.LockVehicle(txCtx, req.VehicleID); err != nil {
			uc.logger.Error("CreateBooking: failed to lock vehicle=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to lock vehicle: %w", ErrInternal, err)
		}

		// 2.2. Автомобиль существует и не выведен из эксплуатации
		vehicle, err := uc.vehicleRepo.GetByID(txCtx, req.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				uc.logger.Warn("CreateBooking: vehicle id=%d not found", req.VehicleID)
				return ErrVehicleNotFound
			}
			uc.logger.Error("CreateBooking: failed to get vehicle id=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to get vehicle: %w", ErrInternal, err)
		}
		if !vehicle.IsBookable() {
			uc.logger.Warn("CreateBooking: vehicle id=%d is %s", vehicle.ID, vehicle.Status)
			return ErrVehicleUnavailable
		}

		// 2.3. Филиалы выдачи и возврата
		if err := uc.checkBranches(txCtx, req.PickupBranchID, req.DropoffBranchID); err != nil {
			return err
		}

		// 2.4. Повторная проверка пересечений уже под блокировкой
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, req.VehicleID, period, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %w", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: vehicle=%d already booked by %s", req.VehicleID, overlapping[0].Code)
			return ErrOverlap
		}

		// 2.5. Цена
		breakdown, err := pricing.Calculate(vehicle.Rates(), req.PickupDate, req.DropoffDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to calculate price: %v", err)
			return fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
		}
		days = breakdown.Days

		// 2.6. Уникальный код
		code, err := uc.uniqueCode(txCtx)
		if err != nil {
			return err
		}

		// 2.7. Сохраняем бронирование
		booking := &domain.Booking{
			Code:            code,
			VehicleID:       req.VehicleID,
			PickupBranchID:  req.PickupBranchID,
			DropoffBranchID: req.DropoffBranchID,
			UserID:          req.UserID,
			PickupDate:      req.PickupDate,
			DropoffDate:     req.DropoffDate,
			TotalPrice:      breakdown.Total,
			PaymentStatus:   domain.PaymentUnpaid,
			Status:          domain.StatusReserved,
			Source:          source,
			Customer:        req.Customer,
			// Ручные брони создает сам администратор, во входящих они не нужны
			AdminRead: source == domain.SourceAdmin,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrOverlap) {
				uc.logger.Warn("CreateBooking: exclusion constraint rejected vehicle=%d", req.VehicleID)
				return ErrOverlap
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrOverlap) {
			uc.metrics.IncBookingConflict("create")
		}
		return nil, classify(err)
	}

	uc.logger.Info("CreateBooking: created booking id=%d code=%s total=%s",
		result.ID, result.Code, result.TotalPrice.StringFixed(domain.PriceDecimalPlaces))
	uc.metrics.IncBookingCreated(string(source))

	// 3. Побочные эффекты после commit
	event := domain.BookingEvent{
		Type:    domain.EventBookingCreated,
		Booking: result,
		Actor:   req.Actor,
		Audit:   domain.AuditBookingCreated,
		Details: map[string]string{"source": string(source)},
	}
	if source == domain.SourceAdmin {
		event.Audit = domain.AuditBookingCreatedManual
	}
	uc.events.Publish(ctx, event)

	return &Response{Booking: result, Days: days}, nil
}

func (uc *UseCase) checkBranches(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		if _, err := uc.branchRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, branchRepo.ErrBranchNotFound) {
				uc.logger.Warn("CreateBooking: branch id=%d not found", id)
				return ErrBranchNotFound
			}
			uc.logger.Error("CreateBooking: failed to get branch id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to get branch: %w", ErrInternal, err)
		}
	}
	return nil
}

// uniqueCode генерирует код, которого еще нет в базе (несколько попыток)
func (uc *UseCase) uniqueCode(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= domain.MaxBookingCodeAttempts; attempt++ {
		code := uc.codes.Generate()

		exists, err := uc.bookingRepo.ExistsCode(ctx, code)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check code %s: %v", code, err)
			return "", fmt.Errorf("%w: failed to check booking code: %w", ErrInternal, err)
		}
		if !exists {
			return code, nil
		}
		uc.logger.Warn("CreateBooking: code collision %s, attempt %d", code, attempt)
	}

	return "", fmt.Errorf("%w: could not generate unique booking code", ErrInternal)
}

// classify оставляет бизнес-ошибки как есть, остальное считает внутренней ошибкой
func classify(err error) error {
	for _, known := range []error{
		ErrVehicleNotFound,
		ErrBranchNotFound,
		ErrVehicleUnavailable,
		ErrOverlap,
		ErrInternal,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
