package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/RentalBookingService/internal/domain"
	bookingRepo "github.com/m04kA/RentalBookingService/internal/infra/storage/booking"
	"github.com/m04kA/RentalBookingService/internal/service/bookings/models"
)

// paymentRefPrefix префикс ссылки на (имитированный) платеж
const paymentRefPrefix = "PAY-"

// Service сервис чтения бронирований и простых операций над ними:
// публичный просмотр с маскированием, поиск по телефону, админский список, оплата
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	events       EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	events EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		events:       events,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByCode получает бронирование по коду для публичной части.
// Данные клиента маскируются.
func (s *Service) GetByCode(ctx context.Context, code string) (*models.BookingResponse, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: booking code is required", ErrInvalidInput)
	}

	s.logger.Info("GetByCode: fetching booking code=%s", code)

	booking, err := s.bookingRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByCode: booking code=%s not found", code)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(MaskBooking(booking)), nil
}

// LookupByPhone ищет бронирования по точному совпадению нормализованного телефона.
// Если ничего не найдено, возвращается пустой список, а не ошибка.
func (s *Service) LookupByPhone(ctx context.Context, phone string) (*models.BookingListResponse, error) {
	normalized := domain.NormalizePhone(phone)
	if len(normalized) < domain.MinPhoneDigits || len(normalized) > domain.MaxPhoneDigits {
		return nil, fmt.Errorf("%w: phone must contain %d-%d digits", ErrInvalidInput, domain.MinPhoneDigits, domain.MaxPhoneDigits)
	}

	bookings, err := s.bookingRepo.ListByPhone(ctx, normalized)
	if err != nil {
		s.logger.Error("LookupByPhone: repository error: %v", err)
		return nil, fmt.Errorf("%w: LookupByPhone - repository error: %v", ErrInternal, err)
	}

	// Сам телефон в лог не пишем
	s.logger.Info("LookupByPhone: found %d bookings for phone %s", len(bookings), MaskPhone(normalized))

	masked := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		masked = append(masked, MaskBooking(b))
	}
	return models.FromDomainBookingList(masked), nil
}

// GetAdminBookings получает страницу бронирований для админки без маскирования
func (s *Service) GetAdminBookings(ctx context.Context, req *models.AdminBookingsRequest) (*models.AdminBookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAdminBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	logMsg := fmt.Sprintf("GetAdminBookings: page=%d, pageSize=%d", filter.Page, filter.PageSize)
	if filter.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *filter.Status)
	}
	if filter.VehicleID != nil {
		logMsg += fmt.Sprintf(", vehicle=%d", *filter.VehicleID)
	}
	if filter.UnreadOnly {
		logMsg += ", unread=true"
	}
	s.logger.Info(logMsg)

	bookings, total, err := s.bookingRepo.ListAdmin(ctx, filter)
	if err != nil {
		s.logger.Error("GetAdminBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAdminBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAdminBookings: fetched %d of %d bookings", len(bookings), total)
	return models.FromDomainAdminPage(bookings, total, filter), nil
}

// GetByID получает бронирование для админки без маскирования
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAdminBooking(booking), nil
}

// Pay имитирует оплату: UNPAID -> PAID с отметкой времени и ссылкой на платеж.
// Оплатить можно только бронирование в статусе RESERVED или ACTIVE.
func (s *Service) Pay(ctx context.Context, code string) (*models.BookingResponse, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: booking code is required", ErrInvalidInput)
	}

	s.logger.Info("Pay: paying booking code=%s", code)

	var paid *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Блокируем строку, чтобы статус не изменился до оплаты
		booking, err := s.bookingRepo.GetByCodeForUpdate(txCtx, code)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Pay - get booking: %v", ErrInternal, err)
		}

		// 2. Предусловия
		if booking.IsPaid() {
			return ErrAlreadyPaid
		}
		if !booking.CanBePaid() {
			return fmt.Errorf("%w: status %s", ErrNotPayable, booking.Status)
		}

		// 3. Условное обновление исключает двойную оплату
		ref := paymentRefPrefix + uuid.NewString()
		paidAt := s.timeProvider.Now().UTC()
		if err := s.bookingRepo.MarkPaid(txCtx, booking.ID, ref, paidAt); err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrAlreadyPaid):
				return ErrAlreadyPaid
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Pay - mark paid: %v", ErrInternal, err)
		}

		booking.PaymentStatus = domain.PaymentPaid
		booking.PaymentRef = &ref
		booking.PaidAt = &paidAt
		paid = booking
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrAlreadyPaid), errors.Is(err, ErrNotPayable):
			s.logger.Warn("Pay: booking code=%s: %v", code, err)
			return nil, err
		case errors.Is(err, ErrInternal):
			s.logger.Error("Pay: booking code=%s: %v", code, err)
			return nil, err
		}
		s.logger.Error("Pay: transaction failed for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: Pay - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("Pay: booking %s paid, ref=%s", paid.Code, *paid.PaymentRef)

	s.events.Publish(ctx, domain.BookingEvent{
		Type:    domain.EventBookingPaid,
		Booking: paid,
		Audit:   domain.AuditBookingPaid,
		Details: map[string]string{
			"paymentRef": *paid.PaymentRef,
			"amount":     paid.TotalPrice.StringFixed(domain.PriceDecimalPlaces),
		},
	})

	return models.FromDomainBooking(MaskBooking(paid)), nil
}

// MarkRead отмечает бронирование прочитанным во входящих админки
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	if err := s.bookingRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("MarkRead: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("MarkRead: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkRead: booking id=%d marked as read", id)
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
