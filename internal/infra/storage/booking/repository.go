package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RentalBookingService/internal/domain"
	"github.com/m04kA/RentalBookingService/pkg/dbmetrics"
	"github.com/m04kA/RentalBookingService/pkg/pgerr"
	"github.com/m04kA/RentalBookingService/pkg/psqlbuilder"
)

// vehicleLockNamespace первый ключ pg_advisory_xact_lock, отделяет блокировки автомобилей
// от других advisory-блокировок в той же базе
const vehicleLockNamespace = 7301

const table = "bookings"

var columns = []string{
	"id",
	"code",
	"vehicle_id",
	"pickup_branch_id",
	"dropoff_branch_id",
	"user_id",
	"pickup_date",
	"dropoff_date",
	"original_dropoff_date",
	"total_price",
	"payment_status",
	"payment_ref",
	"paid_at",
	"status",
	"source",
	"customer_first_name",
	"customer_last_name",
	"customer_phone",
	"customer_email",
	"customer_driver_license",
	"customer_national_id",
	"admin_read",
	"started_at",
	"completed_at",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockVehicle берет транзакционную advisory-блокировку автомобиля.
// Блокировка снимается при commit/rollback; разные автомобили друг другу не мешают.
func (r *Repository) LockVehicle(ctx context.Context, vehicleID int64) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: LockVehicle", ErrTransactionRequired)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(?, ?)", vehicleLockNamespace, vehicleID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockVehicle - build query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LockVehicle - execute: %w", ErrExecQuery, err)
	}

	return nil
}

// Create создает новое бронирование.
// Пересечение с другим бронированием, пойманное EXCLUDE ограничением, возвращается как ErrOverlap.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"code",
			"vehicle_id",
			"pickup_branch_id",
			"dropoff_branch_id",
			"user_id",
			"pickup_date",
			"dropoff_date",
			"total_price",
			"payment_status",
			"status",
			"source",
			"customer_first_name",
			"customer_last_name",
			"customer_phone",
			"customer_email",
			"customer_driver_license",
			"customer_national_id",
			"admin_read",
		).
		Values(
			booking.Code,
			booking.VehicleID,
			booking.PickupBranchID,
			booking.DropoffBranchID,
			booking.UserID,
			booking.PickupDate,
			booking.DropoffDate,
			booking.TotalPrice,
			booking.PaymentStatus,
			booking.Status,
			booking.Source,
			booking.Customer.FirstName,
			booking.Customer.LastName,
			booking.Customer.Phone,
			booking.Customer.Email,
			booking.Customer.DriverLicense,
			booking.Customer.NationalID,
			booking.AdminRead,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	switch {
	case pgerr.IsExclusionViolation(err):
		return nil, fmt.Errorf("%w: Create - vehicle %d: %v", ErrOverlap, booking.VehicleID, err)
	case pgerr.IsUniqueViolation(err):
		return nil, fmt.Errorf("%w: Create - code %s: %v", ErrDuplicateCode, booking.Code, err)
	case err != nil:
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// ExistsCode проверяет, занят ли код бронирования
func (r *Repository) ExistsCode(ctx context.Context, code string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{"code": code}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsCode - build query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsCode - scan: %w", ErrScanRow, err)
	}

	return exists, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id}, false)
}

// GetByIDForUpdate получает бронирование по ID с блокировкой строки (только внутри транзакции)
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByIDForUpdate", squirrel.Eq{"id": id}, true)
}

// GetByCode получает бронирование по коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByCode", squirrel.Eq{"code": code}, false)
}

// GetByCodeForUpdate получает бронирование по коду с блокировкой строки (только внутри транзакции)
func (r *Repository) GetByCodeForUpdate(ctx context.Context, code string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByCodeForUpdate", squirrel.Eq{"code": code}, true)
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer, forUpdate bool) (*domain.Booking, error) {
	if forUpdate && !dbmetrics.IsInTransaction(ctx) {
		return nil, fmt.Errorf("%w: %s", ErrTransactionRequired, op)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(where)
	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %w", ErrScanRow, op, err)
	}

	return booking, nil
}

// FindOverlapping возвращает неотмененные бронирования автомобиля, пересекающие период [Start, End).
// excludeID исключает само бронирование при продлении или переносе дат.
// Используется и для проверки внутри транзакции, и для построения календаря.
func (r *Repository) FindOverlapping(ctx context.Context, vehicleID int64, period domain.DateRange, excludeID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		Where(squirrel.NotEq{"status": statusStrings(domain.InactiveStatuses)}).
		// p1 < d2 AND d1 > p2: полуинтервалы, стыковка в один день не пересечение
		Where(squirrel.Lt{"pickup_date": period.End}).
		Where(squirrel.Gt{"dropoff_date": period.Start}).
		OrderBy("pickup_date ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListByPhone возвращает бронирования по точному совпадению нормализованного телефона
func (r *Repository) ListByPhone(ctx context.Context, phone string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"customer_phone": phone}).
		OrderBy("pickup_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListAdmin возвращает страницу бронирований для админки и общее количество по фильтру
func (r *Repository) ListAdmin(ctx context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where := adminWhere(filter)

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListAdmin - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListAdmin - count: %w", ErrScanRow, err)
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		OrderBy("pickup_date DESC", "id DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListAdmin - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListAdmin - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func adminWhere(filter domain.AdminBookingsFilter) squirrel.And {
	where := squirrel.And{}

	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": *filter.Status})
	}
	if filter.PaymentStatus != nil {
		where = append(where, squirrel.Eq{"payment_status": *filter.PaymentStatus})
	}
	if filter.VehicleID != nil {
		where = append(where, squirrel.Eq{"vehicle_id": *filter.VehicleID})
	}
	// Период фильтра тоже полуинтервал: бронирование попадает, если пересекает [From, To)
	if filter.From != nil {
		where = append(where, squirrel.Gt{"dropoff_date": *filter.From})
	}
	if filter.To != nil {
		where = append(where, squirrel.Lt{"pickup_date": *filter.To})
	}
	if filter.Phone != nil {
		where = append(where, squirrel.Eq{"customer_phone": *filter.Phone})
	}
	if filter.UnreadOnly {
		where = append(where, squirrel.Eq{"admin_read": false})
	}

	return where
}

// UpdateDates сохраняет новые даты и цену бронирования (продление или перенос админом).
// Обновление условное: строка должна быть в продлеваемом статусе.
func (r *Repository) UpdateDates(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("pickup_date", booking.PickupDate).
		Set("dropoff_date", booking.DropoffDate).
		Set("original_dropoff_date", booking.OriginalDropoffDate).
		Set("total_price", booking.TotalPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Where(squirrel.Eq{"status": []string{string(domain.StatusReserved), string(domain.StatusActive)}}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateDates - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return r.missOrMismatch(ctx, "UpdateDates", booking.ID, ErrStatusMismatch)
	case pgerr.IsExclusionViolation(err):
		return fmt.Errorf("%w: UpdateDates - booking %d: %v", ErrOverlap, booking.ID, err)
	case err != nil:
		return fmt.Errorf("%w: UpdateDates - execute update: %w", ErrExecQuery, err)
	}

	return nil
}

// UpdateStatus атомарно меняет статус: UPDATE ... WHERE id = ? AND status = from.
// Вместе со статусом проставляется соответствующая отметка времени.
// Если строка есть, но статус уже другой, возвращается ErrStatusMismatch.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(table).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		Suffix("RETURNING updated_at")

	if column := transitionColumn(to); column != "" {
		updateBuilder = updateBuilder.Set(column, squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt time.Time
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, r.missOrMismatch(ctx, "UpdateStatus", id, ErrStatusMismatch)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	return updatedAt, nil
}

// MarkPaid переводит оплату UNPAID -> PAID. Условие по payment_status исключает двойную оплату.
func (r *Repository) MarkPaid(ctx context.Context, id int64, paymentRef string, paidAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("payment_status", domain.PaymentPaid).
		Set("payment_ref", paymentRef).
		Set("paid_at", paidAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"payment_status": domain.PaymentUnpaid}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return r.missOrMismatch(ctx, "MarkPaid", id, ErrAlreadyPaid)
	}

	return nil
}

// MarkRead отмечает бронирование прочитанным в админке
func (r *Repository) MarkRead(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("admin_read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// missOrMismatch различает "строки нет" и "строка есть, но условие не выполнено"
func (r *Repository) missOrMismatch(ctx context.Context, op string, id int64, mismatch error) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build exists query: %v", ErrBuildQuery, op, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return fmt.Errorf("%w: %s - scan exists: %w", ErrScanRow, op, err)
	}

	if !exists {
		return ErrBookingNotFound
	}
	return fmt.Errorf("%w: %s - booking %d", mismatch, op, id)
}

func transitionColumn(to domain.BookingStatus) string {
	switch to {
	case domain.StatusActive:
		return "started_at"
	case domain.StatusCompleted:
		return "completed_at"
	case domain.StatusCancelled:
		return "cancelled_at"
	}
	return ""
}

func statusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Code,
		&booking.VehicleID,
		&booking.PickupBranchID,
		&booking.DropoffBranchID,
		&booking.UserID,
		&booking.PickupDate,
		&booking.DropoffDate,
		&booking.OriginalDropoffDate,
		&booking.TotalPrice,
		&booking.PaymentStatus,
		&booking.PaymentRef,
		&booking.PaidAt,
		&booking.Status,
		&booking.Source,
		&booking.Customer.FirstName,
		&booking.Customer.LastName,
		&booking.Customer.Phone,
		&booking.Customer.Email,
		&booking.Customer.DriverLicense,
		&booking.Customer.NationalID,
		&booking.AdminRead,
		&booking.StartedAt,
		&booking.CompletedAt,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
