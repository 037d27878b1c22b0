package actionlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/RentalBookingService/internal/domain"
	"github.com/m04kA/RentalBookingService/pkg/dbmetrics"
	"github.com/m04kA/RentalBookingService/pkg/psqlbuilder"
)

// Repository журнал действий над бронированиями (только запись)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала действий
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert добавляет запись в журнал
func (r *Repository) Insert(ctx context.Context, entry *domain.ActionLog) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	details, err := json.Marshal(entry.Details)
	if err != nil {
		return fmt.Errorf("%w: Insert: %v", ErrMarshalDetails, err)
	}

	query, args, err := psqlbuilder.Insert("action_logs").
		Columns("actor", "action", "booking_id", "booking_code", "details").
		Values(entry.Actor, entry.Action, entry.BookingID, entry.BookingCode, string(details)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return fmt.Errorf("%w: Insert - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}
