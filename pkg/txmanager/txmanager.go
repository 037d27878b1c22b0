package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/RentalBookingService/pkg/dbmetrics"
	"github.com/m04kA/RentalBookingService/pkg/pgerr"
)

// ErrTransaction возвращается при ошибках открытия или фиксации транзакции
var ErrTransaction = errors.New("txmanager: transaction error")

// DefaultMaxRetries сколько раз повторяется транзакция после конфликта сериализации
const DefaultMaxRetries = 1

// TxBeginner источник транзакций (реализуется *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// RetryObserver получатель событий о повторе транзакции
type RetryObserver interface {
	IncTransactionRetry(isolation string)
}

// Manager управляет транзакциями и кладёт их в контекст для репозиториев
type Manager struct {
	db         TxBeginner
	maxRetries int
	observer   RetryObserver
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *Manager {
	return &Manager{db: db, maxRetries: DefaultMaxRetries}
}

// WithRetryObserver подключает счетчик повторов транзакций
func (m *Manager) WithRetryObserver(observer RetryObserver) *Manager {
	m.observer = observer
	return m
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию (read committed)
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции.
// Конфликт сериализации или deadlock повторяется прозрачно (не более maxRetries раз),
// бизнес-ошибки fn возвращаются как есть и не повторяются.
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if err == nil || !pgerr.IsRetryable(err) {
			return err
		}
		// Вложенную транзакцию повторяет только внешний вызов
		if dbmetrics.IsInTransaction(ctx) {
			return err
		}
		if m.observer != nil {
			m.observer.IncTransactionRetry("serializable")
		}
	}

	return fmt.Errorf("%w: retries exhausted: %w", ErrTransaction, err)
}

func (m *Manager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Уже внутри транзакции - переиспользуем её
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrTransaction, err)
	}

	return nil
}
