package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/RentalBookingService/internal/domain"
	branchRepo "github.com/m04kA/RentalBookingService/internal/infra/storage/branch"
	vehicleRepo "github.com/m04kA/RentalBookingService/internal/infra/storage/vehicle"
)

// memStore хранилище в памяти, повторяющее поведение Postgres для use case:
// транзакция видит только зафиксированные строки, LockVehicle держит блокировку до конца транзакции.
type memStore struct {
	mu       sync.Mutex
	locks    map[int64]*sync.Mutex
	bookings []*domain.Booking
	nextID   int64
	codes    map[string]bool
}

func newMemStore() *memStore {
	return &memStore{locks: make(map[int64]*sync.Mutex), codes: make(map[string]bool)}
}

type memTx struct {
	held    []*sync.Mutex
	pending []*domain.Booking
}

type memTxKey struct{}

func (s *memStore) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx := &memTx{}
	defer func() {
		for _, l := range tx.held {
			l.Unlock()
		}
	}()

	if err := fn(context.WithValue(ctx, memTxKey{}, tx)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range tx.pending {
		s.bookings = append(s.bookings, b)
		s.codes[b.Code] = true
	}
	return nil
}

func (s *memStore) LockVehicle(ctx context.Context, vehicleID int64) error {
	tx, ok := ctx.Value(memTxKey{}).(*memTx)
	if !ok {
		return errors.New("lock outside transaction")
	}
	s.mu.Lock()
	l, ok := s.locks[vehicleID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[vehicleID] = l
	}
	s.mu.Unlock()

	l.Lock()
	tx.held = append(tx.held, l)
	return nil
}

func (s *memStore) FindOverlapping(_ context.Context, vehicleID int64, period domain.DateRange, excludeID *int64) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*domain.Booking
	for _, b := range s.bookings {
		if b.VehicleID != vehicleID || !b.IsActive() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if period.Overlaps(b.Range()) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *memStore) ExistsCode(_ context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codes[code], nil
}

func (s *memStore) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	tx, ok := ctx.Value(memTxKey{}).(*memTx)
	if !ok {
		return nil, errors.New("create outside transaction")
	}
	s.mu.Lock()
	s.nextID++
	booking.ID = s.nextID
	s.mu.Unlock()

	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	tx.pending = append(tx.pending, booking)
	return booking, nil
}

func (s *memStore) committed() []*domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.Booking(nil), s.bookings...)
}

type memVehicles map[int64]*domain.Vehicle

func (m memVehicles) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	v, ok := m[id]
	if !ok {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return v, nil
}

type memBranches map[int64]*domain.Branch

func (m memBranches) GetByID(_ context.Context, id int64) (*domain.Branch, error) {
	b, ok := m[id]
	if !ok {
		return nil, branchRepo.ErrBranchNotFound
	}
	return b, nil
}

type seqCodes struct {
	mu    sync.Mutex
	n     int
	fixed []string
}

func (g *seqCodes) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	if g.n <= len(g.fixed) {
		return g.fixed[g.n-1]
	}
	return fmt.Sprintf("RNT-%08X", g.n)
}

type recordingEvents struct {
	mu     sync.Mutex
	events []domain.BookingEvent
}

func (r *recordingEvents) Publish(_ context.Context, event domain.BookingEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

type countingMetrics struct {
	mu        sync.Mutex
	created   map[string]int
	conflicts int
}

func (m *countingMetrics) IncBookingCreated(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.created == nil {
		m.created = make(map[string]int)
	}
	m.created[source]++
}

func (m *countingMetrics) IncBookingConflict(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conflicts++
}

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
