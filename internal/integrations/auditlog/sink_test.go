package auditlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) Insert(ctx context.Context, entry *domain.ActionLog) error {
	return m.Called(ctx, entry).Error(0)
}

type countingLogger struct {
	info, errors int
}

func (l *countingLogger) Info(string, ...interface{})  { l.info++ }
func (l *countingLogger) Error(string, ...interface{}) { l.errors++ }

func TestSink_Record(t *testing.T) {
	repo := new(MockRepo)
	log := &countingLogger{}
	sink := NewSink(repo, log)

	ok := &domain.ActionLog{Action: domain.AuditBookingStarted, BookingCode: "RNT-1"}
	failing := &domain.ActionLog{Action: domain.AuditBookingCancelled, BookingCode: "RNT-2"}
	repo.On("Insert", mock.Anything, ok).Return(nil)
	repo.On("Insert", mock.Anything, failing).Return(errors.New("db down"))

	sink.Record(context.Background(), ok)
	assert.NotPanics(t, func() { sink.Record(context.Background(), failing) })

	assert.Equal(t, 1, log.info)
	assert.Equal(t, 1, log.errors)
	repo.AssertExpectations(t)
}
