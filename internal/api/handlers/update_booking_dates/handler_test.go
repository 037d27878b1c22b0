package update_booking_dates

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RentalBookingService/internal/domain"
	updateBookingDates "github.com/m04kA/RentalBookingService/internal/usecase/update_booking_dates"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *updateBookingDates.Request) (*updateBookingDates.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*updateBookingDates.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *MockUseCase, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/bookings/{id}/dates", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPatch)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/4/dates", strings.NewReader(body)))
	return rec
}

func TestHandle_OnlyDropoff(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *updateBookingDates.Request) bool {
		return req.BookingID == 4 &&
			req.PickupDate == nil &&
			req.DropoffDate != nil && req.DropoffDate.Equal(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	})).Return(&updateBookingDates.Response{
		Booking: &domain.Booking{ID: 4, TotalPrice: decimal.NewFromInt(4050), Status: domain.StatusReserved},
		Days:    9,
	}, nil)

	rec := serve(uc, `{"dropoffDate":"2025-03-10"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp UpdateDatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 9, resp.Days)
	assert.Equal(t, "4050.00", resp.Booking.TotalPrice)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"overlap", updateBookingDates.ErrOverlap, http.StatusConflict},
		{"not found", updateBookingDates.ErrBookingNotFound, http.StatusNotFound},
		{"cancelled", updateBookingDates.ErrNotEditable, http.StatusBadRequest},
		{"inverted", updateBookingDates.ErrInvalidDates, http.StatusBadRequest},
		{"too long", updateBookingDates.ErrRentalTooLong, http.StatusBadRequest},
		{"internal", updateBookingDates.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(uc, `{"pickupDate":"2025-03-02","dropoffDate":"2025-03-06"}`)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_BadDate(t *testing.T) {
	uc := new(MockUseCase)
	rec := serve(uc, `{"pickupDate":"tomorrow"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
