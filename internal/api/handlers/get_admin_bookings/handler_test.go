package get_admin_bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RentalBookingService/internal/service/bookings"
	"github.com/m04kA/RentalBookingService/internal/service/bookings/models"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetAdminBookings(ctx context.Context, req *models.AdminBookingsRequest) (*models.AdminBookingListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminBookingListResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestToServiceRequest(t *testing.T) {
	query := url.Values{
		"status":        {"RESERVED"},
		"paymentStatus": {"UNPAID"},
		"vehicleId":     {"3"},
		"from":          {"2025-03-01"},
		"to":            {"2025-04-01"},
		"phone":         {"555 123 45 67"},
		"unread":        {"true"},
		"page":          {"2"},
		"pageSize":      {"50"},
	}

	req, err := ToServiceRequest(query)
	require.NoError(t, err)

	assert.Equal(t, "RESERVED", *req.Status)
	assert.Equal(t, "UNPAID", *req.PaymentStatus)
	assert.Equal(t, int64(3), *req.VehicleID)
	assert.True(t, req.From.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, req.To.Equal(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "555 123 45 67", *req.Phone)
	assert.True(t, req.UnreadOnly)
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 50, req.PageSize)
}

func TestToServiceRequest_Invalid(t *testing.T) {
	for _, query := range []url.Values{
		{"vehicleId": {"x"}},
		{"from": {"yesterday"}},
		{"unread": {"maybe"}},
		{"page": {"one"}},
	} {
		_, err := ToServiceRequest(query)
		assert.Error(t, err, query.Encode())
	}
}

func TestHandle(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("GetAdminBookings", mock.Anything, mock.MatchedBy(func(req *models.AdminBookingsRequest) bool {
		return req.PageSize == 500
	})).Return(&models.AdminBookingListResponse{Items: []models.BookingResponse{}, Total: 0, Page: 1, PageSize: 100}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?pageSize=500", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.AdminBookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.PageSize)
	assert.Empty(t, resp.Items)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid filter", fmt.Errorf("%w: status", bookings.ErrInvalidInput), http.StatusBadRequest},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockBookingService)
			svc.On("GetAdminBookings", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?status=LOST", nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
