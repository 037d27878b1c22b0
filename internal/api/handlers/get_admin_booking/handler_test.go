package get_admin_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RentalBookingService/internal/service/bookings"
	"github.com/m04kA/RentalBookingService/internal/service/bookings/models"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *MockBookingService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/bookings/{id}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle_Unmasked(t *testing.T) {
	read := false
	svc := new(MockBookingService)
	svc.On("GetByID", mock.Anything, int64(12)).Return(&models.BookingResponse{
		ID:        12,
		AdminRead: &read,
		Customer:  models.CustomerResponse{FirstName: "Ahmet", Phone: "5551234567"},
	}, nil)

	rec := serve(svc, "/api/v1/admin/bookings/12")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "5551234567", resp.Customer.Phone)
	require.NotNil(t, resp.AdminRead)
	assert.False(t, *resp.AdminRead)
}

func TestHandle_Errors(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("GetByID", mock.Anything, int64(404)).Return(nil, bookings.ErrBookingNotFound)
	svc.On("GetByID", mock.Anything, int64(500)).Return(nil, bookings.ErrInternal)

	assert.Equal(t, http.StatusNotFound, serve(svc, "/api/v1/admin/bookings/404").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(svc, "/api/v1/admin/bookings/500").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/admin/bookings/0").Code)
}
