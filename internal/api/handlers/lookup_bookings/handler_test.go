package lookup_bookings

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RentalBookingService/internal/service/bookings"
	"github.com/m04kA/RentalBookingService/internal/service/bookings/models"
)

func TestHandle_EmptyResultIsOK(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("LookupByPhone", mock.Anything, "+90 555 123 45 67").
		Return(&models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/lookup?phone=%2B90+555+123+45+67", nil)
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookings":[]}`, rec.Body.String())
}

func TestHandle_InvalidPhone(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("LookupByPhone", mock.Anything, "12").Return(nil, fmt.Errorf("%w: phone", bookings.ErrInvalidInput))

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/lookup?phone=12", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_Internal(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("LookupByPhone", mock.Anything, mock.Anything).Return(nil, bookings.ErrInternal)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/lookup?phone=5551234567", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
