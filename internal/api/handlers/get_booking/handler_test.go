package get_booking

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RentalBookingService/internal/api/handlers"
	"github.com/m04kA/RentalBookingService/internal/service/bookings"
	"github.com/m04kA/RentalBookingService/internal/service/bookings/models"
)

func serve(svc *MockBookingService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{code}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle_MaskedBooking(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("GetByCode", mock.Anything, "rnt-0a1b2c3d").Return(&models.BookingResponse{
		BookingCode: "RNT-0A1B2C3D",
		TotalPrice:  "1800.00",
		Customer:    models.CustomerResponse{FirstName: "A***", Phone: "***4567"},
	}, nil)

	rec := serve(svc, "/api/v1/bookings/rnt-0a1b2c3d")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "RNT-0A1B2C3D", resp.BookingCode)
	assert.Equal(t, "***4567", resp.Customer.Phone)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"invalid", fmt.Errorf("%w: empty", bookings.ErrInvalidInput), http.StatusBadRequest, handlers.CodeValidation},
		{"internal", fmt.Errorf("%w: db", bookings.ErrInternal), http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockBookingService)
			svc.On("GetByCode", mock.Anything, "RNT-00000000").Return(nil, tt.err)

			rec := serve(svc, "/api/v1/bookings/RNT-00000000")

			assert.Equal(t, tt.status, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}
