package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RentalBookingService/internal/domain"
	getAvailability "github.com/m04kA/RentalBookingService/internal/usecase/get_availability"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailability.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func march(day int) time.Time {
	return time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
}

func serve(uc *MockUseCase, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/vehicles/{id}/availability", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle_Calendar(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, &getAvailability.Request{VehicleID: 1, From: march(1), To: march(4)}).
		Return(&getAvailability.Response{
			VehicleID: 1,
			From:      march(1),
			To:        march(4),
			Days: []domain.CalendarDay{
				{Date: march(1), Status: domain.DayFree},
				{Date: march(2), Status: domain.DayBooked},
				{Date: march(3), Status: domain.DayFree},
			},
		}, nil)

	rec := serve(uc, "/api/v1/vehicles/1/availability?from=2025-03-01&to=2025-03-04")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []DayResponse{
		{Date: "2025-03-01", Status: "free"},
		{Date: "2025-03-02", Status: "booked"},
		{Date: "2025-03-03", Status: "free"},
	}, resp.Days)
}

func TestHandle_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{"bad id", "/api/v1/vehicles/abc/availability?from=2025-03-01&to=2025-03-04", nil, http.StatusBadRequest},
		{"missing to", "/api/v1/vehicles/1/availability?from=2025-03-01", nil, http.StatusBadRequest},
		{"bad date", "/api/v1/vehicles/1/availability?from=03/01/2025&to=2025-03-04", nil, http.StatusBadRequest},
		{"unknown vehicle", "/api/v1/vehicles/9/availability?from=2025-03-01&to=2025-03-04", getAvailability.ErrVehicleNotFound, http.StatusNotFound},
		{"too long", "/api/v1/vehicles/1/availability?from=2025-03-01&to=2026-03-04", getAvailability.ErrRangeTooLong, http.StatusBadRequest},
		{"inverted", "/api/v1/vehicles/1/availability?from=2025-03-04&to=2025-03-01", getAvailability.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "/api/v1/vehicles/1/availability?from=2025-03-01&to=2025-03-04", getAvailability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := serve(uc, tt.path)

			assert.Equal(t, tt.status, rec.Code)
			if tt.err == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
