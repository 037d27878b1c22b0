package get_admin_bookings

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/RentalBookingService/internal/api/handlers"
	"github.com/m04kA/RentalBookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// Значения фильтров проверяет сервис, здесь только разбор типов.
func ToServiceRequest(query url.Values) (*models.AdminBookingsRequest, error) {
	req := &models.AdminBookingsRequest{}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if paymentStatus := query.Get("paymentStatus"); paymentStatus != "" {
		req.PaymentStatus = &paymentStatus
	}
	if phone := query.Get("phone"); phone != "" {
		req.Phone = &phone
	}

	if vehicleIDStr := query.Get("vehicleId"); vehicleIDStr != "" {
		vehicleID, err := strconv.ParseInt(vehicleIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid vehicleId: %w", err)
		}
		req.VehicleID = &vehicleID
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := handlers.ParseDateTime(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		req.From = &from
	}
	if toStr := query.Get("to"); toStr != "" {
		to, err := handlers.ParseDateTime(toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
		req.To = &to
	}

	if unreadStr := query.Get("unread"); unreadStr != "" {
		unread, err := strconv.ParseBool(unreadStr)
		if err != nil {
			return nil, fmt.Errorf("invalid unread value: %w", err)
		}
		req.UnreadOnly = unread
	}

	var err error
	if req.Page, err = optionalInt(query, "page"); err != nil {
		return nil, err
	}
	if req.PageSize, err = optionalInt(query, "pageSize"); err != nil {
		return nil, err
	}

	return req, nil
}

func optionalInt(query url.Values, name string) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return value, nil
}
