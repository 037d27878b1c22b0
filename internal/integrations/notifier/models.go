package notifier

// Message сообщение для внешнего сервиса уведомлений (WhatsApp/email/SMS).
// Содержит полные данные клиента: канал внутренний, доставка вне сервиса.
type Message struct {
	Event         string   `json:"event"`
	BookingID     int64    `json:"bookingId"`
	BookingCode   string   `json:"bookingCode"`
	VehicleID     int64    `json:"vehicleId"`
	PickupDate    string   `json:"pickupDate"`
	DropoffDate   string   `json:"dropoffDate"`
	TotalPrice    string   `json:"totalPrice"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"paymentStatus"`
	Customer      Customer `json:"customer"`
	OccurredAt    string   `json:"occurredAt"`
}

// Customer контакты клиента
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
}
