package bookings

import (
	"strings"
	"unicode/utf8"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

const (
	maskSuffix      = "***"
	maskSecret      = "********"
	phoneTailDigits = 4
	emailHeadRunes  = 3
)

// MaskName оставляет первую букву: "Ahmet" -> "A***"
func MaskName(name string) string {
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(r) + maskSuffix
}

// MaskPhone оставляет последние 4 цифры: "5551234567" -> "***4567"
func MaskPhone(phone string) string {
	digits := domain.NormalizePhone(phone)
	if len(digits) < phoneTailDigits {
		return maskSuffix
	}
	return maskSuffix + digits[len(digits)-phoneTailDigits:]
}

// MaskEmail оставляет первые 3 символа локальной части: "johndoe@example.com" -> "joh***@example.com"
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return maskSuffix
	}
	local, host := email[:at], email[at+1:]

	if utf8.RuneCountInString(local) > emailHeadRunes {
		local = string([]rune(local)[:emailHeadRunes])
	}
	return local + maskSuffix + "@" + host
}

// MaskSecret полностью скрывает значение (водительское удостоверение, паспорт)
func MaskSecret(value string) string {
	if value == "" {
		return ""
	}
	return maskSecret
}

// MaskCustomer маскирует данные клиента для публичных ответов
func MaskCustomer(c domain.CustomerSnapshot) domain.CustomerSnapshot {
	masked := domain.CustomerSnapshot{
		FirstName:     MaskName(c.FirstName),
		LastName:      MaskName(c.LastName),
		Phone:         MaskPhone(c.Phone),
		Email:         MaskEmail(c.Email),
		DriverLicense: MaskSecret(c.DriverLicense),
	}
	if c.NationalID != nil {
		id := MaskSecret(*c.NationalID)
		masked.NationalID = &id
	}
	return masked
}

// MaskBooking возвращает копию бронирования с замаскированным клиентом, исходное не меняется
func MaskBooking(b *domain.Booking) *domain.Booking {
	if b == nil {
		return nil
	}
	masked := *b
	masked.Customer = MaskCustomer(b.Customer)
	return &masked
}
