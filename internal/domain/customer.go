package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

// ErrInvalidCustomer возвращается, когда данные клиента не проходят валидацию
var ErrInvalidCustomer = errors.New("domain: invalid customer data")

// CustomerSnapshot customer data captured at booking time.
// Never re-validated against a user account.
type CustomerSnapshot struct {
	FirstName     string
	LastName      string
	Phone         string // normalized: digits only
	Email         string
	DriverLicense string
	NationalID    *string
}

// Normalize приводит поля к каноническому виду (обрезка пробелов, телефон только цифрами)
func (c CustomerSnapshot) Normalize() CustomerSnapshot {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Phone = NormalizePhone(c.Phone)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.DriverLicense = strings.TrimSpace(c.DriverLicense)
	if c.NationalID != nil {
		id := strings.TrimSpace(*c.NationalID)
		if id == "" {
			c.NationalID = nil
		} else {
			c.NationalID = &id
		}
	}
	return c
}

// Validate строгая проверка для публичного бронирования: все поля кроме NationalID обязательны
func (c CustomerSnapshot) Validate() error {
	if c.FirstName == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidCustomer)
	}
	if c.LastName == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidCustomer)
	}
	if err := validatePhone(c.Phone); err != nil {
		return err
	}
	if c.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidCustomer)
	}
	if c.DriverLicense == "" {
		return fmt.Errorf("%w: driver license is required", ErrInvalidCustomer)
	}
	return c.validateLengths()
}

// ValidateRelaxed проверка для ручного бронирования админом (walk-in клиент):
// обязательны только имя и телефон, остальные поля проверяются если заполнены
func (c CustomerSnapshot) ValidateRelaxed() error {
	if c.FirstName == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidCustomer)
	}
	if err := validatePhone(c.Phone); err != nil {
		return err
	}
	return c.validateLengths()
}

func (c CustomerSnapshot) validateLengths() error {
	if len(c.FirstName) > MaxNameLength || len(c.LastName) > MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidCustomer, MaxNameLength)
	}
	if c.Email != "" {
		if len(c.Email) > MaxEmailLength {
			return fmt.Errorf("%w: email is too long", ErrInvalidCustomer)
		}
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return fmt.Errorf("%w: invalid email", ErrInvalidCustomer)
		}
	}
	if len(c.DriverLicense) > MaxDriverLicenseLength {
		return fmt.Errorf("%w: driver license is too long", ErrInvalidCustomer)
	}
	if c.NationalID != nil && len(*c.NationalID) > MaxNationalIDLength {
		return fmt.Errorf("%w: national id is too long", ErrInvalidCustomer)
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) < MinPhoneDigits || len(phone) > MaxPhoneDigits {
		return fmt.Errorf("%w: phone must contain %d-%d digits", ErrInvalidCustomer, MinPhoneDigits, MaxPhoneDigits)
	}
	return nil
}

// NormalizePhone оставляет в номере только цифры
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}
