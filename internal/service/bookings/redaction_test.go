package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/RentalBookingService/internal/domain"
	"github.com/m04kA/RentalBookingService/pkg/ptr"
)

func TestMaskFixtures(t *testing.T) {
	assert.Equal(t, "A***", MaskName("Ahmet"))
	assert.Equal(t, "Y***", MaskName("Yilmaz"))
	assert.Equal(t, "Ç***", MaskName("Çelik"))
	assert.Equal(t, "", MaskName(""))

	assert.Equal(t, "***4567", MaskPhone("5551234567"))
	assert.Equal(t, "***4567", MaskPhone("+90 (555) 123-45-67"))
	assert.Equal(t, "***", MaskPhone("123"))

	assert.Equal(t, "joh***@example.com", MaskEmail("johndoe@example.com"))
	assert.Equal(t, "jo***@example.com", MaskEmail("jo@example.com"))
	assert.Equal(t, "***", MaskEmail("not-an-email"))
	assert.Equal(t, "", MaskEmail(""))

	assert.Equal(t, "********", MaskSecret("B-1234567"))
	assert.Equal(t, "", MaskSecret(""))
}

func TestMaskBooking_DoesNotTouchOriginal(t *testing.T) {
	original := &domain.Booking{
		Code: "RNT-0A1B2C3D",
		Customer: domain.CustomerSnapshot{
			FirstName:     "Ahmet",
			LastName:      "Yilmaz",
			Phone:         "5551234567",
			Email:         "johndoe@example.com",
			DriverLicense: "B-1234567",
			NationalID:    ptr.Ptr("12345678901"),
		},
	}

	masked := MaskBooking(original)

	assert.Equal(t, domain.CustomerSnapshot{
		FirstName:     "A***",
		LastName:      "Y***",
		Phone:         "***4567",
		Email:         "joh***@example.com",
		DriverLicense: "********",
		NationalID:    ptr.Ptr("********"),
	}, masked.Customer)
	assert.Equal(t, "RNT-0A1B2C3D", masked.Code)

	assert.Equal(t, "Ahmet", original.Customer.FirstName)
	assert.Equal(t, "12345678901", *original.Customer.NationalID)
	assert.Nil(t, MaskBooking(nil))
}
