package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() CustomerSnapshot {
	return CustomerSnapshot{
		FirstName:     "Ahmet",
		LastName:      "Yilmaz",
		Phone:         "5551234567",
		Email:         "johndoe@example.com",
		DriverLicense: "B-1234567",
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "905551234567", NormalizePhone("+90 (555) 123-45-67"))
	assert.Equal(t, "", NormalizePhone("abc"))
	assert.Equal(t, "123", NormalizePhone(" 1 2 3 "))
}

func TestCustomerSnapshot_Normalize(t *testing.T) {
	blank := "  "
	c := CustomerSnapshot{
		FirstName:  "  Ahmet ",
		Phone:      "555-123-45-67",
		Email:      " JohnDoe@Example.com ",
		NationalID: &blank,
	}.Normalize()

	assert.Equal(t, "Ahmet", c.FirstName)
	assert.Equal(t, "5551234567", c.Phone)
	assert.Equal(t, "johndoe@example.com", c.Email)
	assert.Nil(t, c.NationalID)
}

func TestCustomerSnapshot_Validate(t *testing.T) {
	require.NoError(t, validCustomer().Validate())

	tests := []struct {
		name   string
		mutate func(c *CustomerSnapshot)
	}{
		{"missing first name", func(c *CustomerSnapshot) { c.FirstName = "" }},
		{"missing last name", func(c *CustomerSnapshot) { c.LastName = "" }},
		{"short phone", func(c *CustomerSnapshot) { c.Phone = "123" }},
		{"missing email", func(c *CustomerSnapshot) { c.Email = "" }},
		{"bad email", func(c *CustomerSnapshot) { c.Email = "not-an-email" }},
		{"missing license", func(c *CustomerSnapshot) { c.DriverLicense = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCustomer()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidCustomer)
		})
	}
}

func TestCustomerSnapshot_ValidateRelaxed(t *testing.T) {
	walkIn := CustomerSnapshot{FirstName: "Ahmet", Phone: "5551234567"}
	assert.NoError(t, walkIn.ValidateRelaxed())
	assert.ErrorIs(t, walkIn.Validate(), ErrInvalidCustomer)

	walkIn.Email = "broken@"
	assert.ErrorIs(t, walkIn.ValidateRelaxed(), ErrInvalidCustomer)

	assert.ErrorIs(t, CustomerSnapshot{Phone: "5551234567"}.ValidateRelaxed(), ErrInvalidCustomer)
}
