package domain

// Branch represents a pickup/return location
type Branch struct {
	ID      int64
	Name    string
	City    string
	Address string
}
