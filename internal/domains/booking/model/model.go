package model

import (
	"hotel/shared/model"
	"time"
)

const (
	EntityName = "booking"

	FieldID         = "id"
	FieldGuestName  = "guest_name"
	FieldRoomNumber = "room_number"
	FieldArrival    = "arrival"
	FieldCheckout   = "checkout"
)

// Booking is a confirmed stay in one room over [Arrival, Checkout).
// Values are handed out as copies and never change after creation.
type Booking struct {
	ID         string
	GuestName  string
	RoomNumber int
	Arrival    time.Time
	Checkout   time.Time
	model.Metadata
}

// Nights returns the number of calendar days between arrival and checkout.
// Both ends are compared as UTC dates so a DST change in the stay's zone
// does not shorten or stretch a night.
func (b Booking) Nights() int {
	return int(calendarDate(b.Checkout).Sub(calendarDate(b.Arrival)) / (24 * time.Hour))
}

func calendarDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
