package constant

import (
	"time"
)

const (
	DefaultRooms = 20
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = time.RFC3339

	AvailabilityCheckOffset = 12 * time.Hour
)

const (
	OtelServiceScopeName = "service"
	OtelHandlerScopeName = "handler"
	OtelEventScopeName   = "event"

	OtelGuestPatternAttributeKey = "guest.pattern"
	OtelRoomNumberAttributeKey   = "room.number"
	OtelDateAttributeKey         = "date"
)

const (
	EventBookingCreated = "booking.created"
)

const (
	Empty = ""
)
