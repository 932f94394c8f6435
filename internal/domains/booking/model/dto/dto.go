package dto

import (
	"fmt"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"time"
)

type CreateBookingRequest struct {
	GuestName string `json:"guest_name" validate:"required,max=100"`
	Arrival   string `json:"arrival"    validate:"required,date"`
	Checkout  string `json:"checkout"   validate:"required,date"`
}

// Stay parses the arrival and checkout dates as midnight in the application timezone.
func (c *CreateBookingRequest) Stay() (arrival, checkout time.Time, err error) {
	arrival, err = timezone.ParseDate(c.Arrival)
	if err != nil {
		return arrival, checkout, failure.BadRequest(fmt.Errorf("invalid arrival date: %w", err))
	}

	checkout, err = timezone.ParseDate(c.Checkout)
	if err != nil {
		return arrival, checkout, failure.BadRequest(fmt.Errorf("invalid checkout date: %w", err))
	}

	return arrival, checkout, nil
}

type AvailabilityRequest struct {
	Date string `json:"date" validate:"required,date"`
}

// Instant returns the moment availability is checked for: midday of Date in the
// application timezone. A stay arriving that day occupies the room, a stay
// checking out that day does not.
func (a *AvailabilityRequest) Instant() (time.Time, error) {
	date, err := timezone.ParseDate(a.Date)
	if err != nil {
		return time.Time{}, failure.BadRequest(fmt.Errorf("invalid date: %w", err))
	}

	return date.Add(constant.AvailabilityCheckOffset), nil
}

type GuestBookingsRequest struct {
	Pattern string `json:"pattern" validate:"required"`
}

type BookingResponse struct {
	ID         string `json:"id"`
	GuestName  string `json:"guest_name"`
	RoomNumber int    `json:"room_number"`
	Arrival    string `json:"arrival"`
	Checkout   string `json:"checkout"`
	Nights     int    `json:"nights"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.RoomNumber = model.RoomNumber
	r.Arrival = timezone.FormatDate(model.Arrival)
	r.Checkout = timezone.FormatDate(model.Checkout)
	r.Nights = model.Nights()
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailableRoomsResponse struct {
	Date           string `json:"date"`
	Rooms          []int  `json:"rooms"`
	TotalAvailable int    `json:"total_available"`
	TotalRooms     int    `json:"total_rooms"`
}

func (r *AvailableRoomsResponse) FromRooms(date string, rooms []int, totalRooms int) {
	r.Date = date
	r.Rooms = rooms
	r.TotalAvailable = len(rooms)
	r.TotalRooms = totalRooms
}

// BookingEvent is the payload published for every confirmed booking.
type BookingEvent struct {
	Type    string          `json:"type"`
	Booking BookingResponse `json:"booking"`
}

func NewBookingCreatedEvent(booking BookingResponse) BookingEvent {
	return BookingEvent{
		Type:    constant.EventBookingCreated,
		Booking: booking,
	}
}
