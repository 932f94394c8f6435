package booking

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared/constant"
	"hotel/transport/cli/response"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) TotalRooms() int {
	return handler.service.TotalRooms()
}

// BookRoom books the first free room for the stay and reports the room number.
func (handler *Handler) BookRoom(ctx context.Context, writer io.Writer, req dto.CreateBookingRequest) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to book room")

		response.WithError(writer, err)

		return
	}

	response.WithMessagef(writer, "Booked room %d for %s from %s to %s (%s).",
		res.RoomNumber, res.GuestName, res.Arrival, res.Checkout, nights(res.Nights))
}

// CheckAvailability lists the rooms free on the requested date.
func (handler *Handler) CheckAvailability(ctx context.Context, writer io.Writer, req dto.AvailabilityRequest) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	res, err := handler.service.AvailableRooms(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	if res.TotalAvailable == 0 {
		response.WithMessagef(writer, "No rooms available on %s.", res.Date)

		return
	}

	rooms := make([]string, len(res.Rooms))
	for i, room := range res.Rooms {
		rooms[i] = strconv.Itoa(room)
	}

	response.WithMessagef(writer, "%d of %d rooms available on %s: %s",
		res.TotalAvailable, res.TotalRooms, res.Date, strings.Join(rooms, ", "))
}

// RetrieveBookings lists every booking whose guest name fully matches the pattern.
func (handler *Handler) RetrieveBookings(ctx context.Context, writer io.Writer, req dto.GuestBookingsRequest) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RetrieveBookings")
	defer scope.End()

	res, err := handler.service.GuestBookings(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to retrieve bookings")

		response.WithError(writer, err)

		return
	}

	if res.TotalData == 0 {
		response.WithMessage(writer, "No bookings found.")

		return
	}

	lines := make([]string, len(res.Bookings))
	for i, booking := range res.Bookings {
		lines[i] = fmt.Sprintf("Room %d: %s, %s to %s (%s)",
			booking.RoomNumber, booking.GuestName, booking.Arrival, booking.Checkout, nights(booking.Nights))
	}

	response.WithLines(writer, fmt.Sprintf("Found %d booking(s):", res.TotalData), lines)
}

func nights(n int) string {
	if n == 1 {
		return "1 night"
	}

	return strconv.Itoa(n) + " nights"
}
