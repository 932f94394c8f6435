package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/ledger"
	"hotel/internal/domains/booking/model/dto"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	AvailableRooms(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailableRoomsResponse, error)
	GuestBookings(ctx context.Context, req dto.GuestBookingsRequest) (dto.GetBookingsResponse, error)
	TotalRooms() int
}

type serviceImpl struct {
	ledger ledger.Ledger
	cfg    *config.Config
	kafka  kafka.Client
	otel   otel.Otel
}

func New(ledger ledger.Ledger, cfg *config.Config, kafka kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		ledger: ledger,
		cfg:    cfg,
		kafka:  kafka,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		log.Warn().Err(err).Msg("invalid booking request")

		return res, err //nolint:wrapcheck
	}

	arrival, checkout, err := req.Stay()
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse booking dates")

		return res, err //nolint:wrapcheck
	}

	booking, err := s.ledger.CreateBooking(req.GuestName, arrival, checkout)
	if err != nil {
		switch failure.GetKind(err) {
		case failure.KindNoRoomAvailable:
			log.Info().
				Str("guest", req.GuestName).
				Str("arrival", req.Arrival).
				Str("checkout", req.Checkout).
				Msg("no room available")
		case failure.KindInvalidInterval, failure.KindBadRequest:
			log.Warn().Err(err).Msg("invalid booking stay")
		default:
			log.Error().Err(err).Msg("failed to create booking")
		}

		return res, err //nolint:wrapcheck
	}

	scope.SetAttribute(constant.OtelRoomNumberAttributeKey, booking.RoomNumber)
	res.FromModel(booking)

	s.publishCreated(ctx, res)

	log.Info().
		Str("booking_id", res.ID).
		Int("room", res.RoomNumber).
		Str("arrival", res.Arrival).
		Str("checkout", res.Checkout).
		Msg("booking created")

	return res, nil
}

// publishCreated announces a confirmed booking. Delivery failures are logged
// and traced but never undo the booking.
func (s *serviceImpl) publishCreated(ctx context.Context, booking dto.BookingResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingCreated")
	defer scope.End()

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic, kafka.Message{
		Key:   booking.ID,
		Value: dto.NewBookingCreatedEvent(booking),
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking event")
		scope.TraceError(err)

		return
	}

	scope.AddEvent(constant.EventBookingCreated)
}

func (s *serviceImpl) AvailableRooms(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailableRoomsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		log.Warn().Err(err).Msg("invalid availability request")

		return res, err //nolint:wrapcheck
	}

	instant, err := req.Instant()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	scope.SetAttribute(constant.OtelDateAttributeKey, req.Date)

	res.FromRooms(req.Date, s.ledger.AvailableRooms(instant), s.ledger.TotalRooms())

	return res, nil
}

func (s *serviceImpl) GuestBookings(ctx context.Context, req dto.GuestBookingsRequest) (res dto.GetBookingsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GuestBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		log.Warn().Err(err).Msg("invalid guest bookings request")

		return res, failure.InvalidPattern(err)
	}

	scope.SetAttribute(constant.OtelGuestPatternAttributeKey, req.Pattern)

	bookings, err := s.ledger.BookingsForGuest(req.Pattern)
	if err != nil {
		log.Warn().Err(err).Str("pattern", req.Pattern).Msg("failed to look up guest bookings")

		return res, err //nolint:wrapcheck
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) TotalRooms() int {
	return s.ledger.TotalRooms()
}
