package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
)

const testTopic = "hotel.bookings.test"

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Topic = testTopic
	timezone.Init(cfg)

	return cfg
}

func date(day int) time.Time {
	return time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestBookingService_Create(t *testing.T) {
	booked := model.Booking{
		ID:         "7d5b6a52-3a0a-4c8c-8f36-0b7e0e3bb1f2",
		GuestName:  "Andy Shearer",
		RoomNumber: 3,
		Arrival:    date(1),
		Checkout:   date(4),
		Metadata: gModel.Metadata{
			CreatedAt: date(1),
			CreatedBy: "frontdesk",
		},
	}
	validReq := dto.CreateBookingRequest{GuestName: "Andy Shearer", Arrival: "2024-03-01", Checkout: "2024-03-04"}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(ledger *bookingMocks.MockLedger, client *kafkaMocks.MockClient)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "successful booking",
			req:  validReq,
			setupMock: func(ledger *bookingMocks.MockLedger, client *kafkaMocks.MockClient) {
				ledger.EXPECT().
					CreateBooking("Andy Shearer", date(1), date(4)).
					Return(booked, nil)

				client.EXPECT().
					SendMessages(gomock.Any(), testTopic, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
						if !assert.Len(t, messages, 1) {
							return nil
						}

						assert.Equal(t, booked.ID, messages[0].Key)

						event, ok := messages[0].Value.(dto.BookingEvent)
						assert.True(t, ok)
						assert.Equal(t, constant.EventBookingCreated, event.Type)
						assert.Equal(t, 3, event.Booking.RoomNumber)

						return nil
					})
			},
		},
		{
			name: "event publication failure keeps the booking",
			req:  validReq,
			setupMock: func(ledger *bookingMocks.MockLedger, client *kafkaMocks.MockClient) {
				ledger.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(booked, nil)

				client.EXPECT().
					SendMessages(gomock.Any(), testTopic, gomock.Any()).
					Return(errors.New("broker unavailable"))
			},
		},
		{
			name: "no room available",
			req:  validReq,
			setupMock: func(ledger *bookingMocks.MockLedger, _ *kafkaMocks.MockClient) {
				ledger.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{}, failure.NoRoomAvailableError)
			},
			wantErr:  true,
			wantKind: failure.KindNoRoomAvailable,
		},
		{
			name: "checkout before arrival",
			req:  dto.CreateBookingRequest{GuestName: "Andy Shearer", Arrival: "2024-03-04", Checkout: "2024-03-01"},
			setupMock: func(ledger *bookingMocks.MockLedger, _ *kafkaMocks.MockClient) {
				ledger.EXPECT().
					CreateBooking(gomock.Any(), date(4), date(1)).
					Return(model.Booking{}, failure.InvalidInterval("arrival must be before checkout"))
			},
			wantErr:  true,
			wantKind: failure.KindInvalidInterval,
		},
		{
			name:      "missing guest name",
			req:       dto.CreateBookingRequest{Arrival: "2024-03-01", Checkout: "2024-03-04"},
			setupMock: func(_ *bookingMocks.MockLedger, _ *kafkaMocks.MockClient) {},
			wantErr:   true,
			wantKind:  failure.KindBadRequest,
		},
		{
			name:      "malformed date",
			req:       dto.CreateBookingRequest{GuestName: "Andy Shearer", Arrival: "March 1st", Checkout: "2024-03-04"},
			setupMock: func(_ *bookingMocks.MockLedger, _ *kafkaMocks.MockClient) {},
			wantErr:   true,
			wantKind:  failure.KindBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger := bookingMocks.NewMockLedger(ctrl)
			mockKafka := kafkaMocks.NewMockClient(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockLedger, newConfig(), mockKafka, mockOtel)

			tt.setupMock(mockLedger, mockKafka)

			res, err := svc.Create(context.Background(), tt.req)

			scope := mockOtel.Scope(constant.OtelServiceScopeName + ".Create")
			require.NotNil(t, scope)
			assert.True(t, scope.Ended())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
				assert.Len(t, scope.Errors(), 1)

				return
			}

			require.NoError(t, err)
			assert.Empty(t, scope.Errors())
			assert.Equal(t, booked.ID, res.ID)
			assert.Equal(t, 3, res.RoomNumber)
			assert.Equal(t, "2024-03-01", res.Arrival)
			assert.Equal(t, "2024-03-04", res.Checkout)
			assert.Equal(t, 3, res.Nights)
			assert.Equal(t, "frontdesk", res.CreatedBy)

			room, ok := scope.Attribute(constant.OtelRoomNumberAttributeKey)
			assert.True(t, ok)
			assert.Equal(t, 3, room)

			event := mockOtel.Scope(constant.OtelEventScopeName + ".BookingCreated")
			require.NotNil(t, event)
			assert.True(t, event.Ended())
		})
	}
}

func TestBookingService_Create_LogLevel(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{name: "no room available", err: failure.NoRoomAvailableError, wantLevel: "info"},
		{name: "checkout before arrival", err: failure.InvalidInterval("arrival must be before checkout"), wantLevel: "warn"},
		{name: "missing guest name", err: failure.GuestNameRequiredError, wantLevel: "warn"},
		{name: "unexpected failure", err: errors.New("ledger unavailable"), wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			originalLogger := log.Logger
			originalLevel := zerolog.GlobalLevel()
			t.Cleanup(func() {
				log.Logger = originalLogger
				zerolog.SetGlobalLevel(originalLevel)
			})

			log.Logger = zerolog.New(&buf)
			zerolog.SetGlobalLevel(zerolog.TraceLevel)

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger := bookingMocks.NewMockLedger(ctrl)
			mockLedger.EXPECT().
				CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(model.Booking{}, tt.err)

			svc := service.New(mockLedger, newConfig(), kafkaMocks.NewMockClient(ctrl), mocks.NewOtel())

			_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
				GuestName: "Andy Shearer",
				Arrival:   "2024-03-01",
				Checkout:  "2024-03-04",
			})
			require.Error(t, err)

			assert.Contains(t, buf.String(), `"level":"`+tt.wantLevel+`"`)
			if tt.wantLevel != "error" {
				assert.NotContains(t, buf.String(), `"level":"error"`)
			}
		})
	}
}

func TestBookingService_AvailableRooms(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.AvailabilityRequest
		setupMock func(ledger *bookingMocks.MockLedger)
		want      dto.AvailableRoomsResponse
		wantErr   bool
	}{
		{
			name: "rooms available",
			req:  dto.AvailabilityRequest{Date: "2024-03-02"},
			setupMock: func(ledger *bookingMocks.MockLedger) {
				ledger.EXPECT().
					AvailableRooms(time.Date(2024, time.March, 2, 12, 0, 0, 0, time.UTC)).
					Return([]int{2, 3})
				ledger.EXPECT().TotalRooms().Return(3)
			},
			want: dto.AvailableRoomsResponse{Date: "2024-03-02", Rooms: []int{2, 3}, TotalAvailable: 2, TotalRooms: 3},
		},
		{
			name: "fully booked",
			req:  dto.AvailabilityRequest{Date: "2024-03-02"},
			setupMock: func(ledger *bookingMocks.MockLedger) {
				ledger.EXPECT().AvailableRooms(gomock.Any()).Return([]int{})
				ledger.EXPECT().TotalRooms().Return(1)
			},
			want: dto.AvailableRoomsResponse{Date: "2024-03-02", Rooms: []int{}, TotalAvailable: 0, TotalRooms: 1},
		},
		{
			name:      "missing date",
			req:       dto.AvailabilityRequest{},
			setupMock: func(_ *bookingMocks.MockLedger) {},
			wantErr:   true,
		},
		{
			name:      "malformed date",
			req:       dto.AvailabilityRequest{Date: "02-03-2024"},
			setupMock: func(_ *bookingMocks.MockLedger) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger := bookingMocks.NewMockLedger(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockLedger, newConfig(), kafkaMocks.NewMockClient(ctrl), mockOtel)

			tt.setupMock(mockLedger)

			res, err := svc.AvailableRooms(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, failure.KindBadRequest, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)

			scope := mockOtel.Scope(constant.OtelServiceScopeName + ".AvailableRooms")
			require.NotNil(t, scope)
			value, _ := scope.Attribute(constant.OtelDateAttributeKey)
			assert.Equal(t, tt.req.Date, value)
		})
	}
}

func TestBookingService_GuestBookings(t *testing.T) {
	bookings := []model.Booking{
		{ID: "a", GuestName: "Andy Shearer", RoomNumber: 1, Arrival: date(1), Checkout: date(4)},
		{ID: "b", GuestName: "Andy Shearer", RoomNumber: 1, Arrival: date(8), Checkout: date(9)},
	}

	tests := []struct {
		name      string
		req       dto.GuestBookingsRequest
		setupMock func(ledger *bookingMocks.MockLedger)
		wantIDs   []string
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "matching bookings",
			req:  dto.GuestBookingsRequest{Pattern: "Andy Shearer"},
			setupMock: func(ledger *bookingMocks.MockLedger) {
				ledger.EXPECT().BookingsForGuest("Andy Shearer").Return(bookings, nil)
			},
			wantIDs: []string{"a", "b"},
		},
		{
			name: "no bookings",
			req:  dto.GuestBookingsRequest{Pattern: "Nobody"},
			setupMock: func(ledger *bookingMocks.MockLedger) {
				ledger.EXPECT().BookingsForGuest("Nobody").Return([]model.Booking{}, nil)
			},
			wantIDs: []string{},
		},
		{
			name: "malformed pattern",
			req:  dto.GuestBookingsRequest{Pattern: "(Andy"},
			setupMock: func(ledger *bookingMocks.MockLedger) {
				ledger.EXPECT().
					BookingsForGuest("(Andy").
					Return(nil, failure.InvalidPattern(errors.New("missing closing )")))
			},
			wantErr:  true,
			wantKind: failure.KindInvalidPattern,
		},
		{
			name:      "empty pattern",
			req:       dto.GuestBookingsRequest{},
			setupMock: func(_ *bookingMocks.MockLedger) {},
			wantErr:   true,
			wantKind:  failure.KindInvalidPattern,
		},
		{
			name: "alternation escaping the anchors",
			req:  dto.GuestBookingsRequest{Pattern: "a)|(b"},
			setupMock: func(ledger *bookingMocks.MockLedger) {
				ledger.EXPECT().
					BookingsForGuest("a)|(b").
					Return(nil, failure.InvalidPattern(errors.New("unexpected )")))
			},
			wantErr:  true,
			wantKind: failure.KindInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger := bookingMocks.NewMockLedger(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockLedger, newConfig(), kafkaMocks.NewMockClient(ctrl), mockOtel)

			tt.setupMock(mockLedger)

			res, err := svc.GuestBookings(context.Background(), tt.req)

			scope := mockOtel.Scope(constant.OtelServiceScopeName + ".GuestBookings")
			require.NotNil(t, scope)
			assert.True(t, scope.Ended())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
				assert.NotEmpty(t, scope.Errors())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantIDs), res.TotalData)

			ids := make([]string, len(res.Bookings))
			for i, booking := range res.Bookings {
				ids[i] = booking.ID
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestBookingService_TotalRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := bookingMocks.NewMockLedger(ctrl)
	mockLedger.EXPECT().TotalRooms().Return(20)

	svc := service.New(mockLedger, newConfig(), kafkaMocks.NewMockClient(ctrl), mocks.NewOtel())

	assert.Equal(t, 20, svc.TotalRooms())
}
