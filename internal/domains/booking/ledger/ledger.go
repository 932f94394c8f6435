package ledger

//go:generate go run go.uber.org/mock/mockgen -source=./ledger.go -destination=../mocks/ledger_mock.go -package=mocks

import (
	"fmt"
	"hotel/config"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ledger allocates rooms to stays and answers availability and guest queries.
// It is safe for concurrent use.
type Ledger interface {
	// CreateBooking places the stay in the lowest-numbered room with no clashing booking.
	CreateBooking(guestName string, arrival, checkout time.Time) (model.Booking, error)
	// AvailableRooms lists, in ascending order, the rooms free at the given instant.
	AvailableRooms(date time.Time) []int
	// BookingsForGuest returns the bookings whose guest name fully matches the
	// regular expression pattern, ordered by room number then booking order.
	BookingsForGuest(pattern string) ([]model.Booking, error)
	TotalRooms() int
}

type Option func(*roomLedger)

// WithOperator sets the CreatedBy recorded on new bookings.
func WithOperator(operator string) Option {
	return func(l *roomLedger) {
		l.operator = operator
	}
}

// WithClock sets the source of CreatedAt for new bookings.
func WithClock(now func() time.Time) Option {
	return func(l *roomLedger) {
		l.now = now
	}
}

type roomLedger struct {
	roomCount int
	operator  string
	now       func() time.Time

	// mu guards rooms. CreateBooking holds it exclusively across the whole
	// scan so the room it picks cannot be claimed in between.
	mu    sync.RWMutex
	rooms [][]model.Booking // rooms[n-1] holds room n's bookings in booking order
}

func New(roomCount int, opts ...Option) (Ledger, error) {
	if roomCount < 1 {
		return nil, failure.InvalidRoomCountError
	}

	l := &roomLedger{
		roomCount: roomCount,
		now:       time.Now,
		rooms:     make([][]model.Booking, roomCount),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// NewFromConfig builds a ledger sized by APP_ROOMS that stamps bookings with
// APP_OPERATOR and the application clock.
func NewFromConfig(cfg *config.Config) (Ledger, error) {
	return New(cfg.App.Rooms, WithOperator(cfg.App.Operator), WithClock(timezone.Now))
}

func (l *roomLedger) TotalRooms() int {
	return l.roomCount
}

func (l *roomLedger) CreateBooking(guestName string, arrival, checkout time.Time) (model.Booking, error) {
	if strings.TrimSpace(guestName) == constant.Empty {
		return model.Booking{}, failure.GuestNameRequiredError
	}

	if !arrival.Before(checkout) {
		return model.Booking{}, failure.InvalidInterval(fmt.Sprintf(
			"arrival %s must be before checkout %s",
			arrival.Format(constant.DateTimeFormat), checkout.Format(constant.DateTimeFormat),
		))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i, bookings := range l.rooms {
		if clashesAny(bookings, arrival, checkout) {
			continue
		}

		booking := model.Booking{
			ID:         uuid.NewString(),
			GuestName:  guestName,
			RoomNumber: i + 1,
			Arrival:    arrival,
			Checkout:   checkout,
			Metadata: gModel.Metadata{
				CreatedAt: l.now(),
				CreatedBy: l.operator,
			},
		}
		l.rooms[i] = append(bookings, booking)

		return booking, nil
	}

	return model.Booking{}, failure.NoRoomAvailableError
}

func (l *roomLedger) AvailableRooms(date time.Time) []int {
	available := make([]int, 0, l.roomCount)

	l.mu.RLock()
	defer l.mu.RUnlock()

	for i, bookings := range l.rooms {
		if !clashesAny(bookings, date, date) {
			available = append(available, i+1)
		}
	}

	return available
}

func (l *roomLedger) BookingsForGuest(pattern string) ([]model.Booking, error) {
	// The bare pattern is compiled first so that input like "a)|(b" cannot
	// escape the anchors added below.
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, failure.InvalidPattern(fmt.Errorf("invalid guest name pattern %q: %w", pattern, err))
	}

	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, failure.InvalidPattern(fmt.Errorf("invalid guest name pattern %q: %w", pattern, err))
	}

	matches := []model.Booking{}

	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, bookings := range l.rooms {
		for _, booking := range bookings {
			if re.MatchString(booking.GuestName) {
				matches = append(matches, booking)
			}
		}
	}

	return matches, nil
}

func clashesAny(bookings []model.Booking, arrive, checkout time.Time) bool {
	for _, existing := range bookings {
		if clashes(existing, arrive, checkout) {
			return true
		}
	}

	return false
}

// clashes reports whether [arrive, checkout) shares time with existing.
// Touching boundaries never clash, so a room can be handed over on the day
// its previous guest checks out. A zero-length interval clashes only with
// bookings that strictly span it.
func clashes(existing model.Booking, arrive, checkout time.Time) bool {
	arrivesDuring := arrive.After(existing.Arrival) && arrive.Before(existing.Checkout)
	leavesDuring := checkout.After(existing.Arrival) && checkout.Before(existing.Checkout)
	covers := !arrive.After(existing.Arrival) && !checkout.Before(existing.Checkout)

	return arrivesDuring || leavesDuring || covers
}
