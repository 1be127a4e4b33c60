package cms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/logger"
	"github.com/avstrong/stayhotel/internal/storage/memory"
)

const (
	roomsDelay        = 100 * time.Millisecond
	roomDelay         = 50 * time.Millisecond
	availabilityDelay = 200 * time.Millisecond
	bookingDelay      = 500 * time.Millisecond
	healthDelay       = 50 * time.Millisecond

	maxIDAttempts = 3
)

type idGenerator interface {
	GetID(ctx context.Context) (string, error)
}

type bookingStore interface {
	Blocked(ctx context.Context, roomID string, nights []time.Time) bool
	SaveBooking(ctx context.Context, record *booking.Record, nights []time.Time) error
	Bookings(ctx context.Context) []booking.Record
	Clear(ctx context.Context)
}

type MockConfig struct {
	L     *logger.Logger
	Rooms []booking.Room
	Store bookingStore
	IDGen idGenerator
	Now   func() time.Time
	// Latency turns on the artificial per-call delays.
	Latency bool
}

type Mock struct {
	l       *logger.Logger
	rooms   []booking.Room
	store   bookingStore
	idGen   idGenerator
	now     func() time.Time
	latency bool
}

func NewMock(conf MockConfig) *Mock {
	now := conf.Now
	if now == nil {
		now = time.Now
	}

	return &Mock{
		l:       conf.L,
		rooms:   conf.Rooms,
		store:   conf.Store,
		idGen:   conf.IDGen,
		now:     now,
		latency: conf.Latency,
	}
}

func (m *Mock) delay(ctx context.Context, d time.Duration) error {
	if !m.latency {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (m *Mock) find(match func(r *booking.Room) bool) *booking.Room {
	for i := range m.rooms {
		if match(&m.rooms[i]) {
			room := m.rooms[i]

			return &room
		}
	}

	return nil
}

func (m *Mock) Rooms(ctx context.Context) ([]booking.Room, error) {
	if err := m.delay(ctx, roomsDelay); err != nil {
		return nil, fmt.Errorf("list mock rooms: %w", err)
	}

	out := make([]booking.Room, len(m.rooms))
	copy(out, m.rooms)

	return out, nil
}

func (m *Mock) RoomByID(ctx context.Context, id string) (*booking.Room, error) {
	if err := m.delay(ctx, roomDelay); err != nil {
		return nil, fmt.Errorf("get mock room %v: %w", id, err)
	}

	return m.find(func(r *booking.Room) bool { return r.ID == id }), nil
}

func (m *Mock) RoomBySlug(ctx context.Context, slug string) (*booking.Room, error) {
	if err := m.delay(ctx, roomDelay); err != nil {
		return nil, fmt.Errorf("get mock room by slug %v: %w", slug, err)
	}

	return m.find(func(r *booking.Room) bool { return r.Slug == slug }), nil
}

// nights returns the nights to block when the room can take the stay.
func (m *Mock) nights(ctx context.Context, roomID, checkIn, checkOut string) ([]time.Time, bool) {
	in, out, ok := StayRange(checkIn, checkOut, m.now())
	if !ok {
		return nil, false
	}

	room := m.find(func(r *booking.Room) bool { return r.ID == roomID })
	if room == nil || !room.IsAvailable {
		return nil, false
	}

	nights := booking.StayDates(in, out)
	if m.store.Blocked(ctx, roomID, nights) {
		return nil, false
	}

	return nights, true
}

func (m *Mock) CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) bool {
	if err := m.delay(ctx, availabilityDelay); err != nil {
		return false
	}

	_, ok := m.nights(ctx, roomID, checkIn, checkOut)

	return ok
}

func (m *Mock) CreateBooking(ctx context.Context, data booking.FormData) booking.Result {
	if err := m.delay(ctx, bookingDelay); err != nil {
		return booking.Failed(booking.ErrorUnknown, "Booking request was cancelled")
	}

	if data.RoomID == "" || data.CheckIn == "" || data.CheckOut == "" || data.GuestName == "" || data.GuestEmail == "" {
		return booking.Failed(booking.ErrorValidation, "Missing required fields")
	}

	room := m.find(func(r *booking.Room) bool { return r.ID == data.RoomID })
	if room != nil && (data.GuestCount < 1 || data.GuestCount > room.MaxGuests) {
		return booking.Failed(
			booking.ErrorValidation,
			fmt.Sprintf("Guest count must be between 1 and %d", room.MaxGuests),
		)
	}

	nights, ok := m.nights(ctx, data.RoomID, data.CheckIn, data.CheckOut)
	if !ok {
		return booking.Failed(booking.ErrorRoomUnavailable, "Room is not available for the selected dates")
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := m.idGen.GetID(ctx)
		if err != nil {
			m.l.LogErrorf("Could not generate booking id: %v", err.Error())

			return booking.Failed(booking.ErrorUnknown, "Could not create booking")
		}

		record := &booking.Record{
			FormData:  data,
			ID:        id,
			CreatedAt: m.now().UTC(),
		}

		err = m.store.SaveBooking(ctx, record, nights)

		switch {
		case err == nil:
			m.l.LogInfo("Mock booking %v stored for room %v (%d nights)", id, data.RoomID, len(nights))

			return booking.Succeeded(id, "Booking created successfully")
		case errors.Is(err, memory.ErrDatesBlocked):
			return booking.Failed(booking.ErrorRoomUnavailable, "Room is not available for the selected dates")
		case errors.Is(err, memory.ErrDuplicateID):
			continue
		default:
			m.l.LogErrorf("Could not store mock booking: %v", err.Error())

			return booking.Failed(booking.ErrorUnknown, "Could not create booking")
		}
	}

	return booking.Failed(booking.ErrorUnknown, "Could not allocate a booking id")
}

func (m *Mock) IsConnected(ctx context.Context) bool {
	return m.delay(ctx, healthDelay) == nil
}

// Bookings dumps every stored booking. Diagnostic use only.
func (m *Mock) Bookings(ctx context.Context) []booking.Record {
	return m.store.Bookings(ctx)
}

// ClearBookings drops all bookings and blocked dates.
func (m *Mock) ClearBookings(ctx context.Context) {
	m.store.Clear(ctx)
}
