package cms

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/catalog"
	"github.com/avstrong/stayhotel/internal/idgen/simple"
	"github.com/avstrong/stayhotel/internal/idgen/stamp"
	"github.com/avstrong/stayhotel/internal/logger"
	"github.com/avstrong/stayhotel/internal/storage/memory"
)

var fixedNow = time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newTestMock(rooms []booking.Room) *Mock {
	if rooms == nil {
		rooms = catalog.Rooms()
	}

	return NewMock(MockConfig{
		L:     logger.Discard(),
		Rooms: rooms,
		Store: memory.New(memory.Config{L: logger.Discard()}),
		IDGen: stamp.New(clock),
		Now:   clock,
	})
}

func form(roomID, checkIn, checkOut string) booking.FormData {
	return booking.FormData{
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: 2,
		GuestName:  "Lee Jiho",
		GuestEmail: "jiho@example.com",
		GuestPhone: "010-0000-0000",
	}
}

func TestMockRoomLookups(t *testing.T) {
	ctx := context.Background()
	m := newTestMock(nil)

	rooms, err := m.Rooms(ctx)
	if err != nil || len(rooms) != 7 {
		t.Fatalf("expected 7 rooms, got %d (%v)", len(rooms), err)
	}

	for _, r := range rooms {
		got, err := m.RoomBySlug(ctx, r.Slug)
		if err != nil || got == nil || got.ID != r.ID {
			t.Fatalf("RoomBySlug(%q) = %+v, %v", r.Slug, got, err)
		}
	}

	missing, err := m.RoomByID(ctx, "penthouse")
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil for missing room, got %+v, %v", missing, err)
	}
}

func TestMockCheckAvailabilityRejections(t *testing.T) {
	ctx := context.Background()

	rooms := catalog.Rooms()
	rooms[1].IsAvailable = false
	m := newTestMock(rooms)

	cases := []struct {
		name     string
		roomID   string
		checkIn  string
		checkOut string
	}{
		{name: "checkout equals checkin", roomID: "deluxe", checkIn: "2025-06-01", checkOut: "2025-06-01"},
		{name: "checkout before checkin", roomID: "deluxe", checkIn: "2025-06-03", checkOut: "2025-06-01"},
		{name: "checkin in the past", roomID: "deluxe", checkIn: "2025-05-19", checkOut: "2025-05-21"},
		{name: "unknown room", roomID: "penthouse", checkIn: "2025-06-01", checkOut: "2025-06-03"},
		{name: "room marked unavailable", roomID: rooms[1].ID, checkIn: "2025-06-01", checkOut: "2025-06-03"},
		{name: "unparsable date", roomID: "deluxe", checkIn: "June 1st", checkOut: "2025-06-03"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if m.CheckAvailability(ctx, tc.roomID, tc.checkIn, tc.checkOut) {
				t.Fatalf("expected unavailable")
			}
		})
	}

	if !m.CheckAvailability(ctx, "deluxe", "2025-05-20", "2025-05-21") {
		t.Fatalf("today must be bookable")
	}
}

func TestMockBookingBlocksItsRange(t *testing.T) {
	ctx := context.Background()
	m := newTestMock(nil)

	res := m.CreateBooking(ctx, form("deluxe", "2025-06-01", "2025-06-03"))
	if !res.Success || res.BookingID == "" || res.Error != "" {
		t.Fatalf("expected success, got %+v", res)
	}

	blocked := [][2]string{
		{"2025-06-01", "2025-06-03"},
		{"2025-06-02", "2025-06-04"},
		{"2025-05-30", "2025-06-02"},
		{"2025-06-02", "2025-06-03"},
	}
	for _, r := range blocked {
		if m.CheckAvailability(ctx, "deluxe", r[0], r[1]) {
			t.Fatalf("expected %v..%v to be unavailable", r[0], r[1])
		}
	}

	free := [][2]string{
		{"2025-06-03", "2025-06-05"},
		{"2025-05-28", "2025-06-01"},
	}
	for _, r := range free {
		if !m.CheckAvailability(ctx, "deluxe", r[0], r[1]) {
			t.Fatalf("expected %v..%v to stay available", r[0], r[1])
		}
	}

	if !m.CheckAvailability(ctx, "standard", "2025-06-01", "2025-06-03") {
		t.Fatalf("other rooms must not be affected")
	}
}

func TestMockOverlappingDeluxeBookings(t *testing.T) {
	ctx := context.Background()
	m := newTestMock(nil)

	if res := m.CreateBooking(ctx, form("deluxe", "2025-06-01", "2025-06-03")); !res.Success {
		t.Fatalf("first booking failed: %+v", res)
	}

	if m.CheckAvailability(ctx, "deluxe", "2025-06-02", "2025-06-04") {
		t.Fatalf("expected overlapping range to be unavailable")
	}

	res := m.CreateBooking(ctx, form("deluxe", "2025-06-02", "2025-06-04"))
	if res.Success || res.BookingID != "" || res.Error != booking.ErrorRoomUnavailable {
		t.Fatalf("expected ROOM_UNAVAILABLE without id, got %+v", res)
	}

	if n := len(m.Bookings(ctx)); n != 1 {
		t.Fatalf("expected 1 stored booking, got %d", n)
	}
}

func TestMockCreateBookingValidation(t *testing.T) {
	ctx := context.Background()
	m := newTestMock(nil)

	missing := form("deluxe", "2025-06-01", "2025-06-03")
	missing.GuestEmail = ""

	if res := m.CreateBooking(ctx, missing); res.Error != booking.ErrorValidation || res.Message != "Missing required fields" {
		t.Fatalf("expected missing fields failure, got %+v", res)
	}

	crowded := form("deluxe", "2025-06-01", "2025-06-03")
	crowded.GuestCount = 3

	if res := m.CreateBooking(ctx, crowded); res.Error != booking.ErrorValidation {
		t.Fatalf("expected capacity failure, got %+v", res)
	}

	if n := len(m.Bookings(ctx)); n != 0 {
		t.Fatalf("failed bookings must not be stored, got %d", n)
	}
}

func TestMockRetriesDuplicateID(t *testing.T) {
	ctx := context.Background()

	// Two generators with the same sequence force a collision on the second
	// adapter's first attempt.
	store := memory.New(memory.Config{L: logger.Discard()})
	first := NewMock(MockConfig{L: logger.Discard(), Rooms: catalog.Rooms(), Store: store, IDGen: simple.New("BK-"), Now: clock})
	second := NewMock(MockConfig{L: logger.Discard(), Rooms: catalog.Rooms(), Store: store, IDGen: simple.New("BK-"), Now: clock})

	a := first.CreateBooking(ctx, form("standard", "2025-06-01", "2025-06-02"))
	b := second.CreateBooking(ctx, form("deluxe", "2025-06-01", "2025-06-02"))

	if !a.Success || !b.Success || a.BookingID == b.BookingID {
		t.Fatalf("expected two distinct bookings, got %+v and %+v", a, b)
	}
}

func TestMockIDsUniqueAcrossManyBookings(t *testing.T) {
	ctx := context.Background()
	m := newTestMock(nil)

	seen := make(map[string]bool, 10000)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 10000; i++ {
		in := start.AddDate(0, 0, i)
		out := in.AddDate(0, 0, 1)

		res := m.CreateBooking(ctx, form("standard", booking.FormatDate(in), booking.FormatDate(out)))
		if !res.Success {
			t.Fatalf("booking %d failed: %+v", i, res)
		}

		if seen[res.BookingID] {
			t.Fatalf("duplicate booking id %q", res.BookingID)
		}

		seen[res.BookingID] = true
	}
}

func TestMockConcurrentOverlappingBookingsStoreOnlyOne(t *testing.T) {
	ctx := context.Background()
	m := newTestMock(nil)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			data := form("royal-suite", "2025-07-01", "2025-07-04")
			data.GuestName = fmt.Sprintf("guest %d", i)

			if res := m.CreateBooking(ctx, data); res.Success {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(i)
	}

	wg.Wait()

	if successes != 1 {
		t.Fatalf("expected exactly one booking to win, got %d", successes)
	}
}

func TestMockClearBookings(t *testing.T) {
	ctx := context.Background()
	m := newTestMock(nil)

	m.CreateBooking(ctx, form("deluxe", "2025-06-01", "2025-06-03"))
	m.ClearBookings(ctx)

	if n := len(m.Bookings(ctx)); n != 0 {
		t.Fatalf("expected no bookings, got %d", n)
	}

	if !m.CheckAvailability(ctx, "deluxe", "2025-06-01", "2025-06-03") {
		t.Fatalf("expected dates to be released")
	}
}

func TestMockLatencyHonoursCancellation(t *testing.T) {
	m := NewMock(MockConfig{
		L:       logger.Discard(),
		Rooms:   catalog.Rooms(),
		Store:   memory.New(memory.Config{L: logger.Discard()}),
		IDGen:   simple.New("BK-"),
		Now:     clock,
		Latency: true,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if m.IsConnected(ctx) {
		t.Fatalf("expected cancelled context to report not connected")
	}

	if _, err := m.Rooms(ctx); err == nil {
		t.Fatalf("expected cancellation error")
	}

	if res := m.CreateBooking(ctx, form("deluxe", "2025-06-01", "2025-06-03")); res.Success {
		t.Fatalf("expected cancelled booking to fail")
	}
}
