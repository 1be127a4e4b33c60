package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/logger"
)

type bookingCreator interface {
	CreateBooking(ctx context.Context, data booking.FormData) booking.Result
}

type demoStay struct {
	roomID      string
	startOffset int
	nights      int
	guests      int
	guestName   string
}

var demoStays = []demoStay{
	{roomID: "deluxe", startOffset: 3, nights: 2, guests: 2, guestName: "Demo Guest Kim"},
	{roomID: "royal-suite", startOffset: 7, nights: 3, guests: 2, guestName: "Demo Guest Lee"},
	{roomID: "family-twin", startOffset: 1, nights: 1, guests: 4, guestName: "Demo Guest Park"},
	{roomID: "party-suite", startOffset: 14, nights: 1, guests: 6, guestName: "Demo Guest Choi"},
}

// Up places demo bookings relative to today through the adapter, so blocked
// dates only ever come from real records.
func Up(ctx context.Context, l *logger.Logger, adapter bookingCreator, now time.Time) error {
	today := booking.Day(now)

	for _, stay := range demoStays {
		checkIn := today.AddDate(0, 0, stay.startOffset)
		checkOut := checkIn.AddDate(0, 0, stay.nights)

		res := adapter.CreateBooking(ctx, booking.FormData{
			RoomID:     stay.roomID,
			CheckIn:    booking.FormatDate(checkIn),
			CheckOut:   booking.FormatDate(checkOut),
			GuestCount: stay.guests,
			GuestName:  stay.guestName,
			GuestEmail: "demo@stayhotel.example",
			GuestPhone: "000-0000-0000",
		})
		if !res.Success {
			return fmt.Errorf("seed demo booking for room %v: %v: %v", stay.roomID, res.Error, res.Message)
		}

		l.LogInfo("Demo booking %v seeded for room %v", res.BookingID, stay.roomID)
	}

	return nil
}
