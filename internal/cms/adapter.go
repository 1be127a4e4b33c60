// Package cms defines the backend contract the site books through and its two
// implementations: an in-memory mock and a client for the remote
// hotel-management API.
package cms

import (
	"context"
	"errors"
	"time"

	"github.com/avstrong/stayhotel/internal/booking"
)

var (
	ErrConnection       = errors.New("booking backend unreachable")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// Adapter is implemented by every booking backend. Expected conditions
// (missing room, unavailable dates, rejected booking) are reported through
// return values, never through errors.
type Adapter interface {
	// Rooms returns all rooms in display order. A backend that cannot be
	// reached returns an error wrapping ErrConnection, never an empty list.
	Rooms(ctx context.Context) ([]booking.Room, error)
	// RoomByID and RoomBySlug return nil, nil for a room that does not exist.
	RoomByID(ctx context.Context, id string) (*booking.Room, error)
	RoomBySlug(ctx context.Context, slug string) (*booking.Room, error)
	// CheckAvailability treats [checkIn, checkOut) as half-open: the checkout
	// day is not occupied.
	CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) bool
	// CreateBooking re-checks availability before committing.
	CreateBooking(ctx context.Context, data booking.FormData) booking.Result
	IsConnected(ctx context.Context) bool
}

// StayRange parses both dates and checks them against today: check-in may not
// be in the past and check-out must come strictly after check-in.
func StayRange(checkIn, checkOut string, now time.Time) (time.Time, time.Time, bool) {
	in, err := booking.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	out, err := booking.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	if in.Before(booking.Day(now)) || !out.After(in) {
		return time.Time{}, time.Time{}, false
	}

	return in, out, true
}
