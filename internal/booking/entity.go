package booking

import (
	"time"

	"github.com/avstrong/stayhotel/internal/i18n"
)

type BedType string

const (
	BedSingle BedType = "single"
	BedDouble BedType = "double"
	BedTwin   BedType = "twin"
	BedQueen  BedType = "queen"
	BedKing   BedType = "king"
)

type ViewType string

const (
	ViewCity     ViewType = "city"
	ViewGarden   ViewType = "garden"
	ViewPool     ViewType = "pool"
	ViewMountain ViewType = "mountain"
	ViewOcean    ViewType = "ocean"
)

type Amenity struct {
	ID   string    `json:"id"`
	Name i18n.Text `json:"name"`
	Icon string    `json:"icon"`
}

type Image struct {
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"isPrimary,omitempty"`
}

type Room struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Name          i18n.Text `json:"name"`
	Description   i18n.Text `json:"description"`
	PricePerNight int       `json:"pricePerNight"`
	MaxGuests     int       `json:"maxGuests"`
	Size          int       `json:"size"`
	BedType       BedType   `json:"bedType"`
	ViewType      ViewType  `json:"viewType,omitempty"`
	Amenities     []Amenity `json:"amenities"`
	Images        []Image   `json:"images"`
	IsAvailable   bool      `json:"isAvailable"`
}

// PrimaryImage returns the image flagged as primary, or the first one.
func (r *Room) PrimaryImage() (Image, bool) {
	for _, img := range r.Images {
		if img.IsPrimary {
			return img, true
		}
	}

	if len(r.Images) > 0 {
		return r.Images[0], true
	}

	return Image{}, false
}

// FormData is a booking submission as it arrives from the guest.
type FormData struct {
	RoomID          string `json:"roomId" validate:"required"`
	CheckIn         string `json:"checkIn" validate:"required"`
	CheckOut        string `json:"checkOut" validate:"required"`
	GuestCount      int    `json:"guestCount"`
	GuestName       string `json:"guestName" validate:"required"`
	GuestEmail      string `json:"guestEmail" validate:"required"`
	GuestPhone      string `json:"guestPhone" validate:"required"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

type Record struct {
	FormData

	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type ErrorKind string

const (
	ErrorValidation      ErrorKind = "VALIDATION_ERROR"
	ErrorRoomUnavailable ErrorKind = "ROOM_UNAVAILABLE"
	ErrorConnection      ErrorKind = "CONNECTION_ERROR"
	ErrorUnknown         ErrorKind = "UNKNOWN_ERROR"
)

// ParseErrorKind maps a backend error code onto a known kind; anything else is
// ErrorUnknown.
func ParseErrorKind(code string) ErrorKind {
	switch kind := ErrorKind(code); kind {
	case ErrorValidation, ErrorRoomUnavailable, ErrorConnection, ErrorUnknown:
		return kind
	default:
		return ErrorUnknown
	}
}

// Result is what a backend reports for a booking attempt. BookingID is set
// only on success, Error only on failure.
type Result struct {
	Success   bool      `json:"success"`
	BookingID string    `json:"bookingId,omitempty"`
	Message   string    `json:"message"`
	Error     ErrorKind `json:"error,omitempty"`
}

func Succeeded(id, message string) Result {
	return Result{Success: true, BookingID: id, Message: message}
}

func Failed(kind ErrorKind, message string) Result {
	return Result{Success: false, Message: message, Error: kind}
}
