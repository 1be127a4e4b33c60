// Package form drives a guest through the booking steps: dates, room, guest
// info, confirmation and success. It validates each step before moving on and
// submits the finished booking through a Submitter.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/catalog"
	"github.com/avstrong/stayhotel/internal/i18n"
	"github.com/avstrong/stayhotel/internal/idgen/stamp"
)

const defaultGuestCount = 2

var (
	ErrSubmitting        = errors.New("booking submission already in progress")
	ErrNotConfirmStep    = errors.New("booking can only be submitted from the confirm step")
	ErrNotSuccessStep    = errors.New("form can only be reset after a successful booking")
	ErrInvalidTransition = errors.New("no such transition from the current step")
)

type ValidationError struct {
	Step    Step
	Key     i18n.MessageKey
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %v: %v", e.Step, e.Key)
}

// SubmitError is a booking the backend turned down.
type SubmitError struct {
	Kind    string
	Message string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("booking rejected: %v: %v", e.Kind, e.Message)
}

type Response struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

type Submitter interface {
	Submit(ctx context.Context, data booking.FormData) (*Response, error)
}

type Config struct {
	Locale            i18n.Locale
	Rooms             []booking.Room
	PreselectedRoomID string
	// Submitter defaults to an HTTPSubmitter posting to BaseURL.
	Submitter Submitter
	BaseURL   string
	Now       func() time.Time
}

type Form struct {
	mu          sync.Mutex
	locale      i18n.Locale
	rooms       []booking.Room
	preselected string
	submitter   Submitter
	now         func() time.Time

	step       Step
	data       booking.FormData
	errMsg     string
	submitting bool
	bookingID  string
}

func New(conf Config) *Form {
	if conf.Now == nil {
		conf.Now = time.Now
	}

	if conf.Locale == "" {
		conf.Locale = i18n.Default
	}

	if conf.Submitter == nil {
		conf.Submitter = NewHTTPSubmitter(conf.BaseURL, nil, conf.Locale)
	}

	f := &Form{
		locale:      conf.Locale,
		rooms:       conf.Rooms,
		preselected: conf.PreselectedRoomID,
		submitter:   conf.Submitter,
		now:         conf.Now,
	}

	f.data = f.defaults()

	return f
}

func (f *Form) defaults() booking.FormData {
	today := booking.Day(f.now())

	return booking.FormData{
		RoomID:     f.preselected,
		CheckIn:    booking.FormatDate(today),
		CheckOut:   booking.FormatDate(today.AddDate(0, 0, 1)),
		GuestCount: defaultGuestCount,
	}
}

func (f *Form) fail(step Step, key i18n.MessageKey) error {
	f.errMsg = i18n.Message(f.locale, key)

	return &ValidationError{Step: step, Key: key, Message: f.errMsg}
}

// Next validates the current step and advances. The room step is skipped when
// a room is already chosen.
func (f *Form) Next() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if validate, ok := validators[f.step]; ok {
		if key, ok := validate(&f.data); !ok {
			return f.fail(f.step, key)
		}
	}

	switch f.step {
	case StepDates:
		if f.data.RoomID != "" {
			f.step = StepInfo
		} else {
			f.step = StepRoom
		}
	case StepRoom:
		f.step = StepInfo
	case StepInfo:
		f.step = StepConfirm
	default:
		return fmt.Errorf("next from %v: %w", f.step, ErrInvalidTransition)
	}

	f.errMsg = ""

	return nil
}

func (f *Form) Prev() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case StepRoom:
		f.step = StepDates
	case StepInfo:
		if f.preselected != "" {
			f.step = StepDates
		} else {
			f.step = StepRoom
		}
	case StepConfirm:
		if f.submitting {
			return ErrSubmitting
		}

		f.step = StepInfo
	default:
		return fmt.Errorf("prev from %v: %w", f.step, ErrInvalidTransition)
	}

	f.errMsg = ""

	return nil
}

// Submit sends the booking from the confirm step. Only one submission may be
// in flight; the form state is untouched until the response arrives.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()

	if f.step != StepConfirm {
		f.mu.Unlock()

		return ErrNotConfirmStep
	}

	if f.submitting {
		f.mu.Unlock()

		return ErrSubmitting
	}

	for _, step := range []Step{StepDates, StepRoom, StepInfo} {
		if key, ok := validators[step](&f.data); !ok {
			err := f.fail(step, key)
			f.mu.Unlock()

			return err
		}
	}

	f.submitting = true
	f.errMsg = ""
	data := f.data

	f.mu.Unlock()

	resp, err := f.submitter.Submit(ctx, data)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.submitting = false

	if err != nil {
		f.errMsg = i18n.Message(f.locale, i18n.BookingFailed)

		return fmt.Errorf("submit booking: %w", err)
	}

	if resp == nil || !resp.Success {
		msg := i18n.Message(f.locale, i18n.BookingFailed)
		kind := ""

		if resp != nil {
			kind = resp.Error

			if resp.Message != "" {
				msg = resp.Message
			}
		}

		f.errMsg = msg

		return &SubmitError{Kind: kind, Message: msg}
	}

	f.bookingID = resp.BookingID
	if f.bookingID == "" {
		f.bookingID = stamp.Fallback(f.now())
	}

	f.step = StepSuccess

	return nil
}

// Reset starts a fresh booking after a successful one. The preselected room
// only applies to the first booking; afterwards the guest picks again.
func (f *Form) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepSuccess {
		return ErrNotSuccessStep
	}

	f.preselected = ""
	f.data = f.defaults()
	f.errMsg = ""
	f.bookingID = ""
	f.step = StepDates

	return nil
}

// Update edits the form data and clears the visible error.
func (f *Form) Update(edit func(d *booking.FormData)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitting {
		return ErrSubmitting
	}

	edit(&f.data)
	f.errMsg = ""

	return nil
}

func (f *Form) SetDates(checkIn, checkOut string) error {
	return f.Update(func(d *booking.FormData) {
		d.CheckIn = checkIn
		d.CheckOut = checkOut
	})
}

func (f *Form) SelectRoom(roomID string) error {
	return f.Update(func(d *booking.FormData) { d.RoomID = roomID })
}

func (f *Form) SetGuestCount(n int) error {
	return f.Update(func(d *booking.FormData) { d.GuestCount = n })
}

func (f *Form) SetGuest(name, email, phone string) error {
	return f.Update(func(d *booking.FormData) {
		d.GuestName = name
		d.GuestEmail = email
		d.GuestPhone = phone
	})
}

func (f *Form) SetSpecialRequests(s string) error {
	return f.Update(func(d *booking.FormData) { d.SpecialRequests = s })
}

func (f *Form) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.step
}

// StepIndex is the position in IndicatorSteps; success reports
// len(IndicatorSteps).
func (f *Form) StepIndex() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, s := range IndicatorSteps {
		if s == f.step {
			return i
		}
	}

	return len(IndicatorSteps)
}

func (f *Form) Data() booking.FormData {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.data
}

func (f *Form) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.errMsg
}

func (f *Form) BookingID() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.bookingID
}

func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.submitting
}

func (f *Form) selectedRoom() *booking.Room {
	for i := range f.rooms {
		if f.rooms[i].ID == f.data.RoomID {
			return &f.rooms[i]
		}
	}

	return nil
}

func (f *Form) SelectedRoom() (booking.Room, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	room := f.selectedRoom()
	if room == nil {
		return booking.Room{}, false
	}

	return *room, true
}

func (f *Form) Nights() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return booking.NightsBetween(f.data.CheckIn, f.data.CheckOut)
}

// TotalPrice is the nightly price times the number of nights, 0 without a room.
func (f *Form) TotalPrice() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	room := f.selectedRoom()
	if room == nil {
		return 0
	}

	return room.PricePerNight * booking.NightsBetween(f.data.CheckIn, f.data.CheckOut)
}

// Summary is what the confirm step shows for the chosen room.
type Summary struct {
	RoomName   string
	ImageURL   string
	ImageAlt   string
	Nights     int
	Total      int
	TotalLabel string
}

// Summary describes the selected room and stay in the form's locale; ok is
// false until a room is chosen.
func (f *Form) Summary() (Summary, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	room := f.selectedRoom()
	if room == nil {
		return Summary{}, false
	}

	nights := booking.NightsBetween(f.data.CheckIn, f.data.CheckOut)
	total := room.PricePerNight * nights

	sum := Summary{
		RoomName:   room.Name.Get(f.locale),
		Nights:     nights,
		Total:      total,
		TotalLabel: catalog.FormatPrice(total, f.locale),
	}

	if img, ok := room.PrimaryImage(); ok {
		sum.ImageURL = img.URL
		sum.ImageAlt = img.Alt
	}

	return sum, true
}
