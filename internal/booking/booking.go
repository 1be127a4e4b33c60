package booking

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/avstrong/stayhotel/internal/logger"
)

// Backend is the part of the CMS adapter contract the request handler needs.
type Backend interface {
	CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) bool
	CreateBooking(ctx context.Context, data FormData) Result
}

// BackendSource returns the adapter in use at call time, so a renewed adapter
// is picked up without rebuilding the manager.
type BackendSource func() Backend

type Manager struct {
	l        *logger.Logger
	backend  BackendSource
	validate *validator.Validate
}

func New(l *logger.Logger, backend BackendSource) *Manager {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Manager{
		l:        l,
		backend:  backend,
		validate: validate,
	}
}

func (b *FormData) prepare() {
	b.RoomID = strings.TrimSpace(b.RoomID)
	b.CheckIn = strings.TrimSpace(b.CheckIn)
	b.CheckOut = strings.TrimSpace(b.CheckOut)
	b.GuestName = strings.TrimSpace(b.GuestName)
	b.GuestEmail = strings.TrimSpace(b.GuestEmail)
	b.GuestPhone = strings.TrimSpace(b.GuestPhone)
}

func (m *Manager) validateInput(input *FormData) error {
	inputErr := newInputError()

	err := m.validate.Struct(input)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate booking input: %w", err)
		}

		for _, fieldErr := range fieldErrs {
			inputErr.addError(fieldErr.Field(), fmt.Sprintf("provide %v", fieldErr.Field()))
		}
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

// CreateBooking validates the submission, asks the backend whether the room is
// free and books it. Expected failures come back as *InputError,
// *AvailabilityError or *BackendError.
func (m *Manager) CreateBooking(ctx context.Context, input *FormData) (*Result, error) {
	if input == nil {
		inputErr := newInputError()
		inputErr.addError("body", "provide booking data")

		return nil, inputErr
	}

	input.prepare()

	if err := m.validateInput(input); err != nil {
		return nil, err
	}

	backend := m.backend()

	if !backend.CheckAvailability(ctx, input.RoomID, input.CheckIn, input.CheckOut) {
		return nil, NewAvailabilityError(input.RoomID, input.CheckIn, input.CheckOut)
	}

	res := backend.CreateBooking(ctx, *input)
	if !res.Success {
		if res.Error == ErrorConnection {
			m.l.LogErrorf("Booking backend unreachable for room %v: %v", input.RoomID, res.Message)
		} else {
			m.l.LogInfo("Booking for room %v rejected: %v (%v)", input.RoomID, res.Error, res.Message)
		}

		return nil, &BackendError{Result: res}
	}

	m.l.LogInfo("Booking %v created for room %v from %v to %v", res.BookingID, input.RoomID, input.CheckIn, input.CheckOut)

	return &res, nil
}
