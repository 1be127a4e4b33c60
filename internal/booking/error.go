package booking

import (
	"errors"
	"fmt"
	"sort"
)

var ErrRoomNotFound = errors.New("room not found")

type AvailabilityError struct {
	RoomID   string
	CheckIn  string
	CheckOut string
}

func NewAvailabilityError(roomID, checkIn, checkOut string) *AvailabilityError {
	return &AvailabilityError{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
}

func IsAvailabilityError(err error) *AvailabilityError {
	if err == nil {
		return nil
	}

	var availabilityError *AvailabilityError

	if errors.As(err, &availabilityError) {
		return availabilityError
	}

	return nil
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("room '%v' is unavailable from %v to %v", e.RoomID, e.CheckIn, e.CheckOut)
}

func (e *AvailabilityError) Kind() ErrorKind {
	return ErrorRoomUnavailable
}

type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}

// FieldNames lists the offending fields in a stable order.
func (ie *InputError) FieldNames() []string {
	names := make([]string, 0, len(ie.fields))
	for name := range ie.fields {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (ie *InputError) Kind() ErrorKind {
	return ErrorValidation
}

// BackendError carries a failed Result from the adapter unchanged.
type BackendError struct {
	Result Result
}

func IsBackendError(err error) *BackendError {
	if err == nil {
		return nil
	}

	var backendError *BackendError

	if errors.As(err, &backendError) {
		return backendError
	}

	return nil
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend rejected booking: %v: %v", e.Result.Error, e.Result.Message)
}

func (e *BackendError) Kind() ErrorKind {
	if e.Result.Error == "" {
		return ErrorUnknown
	}

	return e.Result.Error
}
