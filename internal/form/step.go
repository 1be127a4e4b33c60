package form

import (
	"regexp"
	"strings"

	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/i18n"
)

type Step int

const (
	StepDates Step = iota
	StepRoom
	StepInfo
	StepConfirm
	StepSuccess
)

var stepNames = [...]string{"dates", "room", "info", "confirm", "success"}

func (s Step) String() string {
	if s < StepDates || s > StepSuccess {
		return "unknown"
	}

	return stepNames[s]
}

// IndicatorSteps are the steps shown in the progress indicator.
var IndicatorSteps = []Step{StepDates, StepRoom, StepInfo, StepConfirm}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// stepValidator returns the message to show when the step's data is not good
// enough to move on.
type stepValidator func(d *booking.FormData) (i18n.MessageKey, bool)

var validators = map[Step]stepValidator{
	StepDates: validateDates,
	StepRoom:  validateRoom,
	StepInfo:  validateInfo,
}

func validateDates(d *booking.FormData) (i18n.MessageKey, bool) {
	if d.CheckIn == "" || d.CheckOut == "" {
		return i18n.InvalidDates, false
	}

	in, err := booking.ParseDate(d.CheckIn)
	if err != nil {
		return i18n.InvalidDates, false
	}

	out, err := booking.ParseDate(d.CheckOut)
	if err != nil || !out.After(in) {
		return i18n.InvalidDates, false
	}

	return "", true
}

func validateRoom(d *booking.FormData) (i18n.MessageKey, bool) {
	if d.RoomID == "" {
		return i18n.SelectRoom, false
	}

	return "", true
}

func validateInfo(d *booking.FormData) (i18n.MessageKey, bool) {
	if strings.TrimSpace(d.GuestName) == "" {
		return i18n.RequiredField, false
	}

	if !emailPattern.MatchString(d.GuestEmail) {
		return i18n.InvalidEmail, false
	}

	if strings.TrimSpace(d.GuestPhone) == "" {
		return i18n.InvalidPhone, false
	}

	return "", true
}
