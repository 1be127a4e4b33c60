package web

import (
	"strings"

	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/avstrong/stayhotel/internal/booking"
)

const maxSuggestionDistance = 3

// suggestRoomID returns the room id closest to a mistyped one, or "" when
// nothing is near enough.
func suggestRoomID(id string, rooms []booking.Room) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" || len(rooms) == 0 {
		return ""
	}

	ids := make([]string, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}

	best := closestmatch.New(ids, []int{2, 3}).Closest(id)
	if best == "" {
		return ""
	}

	if levenshtein.DistanceForStrings([]rune(id), []rune(best), levenshtein.DefaultOptions) > maxSuggestionDistance {
		return ""
	}

	return best
}
