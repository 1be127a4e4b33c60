package cms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/goccy/go-json"

	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/catalog"
	"github.com/avstrong/stayhotel/internal/i18n"
	"github.com/avstrong/stayhotel/internal/logger"
)

const apiVersion = "1.0"

type RemoteConfig struct {
	L       *logger.Logger
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// Client overrides the HTTP client built from Timeout.
	Client *http.Client
}

// Remote talks to the hotel-management API and maps its payloads onto the
// site's room and booking model.
type Remote struct {
	l       *logger.Logger
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRemote(conf RemoteConfig) *Remote {
	client := conf.Client
	if client == nil {
		client = &http.Client{Timeout: conf.Timeout}
	}

	return &Remote{
		l:       conf.L,
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		apiKey:  conf.APIKey,
		client:  client,
	}
}

type remoteImage struct {
	URL       string `json:"url"`
	Caption   string `json:"caption"`
	IsPrimary bool   `json:"is_primary"`
}

type remoteRoom struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	NameEn        string        `json:"name_en"`
	Description   string        `json:"description"`
	DescriptionEn string        `json:"description_en"`
	Price         int           `json:"price"`
	MaxGuests     int           `json:"max_guests"`
	SizeSqm       int           `json:"size_sqm"`
	BedType       string        `json:"bed_type"`
	ViewType      string        `json:"view_type"`
	Amenities     []string      `json:"amenities"`
	Images        []remoteImage `json:"images"`
	IsAvailable   bool          `json:"is_available"`
}

type availabilityRequest struct {
	RoomID   string `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type availabilityResponse struct {
	RoomID       string   `json:"room_id"`
	IsAvailable  bool     `json:"is_available"`
	BlockedDates []string `json:"blocked_dates"`
}

type remoteGuest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type bookingRequest struct {
	RoomID          string      `json:"room_id"`
	CheckIn         string      `json:"check_in"`
	CheckOut        string      `json:"check_out"`
	GuestCount      int         `json:"guest_count"`
	Guest           remoteGuest `json:"guest"`
	SpecialRequests string      `json:"special_requests,omitempty"`
}

type bookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

func (r *Remote) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request %v %v: %w", method, path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("X-API-Version", apiVersion)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%v %v: %w: %v", method, path, ErrConnection, err)
	}

	return resp, nil
}

// getRoom returns nil, nil on 404.
func (r *Remote) getRoom(ctx context.Context, path string) (*booking.Room, error) {
	resp, err := r.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil //nolint:nilnil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %v returned %d: %w", path, resp.StatusCode, ErrUnexpectedStatus)
	}

	var room remoteRoom
	if err := json.NewDecoder(resp.Body).Decode(&room); err != nil {
		return nil, fmt.Errorf("decode room: %w", err)
	}

	out := transformRoom(room)

	return &out, nil
}

func (r *Remote) Rooms(ctx context.Context) ([]booking.Room, error) {
	resp, err := r.do(ctx, http.MethodGet, "/rooms", nil)
	if err != nil {
		r.l.LogErrorf("Failed to fetch rooms from remote backend: %v", err.Error())

		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET /rooms returned %d: %w", resp.StatusCode, ErrUnexpectedStatus)
	}

	var payload []remoteRoom
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}

	rooms := make([]booking.Room, 0, len(payload))
	for _, room := range payload {
		rooms = append(rooms, transformRoom(room))
	}

	return rooms, nil
}

func (r *Remote) RoomByID(ctx context.Context, id string) (*booking.Room, error) {
	room, err := r.getRoom(ctx, "/rooms/"+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("get room %v: %w", id, err)
	}

	return room, nil
}

// RoomBySlug falls back to scanning the full list when the slug endpoint fails.
func (r *Remote) RoomBySlug(ctx context.Context, slug string) (*booking.Room, error) {
	room, err := r.getRoom(ctx, "/rooms/slug/"+url.PathEscape(slug))
	if err == nil {
		return room, nil
	}

	r.l.LogWarnf("Slug lookup for %v failed, falling back to full list: %v", slug, err.Error())

	rooms, err := r.Rooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("get room by slug %v: %w", slug, err)
	}

	for i := range rooms {
		if rooms[i].Slug == slug {
			return &rooms[i], nil
		}
	}

	return nil, nil //nolint:nilnil
}

// CheckAvailability answers false on any failure so a broken backend can never
// lead to a double booking.
func (r *Remote) CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) bool {
	resp, err := r.do(ctx, http.MethodPost, "/availability/check", availabilityRequest{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		r.l.LogErrorf("Failed to check availability: %v", err.Error())

		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.l.LogErrorf("Availability check for room %v returned %d", roomID, resp.StatusCode)

		return false
	}

	var payload availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		r.l.LogErrorf("Could not decode availability response: %v", err.Error())

		return false
	}

	return payload.IsAvailable
}

func (r *Remote) CreateBooking(ctx context.Context, data booking.FormData) booking.Result {
	resp, err := r.do(ctx, http.MethodPost, "/bookings", bookingRequest{
		RoomID:     data.RoomID,
		CheckIn:    data.CheckIn,
		CheckOut:   data.CheckOut,
		GuestCount: data.GuestCount,
		Guest: remoteGuest{
			Name:  data.GuestName,
			Email: data.GuestEmail,
			Phone: data.GuestPhone,
		},
		SpecialRequests: data.SpecialRequests,
	})
	if err != nil {
		r.l.LogErrorf("Failed to create booking: %v", err.Error())

		return booking.Failed(booking.ErrorConnection, "Failed to connect to booking system")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.l.LogErrorf("Could not read booking response: %v", err.Error())

		return booking.Failed(booking.ErrorConnection, "Failed to connect to booking system")
	}

	var payload bookingResponse
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			r.l.LogErrorf("Could not decode booking response (status %d): %v", resp.StatusCode, err.Error())

			return booking.Failed(booking.ErrorUnknown, "Booking failed")
		}
	}

	if resp.StatusCode/100 != 2 || !payload.Success { //nolint:gomnd
		message := payload.Message
		if message == "" {
			message = "Booking failed"
		}

		return booking.Failed(booking.ParseErrorKind(payload.ErrorCode), message)
	}

	return booking.Succeeded(payload.BookingID, "Booking confirmed successfully")
}

func (r *Remote) IsConnected(ctx context.Context) bool {
	resp, err := r.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		r.l.LogErrorf("Remote backend connection failed: %v", err.Error())

		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode/100 == 2 //nolint:gomnd
}

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify transliterates name to ASCII and joins its words with dashes.
func Slugify(name string) string {
	s := strings.ToLower(unidecode.Unidecode(name))
	s = slugSeparators.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

var (
	bedTypes = map[string]booking.BedType{
		"single": booking.BedSingle,
		"double": booking.BedDouble,
		"twin":   booking.BedTwin,
		"queen":  booking.BedQueen,
		"king":   booking.BedKing,
	}
	viewTypes = map[string]booking.ViewType{
		"city":     booking.ViewCity,
		"garden":   booking.ViewGarden,
		"pool":     booking.ViewPool,
		"mountain": booking.ViewMountain,
		"ocean":    booking.ViewOcean,
	}
)

func transformRoom(in remoteRoom) booking.Room {
	bed, ok := bedTypes[strings.ToLower(in.BedType)]
	if !ok {
		bed = booking.BedDouble
	}

	view, ok := viewTypes[strings.ToLower(in.ViewType)]
	if !ok {
		view = booking.ViewCity
	}

	amenities := make([]booking.Amenity, 0, len(in.Amenities))
	for _, id := range in.Amenities {
		if a, ok := catalog.Amenity(strings.ToLower(id)); ok {
			amenities = append(amenities, a)
		}
	}

	images := make([]booking.Image, 0, len(in.Images))
	for _, img := range in.Images {
		images = append(images, booking.Image{URL: img.URL, Alt: img.Caption, IsPrimary: img.IsPrimary})
	}

	slugSource := in.NameEn
	if slugSource == "" {
		slugSource = in.Name
	}

	return booking.Room{
		ID:            in.ID,
		Slug:          Slugify(slugSource),
		Name:          i18n.Text{i18n.Korean: in.Name, i18n.English: in.NameEn},
		Description:   i18n.Text{i18n.Korean: in.Description, i18n.English: in.DescriptionEn},
		PricePerNight: in.Price,
		MaxGuests:     in.MaxGuests,
		Size:          in.SizeSqm,
		BedType:       bed,
		ViewType:      view,
		Amenities:     amenities,
		Images:        images,
		IsAvailable:   in.IsAvailable,
	}
}
