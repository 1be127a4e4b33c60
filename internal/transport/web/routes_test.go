package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/avstrong/stayhotel/internal/blog"
	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/catalog"
	"github.com/avstrong/stayhotel/internal/cms"
	"github.com/avstrong/stayhotel/internal/form"
	"github.com/avstrong/stayhotel/internal/i18n"
	"github.com/avstrong/stayhotel/internal/idgen/stamp"
	"github.com/avstrong/stayhotel/internal/logger"
	"github.com/avstrong/stayhotel/internal/storage/memory"
)

var fixedNow = time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type staticAdapters struct {
	adapter cms.Adapter
}

func (s staticAdapters) Adapter() cms.Adapter { return s.adapter }

type downAdapter struct{}

func (downAdapter) Rooms(context.Context) ([]booking.Room, error) {
	return nil, fmt.Errorf("get rooms: %w", cms.ErrConnection)
}

func (downAdapter) RoomByID(context.Context, string) (*booking.Room, error) {
	return nil, fmt.Errorf("get room: %w", cms.ErrConnection)
}

func (downAdapter) RoomBySlug(context.Context, string) (*booking.Room, error) {
	return nil, fmt.Errorf("get room: %w", cms.ErrConnection)
}

func (downAdapter) CheckAvailability(context.Context, string, string, string) bool { return true }

func (downAdapter) CreateBooking(context.Context, booking.FormData) booking.Result {
	return booking.Failed(booking.ErrorConnection, "Failed to connect to booking system")
}

func (downAdapter) IsConnected(context.Context) bool { return false }

func newMockAdapter() *cms.Mock {
	return cms.NewMock(cms.MockConfig{
		L:     logger.Discard(),
		Rooms: catalog.Rooms(),
		Store: memory.New(memory.Config{L: logger.Discard()}),
		IDGen: stamp.New(clock),
		Now:   clock,
	})
}

type lastCheck struct {
	connected, ok bool
}

func (p lastCheck) Connected() (bool, bool) { return p.connected, p.ok }

func newTestServer(t *testing.T, adapter cms.Adapter) *Server {
	t.Helper()

	return newServerWithCheck(t, adapter, nil)
}

func newServerWithCheck(t *testing.T, adapter cms.Adapter, probe probeCache) *Server {
	t.Helper()

	l := logger.Discard()
	manager := booking.New(l, func() booking.Backend { return adapter })
	blogService := blog.New(blog.Config{L: l, Now: clock})

	srv, err := New(context.Background(), Conf{L: l}, manager, staticAdapters{adapter: adapter}, blogService, probe)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	return srv
}

type apiResponse struct {
	Success    bool                `json:"success"`
	Error      string              `json:"error"`
	Message    string              `json:"message"`
	BookingID  string              `json:"bookingId"`
	Suggestion string              `json:"suggestion"`
	Fields     map[string][]string `json:"fields"`
	Data       json.RawMessage     `json:"data"`
}

func do(t *testing.T, srv *Server, req *http.Request) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var out apiResponse

	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode %q: %v", rec.Body.String(), err)
		}
	}

	return rec, out
}

func bookingBody(t *testing.T, data booking.FormData) *bytes.Reader {
	t.Helper()

	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	return bytes.NewReader(payload)
}

func validBooking() booking.FormData {
	return booking.FormData{
		RoomID:     "deluxe",
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-03",
		GuestCount: 2,
		GuestName:  "Park Minseo",
		GuestEmail: "minseo@example.com",
		GuestPhone: "010-1234-5678",
	}
}

func TestListRooms(t *testing.T) {
	srv := newTestServer(t, newMockAdapter())

	for _, target := range []string{"/api/rooms", "/api/rooms?available=true"} {
		rec, out := do(t, srv, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusOK || !out.Success {
			t.Fatalf("%s: unexpected status %d", target, rec.Code)
		}

		var rooms []booking.Room
		if err := json.Unmarshal(out.Data, &rooms); err != nil {
			t.Fatalf("%s: decode rooms: %v", target, err)
		}

		if len(rooms) != 7 || rooms[0].ID != "standard" {
			t.Fatalf("%s: unexpected rooms %d", target, len(rooms))
		}
	}
}

func TestRoomLookups(t *testing.T) {
	srv := newTestServer(t, newMockAdapter())

	tests := []struct {
		name       string
		target     string
		status     int
		roomID     string
		suggestion string
	}{
		{name: "by id", target: "/api/rooms?id=deluxe", status: http.StatusOK, roomID: "deluxe"},
		{name: "by slug", target: "/api/rooms?slug=royal-suite", status: http.StatusOK, roomID: "royal-suite"},
		{name: "typo", target: "/api/rooms?id=deluxee", status: http.StatusNotFound, suggestion: "deluxe"},
		{name: "unknown", target: "/api/rooms?id=zzzzzzzzzzzzzz", status: http.StatusNotFound},
		{name: "unknown slug", target: "/api/rooms?slug=penthouse", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, out := do(t, srv, httptest.NewRequest(http.MethodGet, tt.target, nil))
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}

			if tt.status == http.StatusNotFound {
				if out.Success || out.Error != "Room not found" || out.Suggestion != tt.suggestion {
					t.Fatalf("unexpected not found body %+v", out)
				}

				return
			}

			var room booking.Room
			if err := json.Unmarshal(out.Data, &room); err != nil || room.ID != tt.roomID {
				t.Fatalf("expected room %q, got %q (%v)", tt.roomID, room.ID, err)
			}
		})
	}
}

func TestCreateBooking(t *testing.T) {
	srv := newTestServer(t, newMockAdapter())

	req := httptest.NewRequest(http.MethodPost, "/api/rooms", bookingBody(t, validBooking()))
	rec, out := do(t, srv, req)

	if rec.Code != http.StatusOK || !out.Success || !strings.HasPrefix(out.BookingID, "BK-") {
		t.Fatalf("unexpected response %d %+v", rec.Code, out)
	}

	if out.Message != "Booking created successfully" {
		t.Fatalf("unexpected message %q", out.Message)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/rooms?locale=en", bookingBody(t, validBooking()))
	rec, out = do(t, srv, req)

	if rec.Code != http.StatusConflict || out.Error != string(booking.ErrorRoomUnavailable) {
		t.Fatalf("expected conflict, got %d %+v", rec.Code, out)
	}

	if out.Message != i18n.Message(i18n.English, i18n.RoomUnavailable) {
		t.Fatalf("expected english message, got %q", out.Message)
	}

	if rec.Header().Get("Content-Language") != "en" {
		t.Fatalf("unexpected Content-Language %q", rec.Header().Get("Content-Language"))
	}
}

func TestCreateBookingRejections(t *testing.T) {
	srv := newTestServer(t, newMockAdapter())

	missing := validBooking()
	missing.GuestName = "  "

	crowded := validBooking()
	crowded.GuestCount = 9

	tests := []struct {
		name   string
		body   func() *bytes.Reader
		status int
		errMsg string
	}{
		{
			name:   "malformed json",
			body:   func() *bytes.Reader { return bytes.NewReader([]byte(`{"roomId":`)) },
			status: http.StatusBadRequest,
			errMsg: errInvalidBody,
		},
		{
			name:   "missing guest name",
			body:   func() *bytes.Reader { return bookingBody(t, missing) },
			status: http.StatusBadRequest,
			errMsg: errMissingFields,
		},
		{
			name:   "too many guests",
			body:   func() *bytes.Reader { return bookingBody(t, crowded) },
			status: http.StatusBadRequest,
			errMsg: string(booking.ErrorValidation),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, out := do(t, srv, httptest.NewRequest(http.MethodPost, "/api/rooms", tt.body()))
			if rec.Code != tt.status || out.Success || out.Error != tt.errMsg {
				t.Fatalf("expected %d %q, got %d %+v", tt.status, tt.errMsg, rec.Code, out)
			}
		})
	}

	_, out := do(t, srv, httptest.NewRequest(http.MethodPost, "/api/rooms", bookingBody(t, missing)))
	if _, ok := out.Fields["guestName"]; !ok {
		t.Fatalf("expected guestName in fields, got %v", out.Fields)
	}

	if out.Message != i18n.Message(i18n.Korean, i18n.MissingFields) {
		t.Fatalf("expected korean message by default, got %q", out.Message)
	}
}

func TestBackendDown(t *testing.T) {
	srv := newTestServer(t, downAdapter{})

	rec, out := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))
	if rec.Code != http.StatusServiceUnavailable || out.Error != errFetchRooms {
		t.Fatalf("expected 503, got %d %+v", rec.Code, out)
	}

	rec, out = do(t, srv, httptest.NewRequest(http.MethodGet, "/api/rooms?id=deluxe", nil))
	if rec.Code != http.StatusServiceUnavailable || out.Error != errFetchRooms {
		t.Fatalf("expected 503 for single room, got %d %+v", rec.Code, out)
	}

	if out.Message != i18n.Message(i18n.Korean, i18n.BackendDown) {
		t.Fatalf("expected localized backend message, got %q", out.Message)
	}

	rec, out = do(t, srv, httptest.NewRequest(http.MethodPost, "/api/rooms?locale=ja", bookingBody(t, validBooking())))
	if rec.Code != http.StatusServiceUnavailable || out.Error != string(booking.ErrorConnection) {
		t.Fatalf("expected connection error, got %d %+v", rec.Code, out)
	}

	if out.Message != i18n.Message(i18n.Japanese, i18n.BackendDown) {
		t.Fatalf("expected japanese backend message, got %q", out.Message)
	}

	rec, _ = do(t, srv, httptest.NewRequest(http.MethodGet, "/readiness", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected not ready, got %d", rec.Code)
	}
}

func TestProbes(t *testing.T) {
	srv := newTestServer(t, newMockAdapter())

	for _, target := range []string{"/liveness", "/readiness"} {
		rec, _ := do(t, srv, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("%s: expected 204, got %d", target, rec.Code)
		}

		if rec.Header().Get(requestIDHeader) == "" {
			t.Fatalf("%s: missing request id", target)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/liveness", nil)
	req.Header.Set(requestIDHeader, "req-42")

	rec, _ := do(t, srv, req)
	if rec.Header().Get(requestIDHeader) != "req-42" {
		t.Fatalf("request id not echoed: %q", rec.Header().Get(requestIDHeader))
	}
}

func TestBlogLimit(t *testing.T) {
	srv := newTestServer(t, newMockAdapter())

	tests := []struct {
		target string
		want   int
	}{
		{target: "/api/blog", want: blog.DefaultLimit},
		{target: "/api/blog?limit=2", want: 2},
		{target: "/api/blog?limit=abc", want: blog.DefaultLimit},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

		var out blog.FeedResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s: decode: %v", tt.target, err)
		}

		if rec.Code != http.StatusOK || !out.Success || len(out.Posts) != tt.want {
			t.Fatalf("%s: expected %d posts, got %d (status %d)", tt.target, tt.want, len(out.Posts), rec.Code)
		}
	}
}

func TestReadinessUsesLastConnectivityCheck(t *testing.T) {
	tests := []struct {
		name    string
		adapter cms.Adapter
		probe   lastCheck
		status  int
	}{
		{name: "recent check up", adapter: downAdapter{}, probe: lastCheck{connected: true, ok: true}, status: http.StatusNoContent},
		{name: "check down, live up", adapter: newMockAdapter(), probe: lastCheck{connected: false, ok: true}, status: http.StatusNoContent},
		{name: "no check yet, live down", adapter: downAdapter{}, probe: lastCheck{}, status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServerWithCheck(t, tt.adapter, tt.probe)

			rec, _ := do(t, srv, httptest.NewRequest(http.MethodGet, "/readiness", nil))
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestFindRoomNotFound(t *testing.T) {
	adapter := newMockAdapter()

	if _, err := findRoom(context.Background(), adapter, "", "penthouse"); !errors.Is(err, booking.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}

	if _, err := findRoom(context.Background(), downAdapter{}, "deluxe", ""); !errors.Is(err, cms.ErrConnection) {
		t.Fatalf("expected connection error, got %v", err)
	}
}

func TestPanicIsLoggedAsServerError(t *testing.T) {
	srv := newTestServer(t, newMockAdapter())

	var buf bytes.Buffer
	srv.l = logger.New(log.New(&buf, "", 0))

	h := srv.applyMiddlewares(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }),
		srv.recoverMiddleware(),
		srv.loggerMiddleware(),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	if !strings.Contains(buf.String(), "type: panic") || !strings.Contains(buf.String(), "status: 500") {
		t.Fatalf("expected panic and 500 access line in log, got %q", buf.String())
	}
}

func TestFormSubmitsThroughServer(t *testing.T) {
	srv := newTestServer(t, newMockAdapter())

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	newForm := func() *form.Form {
		return form.New(form.Config{
			Locale:            i18n.English,
			Rooms:             catalog.Rooms(),
			PreselectedRoomID: "family-twin",
			Submitter:         form.NewHTTPSubmitter(ts.URL, ts.Client(), i18n.English),
			Now:               clock,
		})
	}

	fill := func(t *testing.T, f *form.Form) {
		t.Helper()

		steps := []func() error{
			func() error { return f.SetDates("2025-07-10", "2025-07-12") },
			f.Next,
			func() error { return f.SetGuest("Kim Hana", "hana@example.com", "010-5555-6666") },
			f.Next,
		}

		for i, step := range steps {
			if err := step(); err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
		}
	}

	first := newForm()
	fill(t, first)

	if err := first.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if first.Step() != form.StepSuccess || !strings.HasPrefix(first.BookingID(), "BK-") {
		t.Fatalf("unexpected state %v %q", first.Step(), first.BookingID())
	}

	second := newForm()
	fill(t, second)

	err := second.Submit(context.Background())

	var submitErr *form.SubmitError
	if !errors.As(err, &submitErr) || submitErr.Kind != string(booking.ErrorRoomUnavailable) {
		t.Fatalf("expected unavailable submit error, got %v", err)
	}

	if second.Step() != form.StepConfirm || second.Error() != i18n.Message(i18n.English, i18n.RoomUnavailable) {
		t.Fatalf("unexpected state %v %q", second.Step(), second.Error())
	}
}
