package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/avstrong/stayhotel/internal/blog"
	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/catalog"
	"github.com/avstrong/stayhotel/internal/cms"
	"github.com/avstrong/stayhotel/internal/i18n"
)

const (
	errRoomNotFound       = "Room not found"
	errFetchRooms         = "Failed to fetch rooms"
	errInvalidBody        = "Invalid request body"
	errMissingFields      = "Missing required fields"
	errCreateBooking      = "Failed to create booking"
	errBackendUnavailable = "Booking backend unavailable"
)

func (s *Server) roomsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	adapter := s.adapters.Adapter()
	query := r.URL.Query()

	if id, slug := query.Get("id"), query.Get("slug"); id != "" || slug != "" {
		room, err := findRoom(ctx, adapter, id, slug)

		switch {
		case errors.Is(err, booking.ErrRoomNotFound):
			resp := errorResponse{Error: errRoomNotFound}

			if id != "" {
				if rooms, err := adapter.Rooms(ctx); err == nil {
					resp.Suggestion = suggestRoomID(id, rooms)
				}
			}

			s.writeError(w, http.StatusNotFound, resp)
		case err != nil:
			s.roomsFailure(w, r, err)
		default:
			s.writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: room})
		}

		return
	}

	rooms, err := adapter.Rooms(ctx)
	if err != nil {
		s.roomsFailure(w, r, err)

		return
	}

	if query.Get("available") == "true" {
		rooms = catalog.Available(rooms)
	}

	s.writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: rooms})
}

// findRoom looks a room up by id, or by slug when no id is given. A room the
// backend does not know is booking.ErrRoomNotFound.
func findRoom(ctx context.Context, adapter cms.Adapter, id, slug string) (*booking.Room, error) {
	var (
		room *booking.Room
		err  error
	)

	if id != "" {
		room, err = adapter.RoomByID(ctx, id)
	} else {
		room, err = adapter.RoomBySlug(ctx, slug)
	}

	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}

	if room == nil {
		if id == "" {
			id = slug
		}

		return nil, fmt.Errorf("room %q: %w", id, booking.ErrRoomNotFound)
	}

	return room, nil
}

func (s *Server) roomsFailure(w http.ResponseWriter, r *http.Request, err error) {
	s.l.LogErrorf("Could not fetch rooms: %v", err.Error())

	resp := errorResponse{Error: errFetchRooms}

	status := http.StatusInternalServerError
	if errors.Is(err, cms.ErrConnection) {
		status = http.StatusServiceUnavailable
		resp.Message = i18n.Message(i18n.FromContext(r.Context()), i18n.BackendDown)
	}

	s.writeError(w, status, resp)
}

func (s *Server) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locale := i18n.FromContext(ctx)

	var input booking.FormData

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&input); err != nil {
		s.writeError(w, http.StatusBadRequest, errorResponse{Error: errInvalidBody})

		return
	}

	res, err := s.bManager.CreateBooking(ctx, &input)
	if inputErr := booking.IsInputError(err); inputErr != nil {
		s.writeError(w, http.StatusBadRequest, errorResponse{
			Error:   errMissingFields,
			Message: i18n.Message(locale, i18n.MissingFields),
			Fields:  inputErr.Fields(),
		})

		return
	}

	if availabilityErr := booking.IsAvailabilityError(err); availabilityErr != nil {
		s.writeError(w, http.StatusConflict, errorResponse{
			Error:   string(booking.ErrorRoomUnavailable),
			Message: i18n.Message(locale, i18n.RoomUnavailable),
		})

		return
	}

	if backendErr := booking.IsBackendError(err); backendErr != nil {
		msg := backendErr.Result.Message
		if backendErr.Kind() == booking.ErrorConnection {
			msg = i18n.Message(locale, i18n.BackendDown)
		}

		s.writeError(w, backendStatus(backendErr.Kind()), errorResponse{
			Error:   string(backendErr.Kind()),
			Message: msg,
		})

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not create a booking: %v", err.Error())
		s.writeError(w, http.StatusInternalServerError, errorResponse{Error: errCreateBooking})

		return
	}

	s.writeJSON(w, http.StatusOK, res)
}

func backendStatus(kind booking.ErrorKind) int {
	switch kind {
	case booking.ErrorRoomUnavailable:
		return http.StatusConflict
	case booking.ErrorConnection:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

func (s *Server) blogHandler(w http.ResponseWriter, r *http.Request) {
	limit := blog.DefaultLimit

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	s.writeJSON(w, http.StatusOK, s.blog.Posts(r.Context(), blog.ClampLimit(limit)))
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// readinessHandler trusts a recent successful background probe and otherwise
// asks the backend directly.
func (s *Server) readinessHandler(w http.ResponseWriter, r *http.Request) {
	if s.probe != nil {
		if connected, ok := s.probe.Connected(); ok && connected {
			w.WriteHeader(http.StatusNoContent)

			return
		}
	}

	if !s.adapters.Adapter().IsConnected(r.Context()) {
		s.writeError(w, http.StatusServiceUnavailable, errorResponse{
			Error:   errBackendUnavailable,
			Message: i18n.Message(i18n.FromContext(r.Context()), i18n.BackendDown),
		})

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	api := func(h http.HandlerFunc) http.Handler {
		return s.applyMiddlewares(h, s.localeMiddleware(), s.recoverMiddleware(), s.loggerMiddleware())
	}

	r.Handle("GET /api/rooms", api(s.roomsHandler))
	r.Handle("POST /api/rooms", api(s.createBookingHandler))
	r.Handle("GET /api/blog", api(s.blogHandler))
	r.Handle(
		fmt.Sprintf("GET %s", s.conf.LivenessEndpoint),
		s.applyMiddlewares(http.HandlerFunc(s.livenessHandler), s.recoverMiddleware(), s.loggerMiddleware()),
	)
	r.Handle(
		fmt.Sprintf("GET %s", s.conf.ReadinessEndpoint),
		s.applyMiddlewares(
			http.HandlerFunc(s.readinessHandler), s.localeMiddleware(), s.recoverMiddleware(), s.loggerMiddleware(),
		),
	)
}
