package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/logger"
)

type Config struct {
	L *logger.Logger
}

// DB keeps mock bookings and the per-room blocked-date index. Every stored
// booking extends the index in the same critical section, so the index is
// always derived from records.
type DB struct {
	mu       sync.Mutex
	l        *logger.Logger
	bookings map[string]*booking.Record
	blocked  map[string]map[string]struct{}
}

func New(conf Config) *DB {
	return &DB{
		l:        conf.L,
		bookings: make(map[string]*booking.Record),
		blocked:  make(map[string]map[string]struct{}),
	}
}

func dateKey(d time.Time) string {
	return d.UTC().Format(booking.DateLayout)
}

func (db *DB) isBlocked(roomID string, nights []time.Time) bool {
	dates, ok := db.blocked[roomID]
	if !ok {
		return false
	}

	for _, night := range nights {
		if _, taken := dates[dateKey(night)]; taken {
			return true
		}
	}

	return false
}

// Blocked reports whether any of the given nights is taken for the room.
func (db *DB) Blocked(_ context.Context, roomID string, nights []time.Time) bool {
	db.mu.Lock()
	defer db.mu.Unlock()

	return db.isBlocked(roomID, nights)
}

// SaveBooking stores the record and blocks its nights. The overlap check is
// repeated under the lock, so two overlapping bookings for one room cannot both
// be stored.
func (db *DB) SaveBooking(_ context.Context, record *booking.Record, nights []time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.bookings[record.ID]; exists {
		return fmt.Errorf("save booking %v: %w", record.ID, ErrDuplicateID)
	}

	if db.isBlocked(record.RoomID, nights) {
		return fmt.Errorf("save booking for room %v: %w", record.RoomID, ErrDatesBlocked)
	}

	db.bookings[record.ID] = record

	dates, ok := db.blocked[record.RoomID]
	if !ok {
		dates = make(map[string]struct{}, len(nights))
		db.blocked[record.RoomID] = dates
	}

	for _, night := range nights {
		dates[dateKey(night)] = struct{}{}
	}

	return nil
}

// Bookings returns copies of every stored record, oldest first.
func (db *DB) Bookings(_ context.Context) []booking.Record {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]booking.Record, 0, len(db.bookings))
	for _, record := range db.bookings {
		out = append(out, *record)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}

		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}

// Clear drops all bookings and blocked dates.
func (db *DB) Clear(_ context.Context) {
	db.mu.Lock()
	defer db.mu.Unlock()

	count := len(db.bookings)

	db.bookings = make(map[string]*booking.Record)
	db.blocked = make(map[string]map[string]struct{})

	if db.l != nil {
		db.l.LogInfo("Mock storage cleared, %d bookings dropped", count)
	}
}
