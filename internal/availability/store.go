package availability

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/healthfirst/portal-api/internal/registration"
)

var (
	// ErrScheduleNotFound is returned when a provider has no saved schedule
	ErrScheduleNotFound = errors.New("schedule not found")
)

// SaveRequest is the submitted availability form.
type SaveRequest struct {
	TimeZone  string            `json:"time_zone"`
	Week      []DayAvailability `json:"availability"`
	BlockDays []BlockDay        `json:"block_days"`
}

// Validate runs the form rules: a known time zone, well-formed HH:MM windows
// on enabled days, and dated block windows.
func (r *SaveRequest) Validate() registration.Errors {
	var errs registration.Errors
	add := func(field, message string) {
		errs = append(errs, registration.FieldError{Field: field, Message: message})
	}

	if !validTimeZone(r.TimeZone) {
		add("time_zone", "Time zone is required")
	}

	for _, day := range r.Week {
		if !validDay(day.Day) {
			add("availability", "Unknown day: "+day.Day)
			continue
		}
		if !day.Enabled {
			continue
		}
		from, errFrom := time.Parse("15:04", day.From)
		till, errTill := time.Parse("15:04", day.Till)
		if errFrom != nil || errTill != nil {
			add("availability", day.Day+": times must use HH:MM")
			continue
		}
		if !from.Before(till) {
			add("availability", day.Day+": from time must be before to time")
		}
	}

	for _, block := range r.BlockDays {
		if _, err := time.Parse("2006-01-02", block.Date); err != nil {
			add("block_days", "Block date must use YYYY-MM-DD")
			continue
		}
		from, errFrom := time.Parse("15:04", block.From)
		till, errTill := time.Parse("15:04", block.Till)
		if errFrom != nil || errTill != nil {
			add("block_days", block.Date+": times must use HH:MM")
			continue
		}
		if !from.Before(till) {
			add("block_days", block.Date+": from time must be before to time")
		}
	}

	return errs
}

func validTimeZone(tz string) bool {
	for _, z := range TimeZones {
		if z == tz {
			return true
		}
	}
	return false
}

func validDay(day string) bool {
	for _, d := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// Store keeps one schedule per provider in memory.
type Store struct {
	mu        sync.RWMutex
	schedules map[string]*Schedule
}

// NewStore creates a new in-memory schedule store
func NewStore() *Store {
	return &Store{
		schedules: make(map[string]*Schedule),
	}
}

// Save validates and stores a provider's schedule. Only enabled days of the
// weekly template are kept, matching the submitted form's save behavior.
func (s *Store) Save(ctx context.Context, providerID string, req SaveRequest) (*Schedule, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	week := make([]DayAvailability, 0, len(req.Week))
	for _, day := range req.Week {
		if day.Enabled {
			week = append(week, day)
		}
	}

	schedule := &Schedule{
		ProviderID: providerID,
		TimeZone:   req.TimeZone,
		Week:       week,
		BlockDays:  req.BlockDays,
		UpdatedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.schedules[providerID] = schedule
	s.mu.Unlock()

	return schedule, nil
}

// Get returns a provider's saved schedule.
func (s *Store) Get(ctx context.Context, providerID string) (*Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schedule, ok := s.schedules[providerID]
	if !ok {
		return nil, ErrScheduleNotFound
	}
	return schedule, nil
}

// Delete removes a provider's saved schedule if present.
func (s *Store) Delete(ctx context.Context, providerID string) {
	s.mu.Lock()
	delete(s.schedules, providerID)
	s.mu.Unlock()
}
