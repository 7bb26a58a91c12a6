// Package availability stores weekly schedules and blocked days for
// registered providers.
package availability

import "time"

// DaysOfWeek is the fixed day order of the weekly template.
var DaysOfWeek = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// TimeZones is the fixed list of selectable time zones.
var TimeZones = []string{
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Paris",
	"Asia/Tokyo",
	"Asia/Kolkata",
}

// DayAvailability is one row of the weekly template.
type DayAvailability struct {
	Day     string `json:"day"`
	From    string `json:"from_time"`
	Till    string `json:"to_time"`
	Enabled bool   `json:"enabled"`
}

// BlockDay is a single blocked calendar date.
type BlockDay struct {
	Date string `json:"date"`
	From string `json:"from_time"`
	Till string `json:"to_time"`
}

// Schedule is a provider's saved availability. Week holds only the enabled
// days of the submitted template.
type Schedule struct {
	ProviderID string            `json:"provider_id"`
	TimeZone   string            `json:"time_zone"`
	Week       []DayAvailability `json:"availability"`
	BlockDays  []BlockDay        `json:"block_days"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// DefaultWeek returns the weekly template's starting values: every day
// 09:00 to 18:00, Sunday disabled.
func DefaultWeek() []DayAvailability {
	week := make([]DayAvailability, len(DaysOfWeek))
	for i, day := range DaysOfWeek {
		week[i] = DayAvailability{
			Day:     day,
			From:    "09:00",
			Till:    "18:00",
			Enabled: day != "Sunday",
		}
	}
	return week
}

// NewBlockDay returns a blocked day with the default 09:00 to 17:00 window.
func NewBlockDay(date string) BlockDay {
	return BlockDay{Date: date, From: "09:00", Till: "17:00"}
}
