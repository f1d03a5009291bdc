package models

import (
	"strconv"
	"strings"
)

// Class represents a scheduled course, as served by the external
// gym-management system. Capacity state is owned there; this service only
// reads it to decide between "Buchen" and "Warteliste".
type Class struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`  // e.g. "wod", "weightlifting", "gymnastics", "open-gym"
	Level       string `json:"level"` // "beginner", "intermediate", "advanced", "all"
	Weekday     string `json:"weekday"`
	StartTime   string `json:"start_time"` // HH:MM
	EndTime     string `json:"end_time"`   // HH:MM
	Coach       string `json:"coach"`
	SpotsTotal  int    `json:"spotsTotal"`
	SpotsBooked int    `json:"spotsBooked"`
}

// IsFull reports whether the class has no free spots left. Only then is the
// waitlist offered instead of booking.
func (c *Class) IsFull() bool {
	return c.SpotsBooked >= c.SpotsTotal
}

// Weekdays in schedule display order
var Weekdays = []string{
	"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag",
}

// TimeBucket labels for the five fixed hour ranges of the schedule filter
const (
	BucketEarly     = "early"     // 06:00 - 09:00
	BucketMorning   = "morning"   // 09:00 - 12:00
	BucketNoon      = "noon"      // 12:00 - 15:00
	BucketAfternoon = "afternoon" // 15:00 - 18:00
	BucketEvening   = "evening"   // 18:00 - 22:00
)

// TimeBucket returns the bucket the class start time falls into, or an empty
// string for times outside the schedule window.
func (c *Class) TimeBucket() string {
	hour := startHour(c.StartTime)
	switch {
	case hour >= 6 && hour < 9:
		return BucketEarly
	case hour >= 9 && hour < 12:
		return BucketMorning
	case hour >= 12 && hour < 15:
		return BucketNoon
	case hour >= 15 && hour < 18:
		return BucketAfternoon
	case hour >= 18 && hour < 22:
		return BucketEvening
	default:
		return ""
	}
}

func startHour(startTime string) int {
	parts := strings.SplitN(startTime, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return -1
	}
	return hour
}

// ClassFilters describes the schedule browser filters
type ClassFilters struct {
	Day        string
	Type       string
	Level      string
	TimeBucket string
}

// FilterClasses applies the schedule filters to a class list
func FilterClasses(classes []*Class, filters ClassFilters) []*Class {
	result := make([]*Class, 0, len(classes))

	for _, c := range classes {
		if filters.Day != "" && !strings.EqualFold(c.Weekday, filters.Day) {
			continue
		}
		if filters.Type != "" && !strings.EqualFold(c.Type, filters.Type) {
			continue
		}
		if filters.Level != "" && !strings.EqualFold(c.Level, filters.Level) {
			continue
		}
		if filters.TimeBucket != "" && c.TimeBucket() != filters.TimeBucket {
			continue
		}
		result = append(result, c)
	}

	return result
}

// GroupClassesByWeekday groups classes keyed by weekday, keeping the order of
// the Weekdays slice. Days without classes are omitted.
func GroupClassesByWeekday(classes []*Class) map[string][]*Class {
	grouped := make(map[string][]*Class)
	for _, c := range classes {
		grouped[c.Weekday] = append(grouped[c.Weekday], c)
	}
	return grouped
}

// ClassActionRequest is the body of the booking and waitlist endpoints
type ClassActionRequest struct {
	ClassID   string `json:"class_id"`
	UserID    string `json:"user_id"`
	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name"`
}

// Validate validates a booking or waitlist request
func (req *ClassActionRequest) Validate() error {
	if req.ClassID == "" {
		return ErrInvalidInput
	}
	if req.UserID == "" || req.UserEmail == "" {
		return ErrInvalidInput
	}
	return nil
}
