package models

// Business validation constants for appointments and blocked slots.
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours
	MaxNotesLength     = 2000
	MaxReasonLength    = 500
	MaxTitleLength     = 255
)

// Time format constants.
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
