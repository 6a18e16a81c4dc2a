package models

import "time"

// Service represents a bookable service offering in the catalogue.
type Service struct {
	ID                     string    `bson:"id" json:"id"`                                             // Unique service identifier (UUID)
	Name                   string    `bson:"name" json:"name"`                                         // e.g., "Consultation", "Haircut"
	DefaultDurationMinutes int       `bson:"default_duration_minutes" json:"default_duration_minutes"` // Default appointment length in minutes
	DefaultPriceCents      int64     `bson:"default_price_cents" json:"default_price_cents"`           // Default price in cents
	Color                  string    `bson:"color" json:"color"`                                       // Display color (e.g., "#4f46e5")
	IsActive               bool      `bson:"is_active" json:"is_active"`                               // Inactive services are hidden from pickers but kept for history
	CreatedAt              time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt              time.Time `bson:"updated_at" json:"updated_at"`
}
