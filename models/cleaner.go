package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CleanerStatus is a cleaner's operational status, distinct from any
// booking's status.
type CleanerStatus string

const (
	// CleanerPendingApproval is kept for backward compatibility with
	// records created before approval was removed from the flow.
	CleanerPendingApproval CleanerStatus = "PENDING_APPROVAL"
	CleanerAvailable       CleanerStatus = "AVAILABLE"
	CleanerBusy            CleanerStatus = "BUSY"
	CleanerOffline         CleanerStatus = "OFFLINE"
	CleanerOnBreak         CleanerStatus = "ON_BREAK"
)

// Valid reports whether s is a declared cleaner status.
func (s CleanerStatus) Valid() bool {
	switch s {
	case CleanerPendingApproval, CleanerAvailable, CleanerBusy,
		CleanerOffline, CleanerOnBreak:
		return true
	}
	return false
}

// Cleaner is the role profile of a service provider. It shares its ID with
// the identity record that carries the login-eligibility flag.
type Cleaner struct {
	ID             string          `bson:"id" json:"id"`
	Address        string          `bson:"address" json:"address"`
	City           string          `bson:"city,omitempty" json:"city,omitempty"`
	PostalCode     string          `bson:"postal_code,omitempty" json:"postalCode,omitempty"`
	Region         string          `bson:"region,omitempty" json:"region,omitempty"`
	Country        string          `bson:"country,omitempty" json:"country,omitempty"`
	HourlyRate     decimal.Decimal `bson:"hourly_rate" json:"hourlyRate"`
	Status         CleanerStatus   `bson:"status" json:"status"`
	Bio            string          `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfilePicture string          `bson:"profile_picture,omitempty" json:"profilePicture,omitempty"`
	CreatedAt      time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `bson:"updated_at" json:"updatedAt"`
}
