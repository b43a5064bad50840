package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingCompleted  BookingStatus = "COMPLETED"
	BookingCancelled  BookingStatus = "CANCELLED"
	// BookingNoShow is terminal and only ever set through the generic
	// status update path; no lifecycle operation reaches it.
	BookingNoShow BookingStatus = "NO_SHOW"
)

// Valid reports whether s is a declared booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress,
		BookingCompleted, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}

// Active reports whether a booking in this status blocks its cleaner's
// calendar day. Only cancelled bookings free the day.
func (s BookingStatus) Active() bool {
	return s != BookingCancelled
}

// Booking represents a scheduled cleaning appointment. It is owned by
// exactly one customer and assigned to exactly one cleaner.
type Booking struct {
	ID                  string          `bson:"id" json:"id"`
	CustomerID          string          `bson:"customer_id" json:"customerId"`
	CleanerID           string          `bson:"cleaner_id" json:"cleanerId"`
	BookingDate         time.Time       `bson:"booking_date" json:"bookingDate"`
	DurationHours       int             `bson:"duration_hours" json:"durationHours"`
	TotalAmount         decimal.Decimal `bson:"total_amount" json:"totalAmount"`
	Status              BookingStatus   `bson:"status" json:"status"`
	SpecialInstructions string          `bson:"special_instructions,omitempty" json:"specialInstructions,omitempty"`
	ServiceAddress      string          `bson:"service_address,omitempty" json:"serviceAddress,omitempty"`
	CreatedAt           time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time       `bson:"updated_at" json:"updatedAt"`
}
