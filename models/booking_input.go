package models

// BookingInput is the payload for creating a booking.
type BookingInput struct {
	CustomerID          string `json:"customerId" binding:"required"`
	CleanerID           string `json:"cleanerId" binding:"required"`
	BookingDate         string `json:"bookingDate" binding:"required"`
	DurationHours       int    `json:"durationHours" binding:"required,gt=0"`
	SpecialInstructions string `json:"specialInstructions" binding:"omitempty,max=500"`
	ServiceAddress      string `json:"serviceAddress" binding:"omitempty,max=255"`
}

// BookingUpdateInput carries the editable booking fields for privileged
// edits. Status changes go through the lifecycle endpoints instead.
type BookingUpdateInput struct {
	BookingDate         string `json:"bookingDate" binding:"omitempty"`
	DurationHours       int    `json:"durationHours" binding:"omitempty,gt=0"`
	SpecialInstructions string `json:"specialInstructions" binding:"omitempty,max=500"`
	ServiceAddress      string `json:"serviceAddress" binding:"omitempty,max=255"`
}
