package models

// CleanerRegistrationInput is the payload for registering a cleaner.
type CleanerRegistrationInput struct {
	Username       string `json:"username" binding:"required,max=50"`
	Email          string `json:"email" binding:"required,email"`
	FirstName      string `json:"firstName" binding:"required,max=100"`
	LastName       string `json:"lastName" binding:"required,max=100"`
	Phone          string `json:"phone" binding:"omitempty,max=20"`
	Address        string `json:"address" binding:"required,max=255"`
	City           string `json:"city" binding:"omitempty,max=100"`
	PostalCode     string `json:"postalCode" binding:"omitempty,max=20"`
	Region         string `json:"region" binding:"omitempty,max=100"`
	Country        string `json:"country" binding:"omitempty,max=100"`
	HourlyRate     string `json:"hourlyRate" binding:"required"`
	Bio            string `json:"bio" binding:"omitempty,max=1000"`
	ProfilePicture string `json:"profilePicture" binding:"omitempty,max=500"`
}

// CustomerRegistrationInput is the payload for registering a customer.
type CustomerRegistrationInput struct {
	Username   string `json:"username" binding:"required,max=50"`
	Email      string `json:"email" binding:"required,email"`
	FirstName  string `json:"firstName" binding:"required,max=100"`
	LastName   string `json:"lastName" binding:"required,max=100"`
	Phone      string `json:"phone" binding:"omitempty,max=20"`
	Address    string `json:"address" binding:"omitempty,max=255"`
	City       string `json:"city" binding:"omitempty,max=100"`
	PostalCode string `json:"postalCode" binding:"omitempty,max=20"`
	Region     string `json:"region" binding:"omitempty,max=100"`
	Country    string `json:"country" binding:"omitempty,max=100"`
}

// AddressInput carries the fields for a customer address update.
type AddressInput struct {
	Address    string `json:"address" binding:"required,max=255"`
	City       string `json:"city" binding:"omitempty,max=100"`
	Region     string `json:"region" binding:"omitempty,max=100"`
	PostalCode string `json:"postalCode" binding:"omitempty,max=20"`
	Country    string `json:"country" binding:"omitempty,max=100"`
}
