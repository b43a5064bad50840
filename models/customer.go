package models

import "time"

// Customer is the role profile of a booking requester. It shares its ID
// with an identity record.
type Customer struct {
	ID         string    `bson:"id" json:"id"`
	Address    string    `bson:"address,omitempty" json:"address,omitempty"`
	City       string    `bson:"city,omitempty" json:"city,omitempty"`
	PostalCode string    `bson:"postal_code,omitempty" json:"postalCode,omitempty"`
	Region     string    `bson:"region,omitempty" json:"region,omitempty"`
	Country    string    `bson:"country,omitempty" json:"country,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}
