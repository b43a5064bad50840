package models

import "time"

// Identity is the generic account record shared by every role profile.
// Cleaners and customers reference it by sharing its ID; Active is the
// login-eligibility flag. Credential handling lives outside this service.
type Identity struct {
	ID        string    `bson:"id" json:"id"`
	Username  string    `bson:"username" json:"username"`
	Email     string    `bson:"email" json:"email"`
	FirstName string    `bson:"first_name" json:"firstName"`
	LastName  string    `bson:"last_name" json:"lastName"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
