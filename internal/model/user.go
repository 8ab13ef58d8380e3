package model

import "time"

// User represents an application user record as stored in the `users`
// table.  The password hash is mapped for the repository layer but is
// never serialized: the json:"-" tag strips it from every response,
// which is the only place the "password never leaves the API" rule
// needs to be enforced.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name.
//  Email        – unique email address.
//  Password     – bcrypt hashed password (never serialized).
//  UserType     – account type (e.g. "owner", "driver").
//  Phone        – contact phone number (nullable).
//  City/State   – profile location (nullable).
//  VehicleModel – EV model driven by the user (nullable).
type User struct {
	ID           int64      `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	Password     string     `db:"password" json:"-"`
	UserType     string     `db:"user_type" json:"user_type"`
	Phone        *string    `db:"phone" json:"phone"`
	City         *string    `db:"city" json:"city"`
	State        *string    `db:"state" json:"state"`
	VehicleModel *string    `db:"vehicle_model" json:"vehicle_model"`
	CreatedAt    *time.Time `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
