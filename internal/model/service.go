package model

// Service mirrors the `services` table: a business listing owned by a
// user and grouped under a category.  Contact fields are nullable since
// listings are frequently created with just a name and address.
type Service struct {
	ID           int64   `db:"id" json:"id"`
	UserID       int64   `db:"user_id" json:"user_id"`
	CategoryID   int64   `db:"category_id" json:"category_id"`
	Name         string  `db:"name" json:"name"`
	Description  *string `db:"description" json:"description"`
	Address      *string `db:"address" json:"address"`
	City         *string `db:"city" json:"city"`
	State        *string `db:"state" json:"state"`
	ZipCode      *string `db:"zip_code" json:"zip_code"`
	Phone        *string `db:"phone" json:"phone"`
	Email        *string `db:"email" json:"email"`
	Website      *string `db:"website" json:"website"`
	OpeningHours *string `db:"opening_hours" json:"opening_hours"`
	Status       *string `db:"status" json:"status"`
}
