package model

// Category is a flat lookup table entry used to group services and
// classified ads.
type Category struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Icon        *string `db:"icon" json:"icon"`
	Description *string `db:"description" json:"description"`
}
