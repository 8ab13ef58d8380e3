package model

// Review mirrors the `reviews` table.  A review targets a charging
// point, a service, both, or neither; the application deliberately does
// not enforce exclusivity between PointID and ServiceID.
type Review struct {
	ID        int64   `db:"id" json:"id"`
	UserID    int64   `db:"user_id" json:"user_id"`
	PointID   *int64  `db:"point_id" json:"point_id"`
	ServiceID *int64  `db:"service_id" json:"service_id"`
	Rating    int     `db:"rating" json:"rating"`
	Comment   *string `db:"comment" json:"comment"`
}
