package model

// ChargingPoint mirrors the `charging_points` table.  Coordinates are
// required at creation time; the remaining attributes describe the
// connector and pricing and may be absent.
type ChargingPoint struct {
	ID            int64    `db:"id" json:"id"`
	UserID        int64    `db:"user_id" json:"user_id"`
	Name          string   `db:"name" json:"name"`
	Address       *string  `db:"address" json:"address"`
	City          *string  `db:"city" json:"city"`
	State         *string  `db:"state" json:"state"`
	Latitude      float64  `db:"latitude" json:"latitude"`
	Longitude     float64  `db:"longitude" json:"longitude"`
	ConnectorType *string  `db:"connector_type" json:"connector_type"`
	PowerKW       *float64 `db:"power_kw" json:"power_kw"`
	CostPerKWh    *float64 `db:"cost_per_kwh" json:"cost_per_kwh"`
	Availability  *string  `db:"availability" json:"availability"`
	OpeningHours  *string  `db:"opening_hours" json:"opening_hours"`
	Amenities     *string  `db:"amenities" json:"amenities"`
}
