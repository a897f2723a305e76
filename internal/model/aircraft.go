package model

// Aircraft is read-only for the seeder; rows are expected to exist before a
// route referencing them is materialized.
type Aircraft struct {
	AircraftID int `json:"aircraft_id" db:"aircraft_id"`
	Capacity   int `json:"capacity" db:"capacity"`
}
