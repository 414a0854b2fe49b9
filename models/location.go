package models

import (
	"time"
)

// DefaultLocationRadius is the geofence radius in meters applied when the
// admin does not set one.
const DefaultLocationRadius = 100.0

// CompanyConfig is an admin-managed office location. Employees are
// assigned to one via User.AssignedLocationID and attendance records point
// back through LastVerifiedLocationID.
type CompanyConfig struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Latitude  float64   `json:"latitude" bson:"latitude"`
	Longitude float64   `json:"longitude" bson:"longitude"`
	Radius    float64   `json:"radius" bson:"radius"`
	CreatedAt time.Time `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at,omitempty"`
}

type LocationCreatePayload struct {
	Name      string  `json:"name" validate:"required,min=2,max=100"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	Radius    float64 `json:"radius" validate:"omitempty,gt=0,max=10000"`
}

type LocationUpdatePayload struct {
	Name      string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Latitude  float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Radius    float64 `json:"radius,omitempty" validate:"omitempty,gt=0,max=10000"`
}
