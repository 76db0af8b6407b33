package company

import "time"

// DefaultAllowedRadiusMeters applies when a company has office coordinates
// but no explicit radius.
const DefaultAllowedRadiusMeters = 100

type Company struct {
	ID                  string
	Name                string
	OfficeLatitude      *float64
	OfficeLongitude     *float64
	AllowedRadiusMeters *int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Geofence is the resolved office circle for geofence checks. It only
// exists when the company has office coordinates configured.
type Geofence struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
}

// Geofence resolves the company's office circle, applying the default
// radius. Returns nil when office coordinates are not configured.
func (c Company) Geofence() *Geofence {
	if c.OfficeLatitude == nil || c.OfficeLongitude == nil {
		return nil
	}
	radius := DefaultAllowedRadiusMeters
	if c.AllowedRadiusMeters != nil && *c.AllowedRadiusMeters > 0 {
		radius = *c.AllowedRadiusMeters
	}
	return &Geofence{
		Latitude:     *c.OfficeLatitude,
		Longitude:    *c.OfficeLongitude,
		RadiusMeters: radius,
	}
}
