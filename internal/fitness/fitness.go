package fitness

import "time"

// Data is one day's aggregates pulled from the external tracker API.
// Distance is in meters, matching the provider's wire unit.
type Data struct {
	Date         time.Time `json:"date"`
	Steps        int       `json:"steps"`
	Calories     float64   `json:"calories"`
	Distance     float64   `json:"distance"`
	LastSyncTime time.Time `json:"last_sync_time"`
}

// DistanceKm converts the raw meter value for display.
func (d Data) DistanceKm() float64 {
	return d.Distance / 1000
}

// DistanceMiles converts the raw meter value for display.
func (d Data) DistanceMiles() float64 {
	return d.Distance * 0.000621371
}
