package v1

import (
	"time"
)

// SalesRecordResponse is the REST shape of one sales history line.
type SalesRecordResponse struct {
	ID       string  `json:"id"`
	Store    string  `json:"store"`
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
	Date     string  `json:"date"`
}

// ForecastPointResponse is the REST shape of one forecast value.
type ForecastPointResponse struct {
	Store          string  `json:"store"`
	Product        string  `json:"product"`
	Date           string  `json:"date"`
	PredictedUnits float64 `json:"predicted_units"`
}

// HealthResponse reports the health of the bound retail services.
type HealthResponse struct {
	Healthy  bool            `json:"healthy"`
	Services map[string]bool `json:"services"`
}

// FormatTime renders timestamps in the REST surface's wire format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
