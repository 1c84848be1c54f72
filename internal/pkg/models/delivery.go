package models

// EstimationMethod tags which strategy produced a DistanceResult
type EstimationMethod string

const (
	MethodGeometric EstimationMethod = "geometric"
	MethodRouted    EstimationMethod = "routed"
)

// RouteLeg is a single origin/destination element returned by the routing provider
type RouteLeg struct {
	DistanceMeters  float64
	DurationSeconds float64
	DistanceText    string
	DurationText    string
}

// DistanceResult is the distance and travel time between two coordinates.
// DistanceKm is rounded to one decimal, DurationMin to the nearest minute.
type DistanceResult struct {
	DistanceKm   float64          `json:"distance"`
	DurationMin  int              `json:"duration"`
	Method       EstimationMethod `json:"method"`
	DistanceText string           `json:"distanceText,omitempty"`
	DurationText string           `json:"durationText,omitempty"`
}

// DeliveryEstimate is the customer-facing delivery time derived from a DistanceResult
type DeliveryEstimate struct {
	Distance        float64 `json:"distance"`
	PreparationTime int     `json:"preparationTime"`
	TravelTime      int     `json:"travelTime"`
	BufferTime      int     `json:"-"`
	TotalTime       int     `json:"totalTime"`
	FormattedTime   string  `json:"formattedTime"`
}
