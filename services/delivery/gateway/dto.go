package gateway

// Provider status values
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

type textValue struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

type distanceMatrixElement struct {
	Status   string    `json:"status"`
	Distance textValue `json:"distance"`
	Duration textValue `json:"duration"`
}

type distanceMatrixRow struct {
	Elements []distanceMatrixElement `json:"elements"`
}

type distanceMatrixResponse struct {
	Status       string              `json:"status"`
	ErrorMessage string              `json:"error_message,omitempty"`
	Rows         []distanceMatrixRow `json:"rows"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type addressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type geocodeResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	AddressComponents []addressComponent `json:"address_components"`
	PlaceID           string             `json:"place_id"`
	Geometry          geometry           `json:"geometry"`
}

type geocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Results      []geocodeResult `json:"results"`
}

type placeResult struct {
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Geometry         geometry `json:"geometry"`
	PlaceID          string   `json:"place_id"`
}

type placesResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Results      []placeResult `json:"results"`
}
