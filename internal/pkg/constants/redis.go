package constants

// Redis key formats
const (
	// Lookup cache
	KeyGeocode = "geocode:%s" // Format: geocode:{geohash}
	KeySearch  = "search:%s"  // Format: search:{normalized query}

	// Rate Limiting
	KeyRateLimitIP = "rate:ip" // Prefix, suffixed with {route}:{ip}
)

// GeocodeHashPrecision is the geohash length used for reverse-geocode cache keys.
// Nine characters is a cell of roughly 5 m.
const GeocodeHashPrecision = 9
