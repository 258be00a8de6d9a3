package weather

// Condition is the short condition label carried by a catalog record
// (for example "Clear" or "Clouds").
type Condition string

const (
	ConditionClear  Condition = "Clear"
	ConditionClouds Condition = "Clouds"
	ConditionRain   Condition = "Rain"
)

// WeatherRecord is the static reading stored for a city in the catalog.
// Percentages are integers in [0,100]; temperature and wind are plain numbers.
type WeatherRecord struct {
	CountryCode string    `json:"country"`
	BaseTempC   int       `json:"tempC"`
	Condition   Condition `json:"condition"`
	Description string    `json:"description"`
	HumidityPct int       `json:"humidityPercent"`
	WindKmh     int       `json:"windKmh"`
	CloudPct    int       `json:"cloudsPercent"`
}

// ResolvedCity is the result of resolving a free-text query against the catalog.
type ResolvedCity struct {
	Key    string        `json:"key"`
	Record WeatherRecord `json:"record"`

	// Fallback is set when nothing matched and the fallback entry was returned.
	Fallback bool `json:"fallback"`
}
