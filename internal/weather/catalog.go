package weather

import (
	"errors"
	"fmt"
)

// DefaultCityKey is the primary city rendered at startup and used as fallback.
const DefaultCityKey = "karachi"

var (
	// ErrEmptyCatalog is returned when a catalog is built without entries.
	ErrEmptyCatalog = errors.New("city catalog is empty")
	// ErrDuplicateCity is returned when two entries share a key.
	ErrDuplicateCity = errors.New("duplicate city in catalog")
	// ErrUnknownDefault is returned when the configured default city is not cataloged.
	ErrUnknownDefault = errors.New("default city is not in catalog")
)

// Entry pairs a catalog key with its record.
type Entry struct {
	Key    string        `json:"key"`
	Record WeatherRecord `json:"record"`
}

// Catalog is an immutable, ordered mapping from lowercase city key to record.
type Catalog struct {
	keys    []string
	records map[string]WeatherRecord
}

// NewCatalog builds a catalog preserving the order of entries.
func NewCatalog(entries ...Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		keys:    make([]string, 0, len(entries)),
		records: make(map[string]WeatherRecord, len(entries)),
	}
	for _, e := range entries {
		if _, exists := c.records[e.Key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCity, e.Key)
		}
		c.keys = append(c.keys, e.Key)
		c.records[e.Key] = e.Record
	}
	return c, nil
}

// Lookup returns the record stored for key.
func (c *Catalog) Lookup(key string) (WeatherRecord, bool) {
	r, ok := c.records[key]
	return r, ok
}

// Keys returns the catalog keys in stored order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Entries returns every entry in stored order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, Entry{Key: k, Record: c.records[k]})
	}
	return out
}

// Len returns the number of cataloged cities.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// DefaultCatalog returns the built-in offline city list.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(builtinCities...)
	if err != nil {
		panic(err)
	}
	return c
}

var builtinCities = []Entry{
	{"karachi", WeatherRecord{"PK", 33, ConditionClear, "sunny", 55, 10, 5}},
	{"lahore", WeatherRecord{"PK", 35, ConditionClear, "hot", 40, 12, 8}},
	{"islamabad", WeatherRecord{"PK", 28, ConditionClouds, "partly cloudy", 60, 8, 45}},
	{"peshawar", WeatherRecord{"PK", 34, ConditionClear, "sunny", 30, 14, 2}},
	{"quetta", WeatherRecord{"PK", 22, ConditionClouds, "cloudy", 50, 9, 60}},
	{"multan", WeatherRecord{"PK", 36, ConditionClear, "hot", 28, 11, 3}},
	{"hyderabad", WeatherRecord{"PK", 30, ConditionClouds, "hazy", 65, 13, 30}},
	{"sukkhar", WeatherRecord{"IN", 31, ConditionRain, "light rain", 78, 9, 85}},
	{"kashmir", WeatherRecord{"IN", 34, ConditionClear, "hot", 35, 10, 5}},
	{"tando adam", WeatherRecord{"ID", 29, ConditionClouds, "overcast", 70, 12, 75}},
	{"rawalpindi", WeatherRecord{"GB", 18, ConditionClouds, "cloudy", 80, 15, 60}},
	{"sanghar", WeatherRecord{"US", 23, ConditionRain, "shower", 70, 20, 90}},
	{"miyanwali", WeatherRecord{"AU", 16, ConditionClear, "sunny", 55, 18, 10}},
}
