package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	_, err := NewCatalog()
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	dup := Entry{Key: "x", Record: WeatherRecord{CountryCode: "XX"}}
	_, err = NewCatalog(dup, dup)
	assert.ErrorIs(t, err, ErrDuplicateCity)

	cat, err := NewCatalog(
		Entry{Key: "b", Record: WeatherRecord{BaseTempC: 2}},
		Entry{Key: "a", Record: WeatherRecord{BaseTempC: 1}},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, cat.Keys())

	rec, ok := cat.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, rec.BaseTempC)

	_, ok = cat.Lookup("c")
	assert.False(t, ok)
}

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()
	require.Equal(t, 13, cat.Len())
	assert.Equal(t, DefaultCityKey, cat.Keys()[0])

	rec, ok := cat.Lookup("karachi")
	require.True(t, ok)
	assert.Equal(t, WeatherRecord{"PK", 33, ConditionClear, "sunny", 55, 10, 5}, rec)

	_, ok = cat.Lookup("tando adam")
	assert.True(t, ok)

	// Keys must be returned as a copy.
	keys := cat.Keys()
	keys[0] = "mutated"
	assert.Equal(t, DefaultCityKey, cat.Keys()[0])
}
