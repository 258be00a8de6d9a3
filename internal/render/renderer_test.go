package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-widget/internal/weather"
)

type fakeSurface struct {
	text    map[Slot]string
	styles  map[Slot]map[string]string
	commits int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{text: map[Slot]string{}, styles: map[Slot]map[string]string{}}
}

func (f *fakeSurface) SetText(slot Slot, value string) { f.text[slot] = value }

func (f *fakeSurface) SetStyle(slot Slot, property, value string) {
	if f.styles[slot] == nil {
		f.styles[slot] = map[string]string{}
	}
	f.styles[slot][property] = value
}

func (f *fakeSurface) Commit() { f.commits++ }

// noJitter draws a positive sign with a zero delta.
type noJitter struct{ n int }

func (s *noJitter) Float64() float64 {
	s.n++
	if s.n%2 == 1 {
		return 0.9
	}
	return 0
}

func TestRenderWritesAllSlots(t *testing.T) {
	surface := newFakeSurface()
	r := NewRenderer(surface, &noJitter{})

	rec, ok := weather.DefaultCatalog().Lookup("tando adam")
	require.True(t, ok)
	r.Render("tando adam", rec)

	assert.Equal(t, "Tando Adam", surface.text[SlotCity])
	assert.Equal(t, "ID", surface.text[SlotCountry])
	assert.Equal(t, "29°C", surface.text[SlotTemp])
	assert.Equal(t, "Clouds • overcast", surface.text[SlotCondition])
	assert.Equal(t, "70%", surface.text[SlotHumidity])
	assert.Equal(t, "12 km/h", surface.text[SlotWind])
	assert.Equal(t, "75%", surface.text[SlotClouds])
	assert.Equal(t, string(weather.GlyphOvercast), surface.text[SlotIcon])
	assert.Equal(t, "0.95", surface.styles[SlotCloudsVisual][PropOpacity])
	assert.Equal(t, "Weather in Tando Adam: 29 degrees, overcast", surface.styles[SlotCard][PropAriaLabel])
	assert.Equal(t, 1, surface.commits)
}

func TestRenderKarachiJitterBounds(t *testing.T) {
	rec, _ := weather.DefaultCatalog().Lookup("karachi")
	r := NewRenderer(nil, weather.NewSource(3))

	for i := 0; i < 200; i++ {
		surface := newFakeSurface()
		r.surface = surface
		r.Render("karachi", rec)

		assert.Contains(t, []string{"31°C", "32°C", "33°C", "34°C", "35°C"}, surface.text[SlotTemp])
		assert.Contains(t, []string{"51%", "52%", "53%", "54%", "55%", "56%", "57%", "58%", "59%"}, surface.text[SlotHumidity])
		assert.Contains(t, []string{"7 km/h", "8 km/h", "9 km/h", "10 km/h", "11 km/h", "12 km/h", "13 km/h"}, surface.text[SlotWind])
		assert.Equal(t, "5%", surface.text[SlotClouds])
		assert.Equal(t, string(weather.GlyphSun), surface.text[SlotIcon])
		assert.Equal(t, "0.35", surface.styles[SlotCloudsVisual][PropOpacity])
	}
}

func TestCloudOpacity(t *testing.T) {
	assert.Equal(t, 0.35, CloudOpacity(0))
	assert.Equal(t, 0.35, CloudOpacity(40))
	assert.Equal(t, 0.70, CloudOpacity(41))
	assert.Equal(t, 0.70, CloudOpacity(70))
	assert.Equal(t, 0.95, CloudOpacity(71))
}
