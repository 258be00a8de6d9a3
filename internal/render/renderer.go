package render

import (
	"fmt"
	"strconv"

	"github.com/i474232898/weather-widget/internal/common"
	"github.com/i474232898/weather-widget/internal/weather"
)

// Jitter variances applied to the displayed readings.
const (
	TempVariance     = 2
	HumidityVariance = 4
	WindVariance     = 3
)

// Renderer writes a city's weather onto a Surface.
type Renderer struct {
	surface Surface
	rnd     weather.Source
}

// NewRenderer creates a Renderer drawing jitter from rnd.
func NewRenderer(surface Surface, rnd weather.Source) *Renderer {
	return &Renderer{surface: surface, rnd: rnd}
}

// Render overwrites every weather slot of the surface for the given city.
// Jittered values are not clamped.
func (r *Renderer) Render(cityKey string, rec weather.WeatherRecord) {
	name := common.TitleWords(cityKey)
	temp := weather.Jitter(r.rnd, rec.BaseTempC, TempVariance)
	humidity := weather.Jitter(r.rnd, rec.HumidityPct, HumidityVariance)
	wind := weather.Jitter(r.rnd, rec.WindKmh, WindVariance)

	s := r.surface
	s.SetText(SlotCity, name)
	s.SetText(SlotCountry, rec.CountryCode)
	s.SetText(SlotTemp, fmt.Sprintf("%d°C", temp))
	s.SetText(SlotCondition, fmt.Sprintf("%s • %s", rec.Condition, rec.Description))
	s.SetText(SlotHumidity, fmt.Sprintf("%d%%", humidity))
	s.SetText(SlotWind, fmt.Sprintf("%d km/h", wind))
	s.SetText(SlotClouds, fmt.Sprintf("%d%%", rec.CloudPct))
	s.SetText(SlotIcon, string(weather.PickIcon(string(rec.Condition), rec.CloudPct)))

	s.SetStyle(SlotCloudsVisual, PropOpacity, strconv.FormatFloat(CloudOpacity(rec.CloudPct), 'f', 2, 64))
	s.SetStyle(SlotCard, PropAriaLabel, fmt.Sprintf("Weather in %s: %d degrees, %s", name, temp, rec.Description))

	if c, ok := s.(Committer); ok {
		c.Commit()
	}
}

// CloudOpacity is the intensity of the cloud visual for a cloud cover.
func CloudOpacity(cloudPct int) float64 {
	switch {
	case cloudPct > 70:
		return 0.95
	case cloudPct > 40:
		return 0.70
	default:
		return 0.35
	}
}
