package weather

import (
	"strings"

	"github.com/i474232898/weather-widget/internal/common"
)

// Glyph is the emoji shown for the current condition.
type Glyph string

const (
	GlyphRain         Glyph = "🌧️"
	GlyphSnow         Glyph = "❄️"
	GlyphStorm        Glyph = "⛈️"
	GlyphSun          Glyph = "☀️"
	GlyphPartlySunny  Glyph = "🌤️"
	GlyphOvercast     Glyph = "☁️"
	GlyphPartlyCloudy Glyph = "🌥️"
)

// PickIcon maps a condition label and cloud cover to a glyph.
// Keywords are checked in priority order; the first hit wins.
func PickIcon(condition string, cloudPct int) Glyph {
	cond := strings.ToLower(condition)

	switch {
	case common.HasAny(cond, "rain", "shower", "drizzle"):
		return GlyphRain
	case common.HasAny(cond, "snow"):
		return GlyphSnow
	case common.HasAny(cond, "storm", "thunder"):
		return GlyphStorm
	case common.HasAny(cond, "clear", "sun"):
		if cloudPct > 30 {
			return GlyphPartlySunny
		}
		return GlyphSun
	case common.HasAny(cond, "cloud"):
		if cloudPct > 70 {
			return GlyphOvercast
		}
		return GlyphPartlyCloudy
	}

	// No keyword matched.
	if cloudPct > 60 {
		return GlyphOvercast
	}
	return GlyphPartlySunny
}
