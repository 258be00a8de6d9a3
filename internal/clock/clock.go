package clock

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/i474232898/weather-widget/internal/render"
)

// dateLayouts holds the full-date layout per supported locale. The first
// entry is the fallback for unmatched locales.
var dateLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "Jan 2, 2006"},
	{language.BritishEnglish, "2 Jan 2006"},
	{language.German, "2. Jan 2006"},
	{language.Japanese, "2006/01/02"},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLayouts))
	for i, l := range dateLayouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// Clock writes the current weekday and date onto a surface.
type Clock struct {
	surface render.Surface
	loc     *time.Location
	layout  string
	now     func() time.Time
}

// New creates a Clock for the given locale tag (e.g. "en-US") and time zone.
// A nil location means local time.
func New(surface render.Surface, locale string, loc *time.Location) (*Clock, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	if loc == nil {
		loc = time.Local
	}
	return &Clock{
		surface: surface,
		loc:     loc,
		layout:  LayoutFor(tag),
		now:     time.Now,
	}, nil
}

// LayoutFor returns the full-date layout closest to tag.
func LayoutFor(tag language.Tag) string {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return dateLayouts[idx].layout
}

// Tick writes the short weekday name and the full date.
func (c *Clock) Tick() {
	now := c.now().In(c.loc)
	c.surface.SetText(render.SlotWeekday, now.Format("Mon"))
	c.surface.SetText(render.SlotDate, now.Format(c.layout))
}
