package controller

import (
	"log"
	"sync"

	"github.com/i474232898/weather-widget/internal/weather"
)

// FallbackNotice is shown to the user when a query matched no city.
const FallbackNotice = "City not in offline list. Showing a nearby example."

// FallbackNotifier is told when a search fell back to the default entry.
type FallbackNotifier interface {
	OnFallbackUsed(query string, city weather.ResolvedCity)
}

// NotifierFunc adapts a function to FallbackNotifier.
type NotifierFunc func(query string, city weather.ResolvedCity)

func (f NotifierFunc) OnFallbackUsed(query string, city weather.ResolvedCity) {
	f(query, city)
}

// LogNotifier writes the fallback notice to the standard logger.
var LogNotifier = NotifierFunc(func(query string, city weather.ResolvedCity) {
	log.Printf("INFO: %s query=%q fallback=%s", FallbackNotice, query, city.Key)
})

// Resolver resolves free-text queries to a city.
type Resolver interface {
	Resolve(query string) weather.ResolvedCity
	Default() weather.ResolvedCity
}

// Renderer writes a city's weather to the presentation surface.
type Renderer interface {
	Render(cityKey string, rec weather.WeatherRecord)
}

// Ticker refreshes the date fields.
type Ticker interface {
	Tick()
}

// Controller wires user searches to the resolver and renderer. Searches are
// serialized so each render overwrites the surface as a whole.
type Controller struct {
	mu sync.Mutex

	resolver Resolver
	renderer Renderer
	clock    Ticker
	notifier FallbackNotifier
}

// New creates a Controller. A nil notifier logs fallbacks.
func New(resolver Resolver, renderer Renderer, clock Ticker, notifier FallbackNotifier) *Controller {
	if notifier == nil {
		notifier = LogNotifier
	}
	return &Controller{
		resolver: resolver,
		renderer: renderer,
		clock:    clock,
		notifier: notifier,
	}
}

// Start ticks the clock once and renders the default city without going
// through query matching. Periodic ticking is left to the caller's scheduler.
func (c *Controller) Start() weather.ResolvedCity {
	if c.clock != nil {
		c.clock.Tick()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	city := c.resolver.Default()
	c.renderer.Render(city.Key, city.Record)
	return city
}

// Search resolves query and renders the result. On fallback the notifier is
// called once before rendering.
func (c *Controller) Search(query string) weather.ResolvedCity {
	return c.SearchThen(query, nil)
}

// SearchThen is Search with read called after rendering while searches are
// still held off, so read observes exactly this search's render.
func (c *Controller) SearchThen(query string, read func(city weather.ResolvedCity)) weather.ResolvedCity {
	c.mu.Lock()
	defer c.mu.Unlock()

	city := c.resolver.Resolve(query)
	if city.Fallback {
		c.notifier.OnFallbackUsed(query, city)
	}
	c.renderer.Render(city.Key, city.Record)
	if read != nil {
		read(city)
	}
	return city
}
