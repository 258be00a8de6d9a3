package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/i474232898/weather-widget/internal/controller"
	"github.com/i474232898/weather-widget/internal/store"
	"github.com/i474232898/weather-widget/internal/weather"
)

var validate = validator.New()

// Widget bundles what the HTTP surface needs to drive the widget.
type Widget struct {
	Controller *controller.Controller
	Surface    *store.MemorySurface
	Catalog    *weather.Catalog

	// SearchLimiter throttles searches; nil disables throttling.
	SearchLimiter *rate.Limiter
}

// searchResponse is returned by the JSON search endpoint.
type searchResponse struct {
	State    store.RenderState `json:"state"`
	Fallback bool              `json:"fallback"`
	Notice   string            `json:"notice,omitempty"`
}

// RegisterRoutes wires the page and API handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, w *Widget) {
	limit := searchLimit(w.SearchLimiter)

	app.Get("/", func(c *fiber.Ctx) error {
		return renderPage(c, w.Surface.Snapshot(), "")
	})

	app.Get("/search", limit, func(c *fiber.Ctx) error {
		q, err := parseSearchQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		city, state := w.search(q.City)
		notice := ""
		if city.Fallback {
			notice = controller.FallbackNotice
		}
		return renderPage(c, state, notice)
	})

	v1 := app.Group("/api/v1")

	v1.Get("/widget", func(c *fiber.Ctx) error {
		return c.JSON(w.Surface.Snapshot())
	})

	v1.Get("/widget/search", limit, func(c *fiber.Ctx) error {
		q, err := parseSearchQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		city, state := w.search(q.City)
		resp := searchResponse{
			State:    state,
			Fallback: city.Fallback,
		}
		if city.Fallback {
			resp.Notice = controller.FallbackNotice
		}
		return c.JSON(resp)
	})

	v1.Get("/widget/history", func(c *fiber.Ctx) error {
		if _, err := w.Surface.Latest(); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "nothing rendered yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read render history")
		}
		return c.JSON(fiber.Map{
			"states": w.Surface.History(),
		})
	})

	v1.Get("/cities", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"cities": w.Catalog.Entries(),
		})
	})
}

// search renders query and returns the state of that render, read before
// any other search can overwrite it.
func (w *Widget) search(query string) (weather.ResolvedCity, store.RenderState) {
	var state store.RenderState
	city := w.Controller.SearchThen(query, func(weather.ResolvedCity) {
		state = w.Surface.Snapshot()
	})
	return city, state
}

// searchQuery holds the query parameters of a search. An empty city is
// allowed and resolves to the fallback entry.
type searchQuery struct {
	City string `validate:"max=100"`
}

func parseSearchQuery(c *fiber.Ctx) (searchQuery, error) {
	var q searchQuery

	q.City = c.Query("city")

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

func searchLimit(lim *rate.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if lim != nil && !lim.Allow() {
			return fiber.NewError(fiber.StatusTooManyRequests, "too many searches, slow down")
		}
		return c.Next()
	}
}
