package store

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-widget/internal/render"
)

var (
	// ErrNotFound is returned when nothing has been rendered yet.
	ErrNotFound = errors.New("no render state available")
)

// RenderState is the set of values currently displayed by the widget.
type RenderState struct {
	ID        string    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"` // always UTC

	City      string  `json:"city"`
	Country   string  `json:"country"`
	Weekday   string  `json:"weekday"`
	Date      string  `json:"date"`
	Temp      string  `json:"temp"`
	Condition string  `json:"condition"`
	Icon      string  `json:"icon"`
	Humidity  string  `json:"humidity"`
	Wind      string  `json:"wind"`
	Clouds    string  `json:"clouds"`
	AriaLabel string  `json:"ariaLabel"`
	Opacity   float64 `json:"cloudOpacity"`
}

// MemorySurface is a concurrency-safe in-memory presentation surface.
// Render writes are staged and become visible together on Commit; the
// weekday and date slots are written by the clock and are always live.
// Every Commit records the published state in a bounded history.
type MemorySurface struct {
	mu sync.RWMutex

	// staged render writes, published on Commit
	text   map[render.Slot]string
	styles map[render.Slot]map[string]string

	weekday string
	date    string

	current    RenderState
	history    []RenderState
	maxHistory int // 0 = unlimited
	now        func() time.Time
}

// NewMemorySurface creates a surface keeping at most maxHistory committed states.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemorySurface(maxHistory int) *MemorySurface {
	return &MemorySurface{
		text:       make(map[render.Slot]string),
		styles:     make(map[render.Slot]map[string]string),
		maxHistory: maxHistory,
		now:        time.Now,
	}
}

func (s *MemorySurface) SetText(slot render.Slot, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch slot {
	case render.SlotWeekday:
		s.weekday = value
	case render.SlotDate:
		s.date = value
	default:
		s.text[slot] = value
	}
}

func (s *MemorySurface) SetStyle(slot render.Slot, property, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	props, ok := s.styles[slot]
	if !ok {
		props = make(map[string]string)
		s.styles[slot] = props
	}
	props[property] = value
}

// Commit publishes the staged writes as the current state, appends it to
// the history and enforces retention.
func (s *MemorySurface) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	opacity, _ := strconv.ParseFloat(s.styles[render.SlotCloudsVisual][render.PropOpacity], 64)
	state := RenderState{
		ID:        uuid.NewString(),
		Timestamp: s.now().UTC(),
		City:      s.text[render.SlotCity],
		Country:   s.text[render.SlotCountry],
		Weekday:   s.weekday,
		Date:      s.date,
		Temp:      s.text[render.SlotTemp],
		Condition: s.text[render.SlotCondition],
		Icon:      s.text[render.SlotIcon],
		Humidity:  s.text[render.SlotHumidity],
		Wind:      s.text[render.SlotWind],
		Clouds:    s.text[render.SlotClouds],
		AriaLabel: s.styles[render.SlotCard][render.PropAriaLabel],
		Opacity:   opacity,
	}
	s.current = state

	s.history = append(s.history, state)
	if s.maxHistory > 0 && len(s.history) > s.maxHistory {
		over := len(s.history) - s.maxHistory
		s.history = s.history[over:]
	}
}

// Snapshot returns the last committed state with the current clock fields.
// Writes of a render still in progress are never visible.
func (s *MemorySurface) Snapshot() RenderState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.current
	state.Weekday = s.weekday
	state.Date = s.date
	return state
}

// Latest returns the most recently committed state.
func (s *MemorySurface) Latest() (RenderState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.history) == 0 {
		return RenderState{}, ErrNotFound
	}
	return s.history[len(s.history)-1], nil
}

// History returns committed states, oldest first.
func (s *MemorySurface) History() []RenderState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]RenderState, len(s.history))
	copy(out, s.history)
	return out
}
