// Package terminal renders the widget card as styled text for a terminal.
package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/i474232898/weather-widget/internal/render"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2a3850")).
			Padding(1, 2)

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d6dae0"))
	tempStyle    = lipgloss.NewStyle().Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
)

// Card is a render.Surface that lays its slots out as a bordered box.
type Card struct {
	text   map[render.Slot]string
	styles map[render.Slot]map[string]string
}

func NewCard() *Card {
	return &Card{
		text:   make(map[render.Slot]string),
		styles: make(map[render.Slot]map[string]string),
	}
}

func (c *Card) SetText(slot render.Slot, value string) {
	c.text[slot] = value
}

func (c *Card) SetStyle(slot render.Slot, property, value string) {
	if c.styles[slot] == nil {
		c.styles[slot] = make(map[string]string)
	}
	c.styles[slot][property] = value
}

// Text returns the value last written to slot.
func (c *Card) Text(slot render.Slot) string {
	return c.text[slot]
}

// Style returns the value last written to a slot's style property.
func (c *Card) Style(slot render.Slot, property string) string {
	return c.styles[slot][property]
}

// View lays out the card. Heavier cloud cover draws a denser border.
func (c *Card) View() string {
	t := c.text
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s, %s", t[render.SlotCity], t[render.SlotCountry])),
		mutedStyle.Render(strings.TrimSpace(t[render.SlotWeekday] + " " + t[render.SlotDate])),
		"",
		fmt.Sprintf("%s  %s", t[render.SlotIcon], tempStyle.Render(t[render.SlotTemp])),
		t[render.SlotCondition],
		"",
		fmt.Sprintf("Humidity %s   Wind %s   Clouds %s", t[render.SlotHumidity], t[render.SlotWind], t[render.SlotClouds]),
	}

	style := cardStyle
	if op, err := strconv.ParseFloat(c.Style(render.SlotCloudsVisual, render.PropOpacity), 64); err == nil && op > 0.9 {
		style = style.Border(lipgloss.ThickBorder())
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Warning styles a user-facing notice line.
func Warning(msg string) string {
	return warningStyle.Render("! " + msg)
}
