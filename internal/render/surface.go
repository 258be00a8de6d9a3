package render

// Slot names a display field on the presentation surface.
type Slot string

const (
	SlotCity         Slot = "cityName"
	SlotCountry      Slot = "countryName"
	SlotWeekday      Slot = "dayName"
	SlotDate         Slot = "fullDate"
	SlotTemp         Slot = "temp"
	SlotCondition    Slot = "condition"
	SlotIcon         Slot = "iconWrap"
	SlotHumidity     Slot = "humidity"
	SlotWind         Slot = "wind"
	SlotClouds       Slot = "clouds"
	SlotCard         Slot = "weatherCard"
	SlotCloudsVisual Slot = "cloudsArea"
)

// Style properties written by the renderer.
const (
	PropAriaLabel = "aria-label"
	PropOpacity   = "opacity"
)

// Surface is the set of display slots the renderer writes to.
type Surface interface {
	SetText(slot Slot, value string)
	SetStyle(slot Slot, property, value string)
}

// Committer is implemented by surfaces that want to know when a full render
// has been written.
type Committer interface {
	Commit()
}
