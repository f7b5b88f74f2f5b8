package category

// Category is one of the fixed canonical topic labels that questions
// are normalised into for selection and progress tracking. The set is
// closed; unrecognised source categories map to DefaultCategory.
type Category string

const (
	Signs         Category = "Road and traffic signs"
	Incidents     Category = "Incidents, accidents and emergencies"
	OtherVehicles Category = "Other types of vehicle"
	Handling      Category = "Vehicle handling"
	Motorway      Category = "Motorway rules"
	Rules         Category = "Rules of the road"
	Margins       Category = "Safety margins"
	VehicleSafety Category = "Safety and your vehicle"
	Vulnerable    Category = "Vulnerable road users"
	Loading       Category = "Vehicle loading"
	Alertness     Category = "Alertness"
	Attitude      Category = "Attitude"
	Documents     Category = "Documents"
)

// DefaultCategory is the fallback for source categories no keyword
// group matches. A documented policy, not an error.
const DefaultCategory = Rules

// All returns every canonical category in display order.
func All() []Category {
	return []Category{
		Signs,
		Incidents,
		OtherVehicles,
		Handling,
		Motorway,
		Rules,
		Margins,
		VehicleSafety,
		Vulnerable,
		Loading,
		Alertness,
		Attitude,
		Documents,
	}
}

// Label returns the display label.
func (c Category) Label() string {
	return string(c)
}

// Valid reports whether c is one of the canonical categories.
func (c Category) Valid() bool {
	for _, known := range All() {
		if c == known {
			return true
		}
	}
	return false
}

// FromLabel returns the canonical category with the given label, or
// DefaultCategory if the label is unknown.
func FromLabel(label string) Category {
	c := Category(label)
	if c.Valid() {
		return c
	}
	return DefaultCategory
}
