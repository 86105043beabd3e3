package models

// Category classifies a catalog event. The set is open: values outside
// the known constants are accepted and labeled by title-casing.
type Category string

const (
	CategoryVenue         Category = "venue"
	CategoryFood          Category = "food"
	CategoryTravel        Category = "travel"
	CategoryEntertainment Category = "entertainment"
	CategoryAccommodation Category = "accommodation"
	CategoryOther         Category = "other"
)

var categoryLabels = map[Category]string{
	CategoryVenue:         "Venue",
	CategoryFood:          "Food & Beverage",
	CategoryTravel:        "Travel",
	CategoryEntertainment: "Entertainment",
	CategoryAccommodation: "Accommodation",
	CategoryOther:         "Other",
}

// KnownCategories lists the canonical categories in display order.
var KnownCategories = []Category{
	CategoryVenue,
	CategoryFood,
	CategoryTravel,
	CategoryEntertainment,
	CategoryAccommodation,
	CategoryOther,
}

// Label returns the human-readable name for a category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	if c == "" {
		return categoryLabels[CategoryOther]
	}
	// Unknown category: title-case the raw value rather than dropping it.
	b := []byte(c)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// Event is a reusable catalog entry: a bookable activity or line item
// with its pricing rule. Duration is a free-text label, not a parsed
// time span.
type Event struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Duration      string   `json:"duration"`
	PerPersonCost float64  `json:"perPersonCost"`
	MinimumCost   float64  `json:"minimumCost"`
	Category      Category `json:"category"`
}
