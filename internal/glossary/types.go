package glossary

type Category string

const (
	CategoryRules Category = "Rules"
	CategoryWheel Category = "Wheel"
)

type Subcategory string

const (
	SubcategoryItems  Subcategory = "Items"
	SubcategoryEvents Subcategory = "Events"
	SubcategoryTraps  Subcategory = "Traps"
)

// Entry is one rule or wheel outcome shown in the glossary.
type Entry struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Category    Category    `json:"category"`
	Subcategory Subcategory `json:"subcategory,omitempty"`
	Description string      `json:"description"`
}
