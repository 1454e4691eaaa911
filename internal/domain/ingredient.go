package domain

// CategoryUnknown is the category assigned to ingredients the vendor's
// ingredient index does not list. The value follows the vendor site's
// language, like every other category label scraped from it.
const CategoryUnknown = "Unbekannt"

// Ingredient represents one ingredient scraped from its vendor detail page.
// An Ingredient is immutable once constructed and is shared by reference
// between all ready mixes that contain it.
type Ingredient struct {
	ID             string   `json:"ingredientId"`
	Name           string   `json:"name"`
	Subtitle       string   `json:"subtitle,omitempty"`
	Type           string   `json:"ingredientType"`
	Hints          []string `json:"hints"`
	Description    string   `json:"description,omitempty"`
	SubIngredients []string `json:"subIngredients"`
}

// IngredientPage holds the raw fields parsed from an ingredient detail page,
// before the type classifier has assigned a category.
type IngredientPage struct {
	Name           string
	Subtitle       string
	Hints          []string
	Description    string
	SubIngredients []string
}
