package models

// DrinkCategory represents the storage-level category of a drink
type DrinkCategory string

const (
	DrinkCategoryHot         DrinkCategory = "hot"
	DrinkCategoryIce         DrinkCategory = "ice"
	DrinkCategoryFrappuccino DrinkCategory = "frappuccino"
	DrinkCategorySeasonal    DrinkCategory = "seasonal"
	DrinkCategoryUserLimited DrinkCategory = "user_limited"
)

// Drink represents a drink available in the catalog
//
// StepCount and RequiredStepCount are aggregated by the catalog query and are not stored columns.
type Drink struct {
	ID                int64         `json:"id"`
	Name              string        `json:"name"`
	ShortCode         string        `json:"shortCode,omitempty"`
	Category          DrinkCategory `json:"category"`
	SubCategory       string        `json:"subCategory,omitempty"` // free-form label, may hold a UI category label
	PracticeEnabled   bool          `json:"practiceEnabled"`
	StepCount         int           `json:"stepCount"`
	RequiredStepCount int           `json:"requiredStepCount"`
}

// Step represents one preparation step of a drink
type Step struct {
	ID           int64  `json:"id"`
	DrinkID      int64  `json:"drinkId"`
	CorrectOrder int    `json:"correctOrder"` // unique per drink
	IsRequired   bool   `json:"isRequired"`   // optional steps only apply to orders with a modifier
	Description  string `json:"description"`
}

// ModifierCatalog identifies a set of modifiers applicable to a group of drinks
type ModifierCatalog string

const (
	ModifierCatalogHotIce      ModifierCatalog = "hot_ice"
	ModifierCatalogFrappuccino ModifierCatalog = "frappuccino"
)

// ModifierCatalogFor returns the modifier catalog applicable to drinks of the given category
func ModifierCatalogFor(category DrinkCategory) ModifierCatalog {
	if category == DrinkCategoryFrappuccino {
		return ModifierCatalogFrappuccino
	}
	return ModifierCatalogHotIce
}

// Modifier represents an optional customization that can be attached to an order
type Modifier struct {
	ID                int64           `json:"id"`
	Type              string          `json:"type"`
	Name              string          `json:"name"`
	ApplicableCatalog ModifierCatalog `json:"applicableCatalog"`
	DisplayOrder      int             `json:"displayOrder"`
}
