// Package category derives the user-facing category of a drink from its name and labels
package category

import (
	"slices"
	"strings"

	"github.com/baristadrill/backend/internal/models"
)

// Labels are the explicit category labels a drink may carry as its sub category
var Labels = []string{
	"コーヒー",
	"エスプレッソ",
	"フラペチーノ",
	"ティー",
	"その他",
}

// MapToUI returns the UI category of a drink.
//
// Rules are evaluated in order and the first match wins:
//  1. explicit label in the sub category
//  2. frappuccino by storage category or name
//  3. tea by sub category or name
//  4. coffee by name (americano, drip, coffee)
//  5. other by chocolate/cocoa keywords
//  6. espresso family by name (espresso, latte, mocha, macchiato, cappuccino)
//  7. espresso
func MapToUI(drink models.Drink) models.UICategory {
	name := drink.Name
	sub := drink.SubCategory

	if sub != "" && slices.Contains(Labels, sub) {
		switch {
		case strings.Contains(sub, "コーヒ"):
			return models.UICategoryCoffee
		case strings.Contains(sub, "エスプレッソ"):
			return models.UICategoryEspresso
		case strings.Contains(sub, "フラペチーノ"):
			return models.UICategoryFrappuccino
		case strings.Contains(sub, "ティー"):
			return models.UICategoryTea
		default:
			return models.UICategoryOther
		}
	}

	if drink.Category == models.DrinkCategoryFrappuccino || strings.Contains(name, "フラペ") {
		return models.UICategoryFrappuccino
	}

	if strings.Contains(sub, "ティー") || strings.Contains(name, "ティー") {
		return models.UICategoryTea
	}

	if containsAny(name, "アメリカーノ", "ドリップ", "コーヒー") {
		return models.UICategoryCoffee
	}

	if strings.Contains(sub, "チョコ") || containsAny(name, "チョコ", "ココア") {
		return models.UICategoryOther
	}

	if containsAny(name, "エスプレッソ", "ラテ", "モカ", "マキアート", "カプチーノ") {
		return models.UICategoryEspresso
	}

	return models.UICategoryEspresso
}

// Matches reports whether a drink passes the category filter
func Matches(drink models.Drink, filter models.CategoryFilter) bool {
	switch {
	case filter == models.CategoryFilterAll || filter == "":
		return true
	case filter.IsNative():
		return drink.Category == filter.StorageCategory()
	default:
		return MapToUI(drink) == models.UICategory(filter)
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
