package ingredient

import (
	"strings"
)

// pantryStaples are common staples excluded from provider queries; sending
// them wastes URL space and the provider ignores pantry items anyway. Local
// matching still sees them.
var pantryStaples = map[string]bool{
	"salt": true, "black pepper": true, "granulated sugar": true, "brown sugar": true,
	"all-purpose flour": true, "baking powder": true, "baking soda": true, "vanilla extract": true,
	"cinnamon": true, "cumin": true, "paprika": true, "chili powder": true, "dried oregano": true,
	"dried basil": true, "garlic powder": true, "onion powder": true, "red pepper flakes": true,
	"cornstarch": true, "white vinegar": true, "apple cider vinegar": true,
}

var unitAliases = map[string]string{
	"lb": "lbs", "pound": "lbs", "pounds": "lbs",
	"ounce": "oz", "ounces": "oz",
	"kilogram": "kg", "kilograms": "kg",
	"gram": "g", "grams": "g",
	"can": "cans", "bag": "bags", "box": "boxes", "bottle": "bottles",
	"carton": "cartons", "jar": "jars", "case": "cases", "bunch": "bunches",
	"gallon": "gallons", "liter": "liters", "litre": "liters", "litres": "liters",
	"items": "item",
}

var canonicalUnits = map[string]bool{
	"item": true, "lbs": true, "oz": true, "kg": true, "g": true,
	"cans": true, "bags": true, "boxes": true, "bottles": true, "cartons": true,
	"jars": true, "cases": true, "bunches": true, "gallons": true, "liters": true,
}

// Matches reports whether two ingredient names refer to the same item, using
// case-insensitive substring containment in either direction. "onion" matching
// "green onion" is an accepted false positive of this heuristic.
func Matches(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// MatchesAny reports whether name fuzzy-matches any of the known names.
func MatchesAny(name string, known []string) bool {
	for _, k := range known {
		if Matches(name, k) {
			return true
		}
	}
	return false
}

// IsPantryStaple reports whether the name is a common staple that should be
// left out of external provider queries.
func IsPantryStaple(name string) bool {
	return pantryStaples[strings.ToLower(strings.TrimSpace(name))]
}

// NormalizeUnit canonicalizes freehand unit strings (from CSV import or
// manual entry). Unknown units fall back to "item".
func NormalizeUnit(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := unitAliases[s]; ok {
		return alias
	}
	if canonicalUnits[s] {
		return s
	}
	return "item"
}
