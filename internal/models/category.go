package models

// Categories carried over from the original FCFA ledger
const (
	CategoryAlimentation = "Alimentation"
	CategoryTransport    = "Transport"
	CategoryLoisirs      = "Loisirs"
	CategorySante        = "Santé"
	CategoryEducation    = "Éducation"
	CategoryLogement     = "Logement"
	CategoryUtilities    = "Utilities"
	CategoryAutre        = "Autre"
	CategorySalaire      = "Salaire"
	CategoryBonus        = "Bonus"
)

// AllCategories returns all well-known category constants
func AllCategories() []string {
	return []string{
		CategoryAlimentation,
		CategoryTransport,
		CategoryLoisirs,
		CategorySante,
		CategoryEducation,
		CategoryLogement,
		CategoryUtilities,
		CategoryAutre,
		CategorySalaire,
		CategoryBonus,
	}
}

// IsKnownCategory checks if a category string is one of the well-known set.
// The store tolerates free-text categories (imports may carry labels outside
// the set), so this is advisory rather than a hard constraint.
func IsKnownCategory(category string) bool {
	for _, known := range AllCategories() {
		if category == known {
			return true
		}
	}
	return false
}
