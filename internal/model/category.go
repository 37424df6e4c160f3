package model

// Category is a built-in category key.
type Category string

const (
	CategoryWork          Category = "work"
	CategoryPersonal      Category = "personal"
	CategoryHealth        Category = "health"
	CategoryFinance       Category = "finance"
	CategoryShopping      Category = "shopping"
	CategoryHome          Category = "home"
	CategoryLearning      Category = "learning"
	CategorySocial        Category = "social"
	CategoryErrands       Category = "errands"
	CategoryUncategorized Category = "uncategorized"
)

// BuiltInCategories lists every built-in key except the uncategorized sentinel.
var BuiltInCategories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryHealth,
	CategoryFinance,
	CategoryShopping,
	CategoryHome,
	CategoryLearning,
	CategorySocial,
	CategoryErrands,
}

// ParseCategory maps a raw key onto a built-in Category.
func ParseCategory(s string) (Category, bool) {
	if Category(s) == CategoryUncategorized {
		return CategoryUncategorized, true
	}
	for _, c := range BuiltInCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// CustomCategory is a user-defined category from the category directory.
type CustomCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}
