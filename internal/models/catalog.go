package models

import "strings"

// CatalogCategoryAll selects every category in a catalog filter.
const CatalogCategoryAll = "All"

// CatalogCategories lists the categories an admin can file a platform skill under.
var CatalogCategories = []string{"Frontend", "Backend", "Design", "Marketing", "Data Science", "Mobile"}

// ValidCatalogCategory reports whether category is one of CatalogCategories.
func ValidCatalogCategory(category string) bool {
	for _, c := range CatalogCategories {
		if c == category {
			return true
		}
	}
	return false
}

// CatalogSkill is a platform-wide skill curated by admins.
type CatalogSkill struct {
	ID            string  `json:"id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Category      string  `json:"category" validate:"required"`
	Description   string  `json:"description"`
	Popularity    int     `json:"popularity" validate:"gte=0,lte=100"`
	UserCount     int     `json:"userCount" validate:"gte=0"`
	AverageRating float64 `json:"averageRating" validate:"gte=0,lte=5"`
	Active        bool    `json:"isActive"`
}

// CatalogFilter narrows the catalog by category and a case-insensitive search over name and description.
type CatalogFilter struct {
	Category string
	Search   string
}

// Matches reports whether skill passes the filter.
func (f CatalogFilter) Matches(skill CatalogSkill) bool {
	if f.Category != "" && f.Category != CatalogCategoryAll && skill.Category != f.Category {
		return false
	}
	query := strings.ToLower(strings.TrimSpace(f.Search))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(skill.Name), query) ||
		strings.Contains(strings.ToLower(skill.Description), query)
}

// CatalogStats summarises the catalog for the admin dashboard.
type CatalogStats struct {
	TotalSkills  int `json:"totalSkills"`
	ActiveSkills int `json:"activeSkills"`
	Categories   int `json:"categories"`
	TotalUsers   int `json:"totalUsers"`
}
