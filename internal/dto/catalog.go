package dto

// CatalogSkillRequest carries the admin form for adding or editing a platform skill.
type CatalogSkillRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
}
