package dto

import "github.com/noah-isme/skillswap/internal/models"

// ReportRequest selects the admin export dataset and encoding.
type ReportRequest struct {
	Type   models.ReportType   `json:"type" validate:"required,oneof=users swaps summary"`
	Format models.ReportFormat `json:"format" validate:"required,oneof=csv pdf"`
}
