package dto

import "github.com/ibdaa-school/docgen-api/internal/models"

// UpdateDraftRequest carries a batch of draft field mutations. Values are
// strings for text fields and booleans for the reason checkboxes.
type UpdateDraftRequest struct {
	Fields map[string]interface{} `json:"fields" binding:"required"`
}

// SetVariantRequest switches the active document variant.
type SetVariantRequest struct {
	Variant models.DocumentVariant `json:"variant" binding:"required"`
}

// SelectStudentRequest prefills the draft from a directory entry.
type SelectStudentRequest struct {
	Name string `json:"name" binding:"required"`
}

// ImportDirectoryRequest replaces the whole student directory.
type ImportDirectoryRequest struct {
	Entries []models.DirectoryEntry `json:"entries" binding:"required"`
}

// UpdateAssetRequest sets or clears one branding image. A nil payload
// clears the slot.
type UpdateAssetRequest struct {
	Key  string  `json:"key" binding:"required"`
	Data *string `json:"data"`
}

// RestoredDraftResponse mirrors the workspace state after a restore.
type RestoredDraftResponse struct {
	Variant models.DocumentVariant `json:"variant"`
	Draft   models.ActionData      `json:"draft"`
}
