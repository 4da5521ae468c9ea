package models

// DirectoryEntry is one imported student reference record. Entries are never
// edited individually; the whole directory is replaced on re-import.
type DirectoryEntry struct {
	Name          string `json:"name" validate:"required"`
	Grade         string `json:"grade"`
	GuardianPhone string `json:"guardianPhone,omitempty"`
}
