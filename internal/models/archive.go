package models

// ArchiveEntry is an immutable snapshot of a draft at save time. The
// denormalised columns drive list display; Data restores the exact draft.
type ArchiveEntry struct {
	ID          string          `json:"id"`
	Timestamp   int64           `json:"timestamp"`
	StudentName string          `json:"studentName"`
	Grade       string          `json:"grade"`
	FormType    DocumentVariant `json:"formType"`
	Details     string          `json:"details"`
	Data        ActionData      `json:"data"`
}
