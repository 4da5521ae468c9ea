package models

// Pagination carries list paging metadata.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// StorageUsage reports how much of the local store's quota is consumed.
type StorageUsage struct {
	UsedBytes   int64            `json:"used_bytes"`
	QuotaBytes  int64            `json:"quota_bytes"`
	Collections map[string]int64 `json:"collections"`
}

// Collection names of the persistence adapter.
const (
	CollectionSettings  = "settings"
	CollectionDirectory = "directory"
	CollectionArchive   = "archive"
)
