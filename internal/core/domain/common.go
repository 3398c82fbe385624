package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// RecordStatus indicates whether a user or workspace is usable or has been
// suspended by a platform operator.
type RecordStatus string

const (
	StatusActive    RecordStatus = "active"
	StatusSuspended RecordStatus = "suspended"
)
