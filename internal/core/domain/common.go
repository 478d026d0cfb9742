package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// CreatedAt and LastUpdatedAt double as the record's createdAt/updatedAt timestamps.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}
