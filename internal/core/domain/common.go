package domain

import "time"

// AuditFields holds creation and last-update stamps. User ids come from the
// verified bearer token; the ledger does not manage users itself.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// NewAuditFields stamps both creation and update with the same actor and time.
func NewAuditFields(by string, at time.Time) AuditFields {
	return AuditFields{CreatedAt: at, CreatedBy: by, LastUpdatedAt: at, LastUpdatedBy: by}
}

// Touch records an update.
func (a *AuditFields) Touch(by string, at time.Time) {
	a.LastUpdatedAt = at
	a.LastUpdatedBy = by
}
