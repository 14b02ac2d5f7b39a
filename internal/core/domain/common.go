package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// NewAuditFields stamps creation and last update with the same actor and time.
func NewAuditFields(actorID string, at time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     at,
		CreatedBy:     actorID,
		LastUpdatedAt: at,
		LastUpdatedBy: actorID,
	}
}

// Touch records an update by actorID at the given time.
func (a *AuditFields) Touch(actorID string, at time.Time) {
	a.LastUpdatedAt = at
	a.LastUpdatedBy = actorID
}
