package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ACCESS_TYPE_MAGIC_LINK      = "magic_link"
	ACCESS_TYPE_PLAN_CHANGE     = "plan_change"
	ACCESS_TYPE_SETTINGS_UPDATE = "settings_update"
	ACCESS_TYPE_SIGNUP_COMPLETE = "signup_complete"
)

// VendorAccessLog is one append-only audit row for a vendor-affecting action.
// Rows are write-only; failures to record them never block the primary
// operation.
type VendorAccessLog struct {
	LogID      string    `gorm:"primaryKey;type:char(36)" json:"log_id"`
	VendorID   string    `gorm:"type:char(36);not null;index" json:"vendor_id"`
	AccessType string    `gorm:"type:varchar(50);not null" json:"access_type"`
	Success    bool      `gorm:"not null" json:"success"`
	Details    string    `gorm:"type:text" json:"details"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// NewAccessLogEntry marshals the detail map into the opaque JSON blob stored
// alongside the entry.
func NewAccessLogEntry(vendorID, accessType string, success bool, details map[string]interface{}) *VendorAccessLog {
	blob := "{}"
	if len(details) > 0 {
		if b, err := json.Marshal(details); err == nil {
			blob = string(b)
		}
	}
	return &VendorAccessLog{
		LogID:      uuid.NewString(),
		VendorID:   vendorID,
		AccessType: accessType,
		Success:    success,
		Details:    blob,
	}
}
