package models

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	SETTING_TYPE_STRING  = "string"
	SETTING_TYPE_NUMBER  = "number"
	SETTING_TYPE_BOOLEAN = "boolean"
	SETTING_TYPE_JSON    = "json"
)

// UnlimitedSentinel is the literal stored for tier limits that have no cap.
// It lives in the same column as numeric strings, so number parsing has to
// treat it as a tagged value rather than a number.
const UnlimitedSentinel = "unlimited"

// VendorSetting is a named, typed configuration value scoped to one vendor.
// (vendor_id, setting_key) is unique; writes are last-write-wins upserts.
type VendorSetting struct {
	SettingID    string    `gorm:"primaryKey;type:char(36)" json:"setting_id"`
	VendorID     string    `gorm:"type:char(36);not null;index:ux_vendor_settings_key,unique,priority:1" json:"vendor_id"`
	SettingKey   string    `gorm:"type:varchar(100);not null;index:ux_vendor_settings_key,unique,priority:2" json:"setting_key"`
	SettingValue string    `gorm:"type:text" json:"setting_value"`
	SettingType  string    `gorm:"type:varchar(20);not null;default:'string'" json:"setting_type"`
	IsPublic     bool      `gorm:"default:true" json:"is_public"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewVendorSetting builds a setting row with a fresh identifier.
func NewVendorSetting(vendorID, key, value, settingType string, isPublic bool) *VendorSetting {
	return &VendorSetting{
		SettingID:    uuid.NewString(),
		VendorID:     vendorID,
		SettingKey:   key,
		SettingValue: value,
		SettingType:  settingType,
		IsPublic:     isPublic,
	}
}

// SettingValue is the interpreted form of a stored setting. Numeric settings
// are a tagged union of an integer and the "unlimited" sentinel; the two are
// kept explicit instead of being collapsed into an untyped string.
type SettingValue struct {
	Type      string      `json:"type"`
	Value     interface{} `json:"value"`
	Unlimited bool        `json:"unlimited,omitempty"`
	IsPublic  bool        `json:"is_public"`
}

// Interpret converts the raw stored string according to the setting type.
func (s *VendorSetting) Interpret() SettingValue {
	out := SettingValue{Type: s.SettingType, IsPublic: s.IsPublic}

	switch s.SettingType {
	case SETTING_TYPE_NUMBER:
		if s.SettingValue == UnlimitedSentinel {
			out.Unlimited = true
			out.Value = UnlimitedSentinel
			return out
		}
		if n, err := strconv.Atoi(s.SettingValue); err == nil {
			out.Value = n
			return out
		}
		out.Value = s.SettingValue
	case SETTING_TYPE_BOOLEAN:
		out.Value = s.SettingValue == "true"
	case SETTING_TYPE_JSON:
		var parsed interface{}
		if err := json.Unmarshal([]byte(s.SettingValue), &parsed); err == nil {
			out.Value = parsed
		} else {
			out.Value = s.SettingValue
		}
	default:
		out.Value = s.SettingValue
	}
	return out
}

// FormatSettings turns setting rows into the keyed map returned on vendor
// reads.
func FormatSettings(settings []VendorSetting) map[string]SettingValue {
	formatted := make(map[string]SettingValue, len(settings))
	for i := range settings {
		formatted[settings[i].SettingKey] = settings[i].Interpret()
	}
	return formatted
}
