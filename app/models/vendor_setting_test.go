package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretNumber(t *testing.T) {
	s := VendorSetting{SettingKey: "max_customers", SettingValue: "500", SettingType: SETTING_TYPE_NUMBER, IsPublic: true}
	got := s.Interpret()

	assert.Equal(t, 500, got.Value)
	assert.False(t, got.Unlimited)
	assert.True(t, got.IsPublic)
}

func TestInterpretUnlimitedIsNotANumber(t *testing.T) {
	s := VendorSetting{SettingKey: "max_customers", SettingValue: UnlimitedSentinel, SettingType: SETTING_TYPE_NUMBER}
	got := s.Interpret()

	assert.True(t, got.Unlimited)
	assert.Equal(t, UnlimitedSentinel, got.Value)
}

func TestInterpretBoolean(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: "true", want: true},
		{raw: "false", want: false},
		{raw: "yes", want: false},
	}

	for _, tt := range tests {
		s := VendorSetting{SettingValue: tt.raw, SettingType: SETTING_TYPE_BOOLEAN}
		assert.Equal(t, tt.want, s.Interpret().Value)
	}
}

func TestInterpretJSON(t *testing.T) {
	s := VendorSetting{SettingValue: `{"regions":["eu","us"]}`, SettingType: SETTING_TYPE_JSON}
	got := s.Interpret()

	m, ok := got.Value.(map[string]interface{})
	assert.True(t, ok)
	assert.Contains(t, m, "regions")

	// Broken JSON falls back to the raw string instead of failing the read.
	broken := VendorSetting{SettingValue: `{nope`, SettingType: SETTING_TYPE_JSON}
	assert.Equal(t, `{nope`, broken.Interpret().Value)
}

func TestFormatSettings(t *testing.T) {
	rows := []VendorSetting{
		{SettingKey: "max_customers", SettingValue: "5000", SettingType: SETTING_TYPE_NUMBER},
		{SettingKey: "custom_branding", SettingValue: "true", SettingType: SETTING_TYPE_BOOLEAN},
	}

	formatted := FormatSettings(rows)
	assert.Len(t, formatted, 2)
	assert.Equal(t, 5000, formatted["max_customers"].Value)
	assert.Equal(t, true, formatted["custom_branding"].Value)
}
