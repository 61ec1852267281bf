package plans

import (
	"strings"

	"github.com/sustentus/vendor-portal/app/models"
)

const (
	PlanTrial    = "Trial"
	PlanStarter  = "Starter"
	PlanStandard = "Standard"
	PlanPremier  = "Premier"
)

// Pricing is the fixed billing metadata for one tier.
type Pricing struct {
	MonthlyPrice float64
	Features     []string
}

// SettingDefault is one tier-default setting row template.
type SettingDefault struct {
	Key      string
	Value    string
	Type     string
	IsPublic bool
}

// Normalize maps arbitrary input onto a known tier. Unknown tiers fall back
// to Trial explicitly; this fallback determines billing, so it must never be
// an accidental zero value.
func Normalize(plan string) string {
	switch strings.ToLower(strings.TrimSpace(plan)) {
	case "trial":
		return PlanTrial
	case "starter":
		return PlanStarter
	case "standard":
		return PlanStandard
	case "premier":
		return PlanPremier
	default:
		return PlanTrial
	}
}

// PricingFor resolves the monthly price and feature set for a tier.
func PricingFor(plan string) Pricing {
	switch Normalize(plan) {
	case PlanStarter:
		return Pricing{MonthlyPrice: 29.00, Features: []string{"basic", "crm_sync"}}
	case PlanStandard:
		return Pricing{MonthlyPrice: 99.00, Features: []string{"basic", "crm_sync", "ai_helpers", "flexible_timers"}}
	case PlanPremier:
		return Pricing{MonthlyPrice: 299.00, Features: []string{"basic", "crm_sync", "ai_helpers", "flexible_timers", "managed_service", "custom_integrations"}}
	default:
		return Pricing{MonthlyPrice: 0.00, Features: []string{"basic"}}
	}
}

func Rank(plan string) int {
	switch Normalize(plan) {
	case PlanPremier:
		return 3
	case PlanStandard:
		return 2
	case PlanStarter:
		return 1
	default:
		return 0
	}
}

// DefaultSettings returns the full override set seeded for a tier. The slice
// is rebuilt on every call so callers can mutate it freely.
func DefaultSettings(plan string) []SettingDefault {
	base := []SettingDefault{
		{Key: "max_customers", Value: "500", Type: models.SETTING_TYPE_NUMBER, IsPublic: true},
		{Key: "max_experts", Value: "1000", Type: models.SETTING_TYPE_NUMBER, IsPublic: true},
		{Key: "max_leads_per_month", Value: "100", Type: models.SETTING_TYPE_NUMBER, IsPublic: true},
		{Key: "import_leads_via_csv", Value: "true", Type: models.SETTING_TYPE_BOOLEAN, IsPublic: true},
		{Key: "custom_branding", Value: "false", Type: models.SETTING_TYPE_BOOLEAN, IsPublic: true},
		{Key: "team_member_login", Value: "false", Type: models.SETTING_TYPE_BOOLEAN, IsPublic: true},
		{Key: "sales_regions", Value: "1", Type: models.SETTING_TYPE_NUMBER, IsPublic: true},
		{Key: "license_tracking", Value: "false", Type: models.SETTING_TYPE_BOOLEAN, IsPublic: true},
		{Key: "conversion_stats", Value: "false", Type: models.SETTING_TYPE_BOOLEAN, IsPublic: true},
		{Key: "service_timers", Value: "false", Type: models.SETTING_TYPE_BOOLEAN, IsPublic: true},
	}

	overrides := map[string]string{}
	switch Normalize(plan) {
	case PlanStandard:
		overrides = map[string]string{
			"max_customers":       "5000",
			"max_experts":         "25000",
			"max_leads_per_month": "1000",
			"custom_branding":     "true",
			"team_member_login":   "true",
			"sales_regions":       "2",
			"license_tracking":    "true",
			"conversion_stats":    "true",
			"service_timers":      "true",
		}
	case PlanPremier:
		overrides = map[string]string{
			"max_customers":       models.UnlimitedSentinel,
			"max_experts":         models.UnlimitedSentinel,
			"max_leads_per_month": models.UnlimitedSentinel,
			"custom_branding":     "true",
			"team_member_login":   "true",
			"sales_regions":       models.UnlimitedSentinel,
			"license_tracking":    "true",
			"conversion_stats":    "true",
			"service_timers":      "true",
		}
	}

	for i := range base {
		if v, ok := overrides[base[i].Key]; ok {
			base[i].Value = v
		}
	}
	return base
}
