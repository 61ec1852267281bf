package repository

import (
	"context"
	"time"

	"github.com/sustentus/vendor-portal/app/models"
	"gorm.io/gorm"
)

// VendorWithPlan is a vendor profile joined with its currently active plan
// and the formatted settings map.
type VendorWithPlan struct {
	VendorID       string    `json:"vendor_id"`
	CompanyName    string    `json:"company_name"`
	ContactName    string    `json:"contact_name"`
	BillingAddress string    `json:"billing_address"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Country        string    `json:"country"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`

	PlanID       string    `json:"plan_id"`
	PlanType     string    `json:"plan_type"`
	PlanStatus   string    `json:"plan_status"`
	StartDate    time.Time `json:"start_date"`
	RenewalDate  time.Time `json:"renewal_date"`
	MonthlyPrice float64   `json:"monthly_price"`
	BillingCycle string    `json:"billing_cycle"`

	Settings map[string]models.SettingValue `gorm:"-" json:"settings"`
}

// PlanStatistics are the plan row counts shown on the dashboard.
type PlanStatistics struct {
	TotalPlans  int64 `json:"total_plans"`
	ActivePlans int64 `json:"active_plans"`
}

// VendorDashboard aggregates the vendor, its recent audit trail and plan
// counts.
type VendorDashboard struct {
	Vendor         *VendorWithPlan          `json:"vendor"`
	RecentActivity []models.VendorAccessLog `json:"recent_activity"`
	PlanStatistics PlanStatistics           `json:"plan_statistics"`
}

// CreateResult reports the identifiers generated by vendor creation.
type CreateResult struct {
	VendorID string `json:"vendor_id"`
	PlanID   string `json:"plan_id"`
}

// VendorRepository defines the interface for vendor-related database
// operations.
type VendorRepository interface {
	Create(ctx context.Context, profile models.VendorProfile, planType string) (*CreateResult, error)
	GetByID(ctx context.Context, vendorID string) (*VendorWithPlan, error)
	GetByEmail(ctx context.Context, email string) (*VendorWithPlan, error)
	UpdatePlan(ctx context.Context, vendorID, newPlanType string) (newPlanID string, err error)
	UpsertSetting(ctx context.Context, vendorID, key, value string) error
	Dashboard(ctx context.Context, vendorID string) (*VendorDashboard, error)
	Ping(ctx context.Context) error
}

// AccessLogRepository defines the interface for the best-effort audit trail.
type AccessLogRepository interface {
	// Record is fire-and-forget: write failures are logged locally and
	// swallowed, never propagated to the primary operation.
	Record(ctx context.Context, vendorID, accessType string, success bool, details map[string]interface{})
	RecentByVendor(ctx context.Context, vendorID string, limit int) ([]models.VendorAccessLog, error)
}

// Repositories bundles every repository behind one handle.
type Repositories struct {
	Vendor    VendorRepository
	AccessLog AccessLogRepository
}

// NewRepositories creates all repository instances from one DB handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Vendor:    NewVendorRepository(db),
		AccessLog: NewAccessLogRepository(db),
	}
}
