package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sustentus/vendor-portal/app/models"
	"github.com/sustentus/vendor-portal/internal/pkg/plans"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// vendorRepository implements the VendorRepository interface
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository instance
func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

// Create persists the vendor row, the initial active plan row and every
// tier-default setting row as one transaction. All rows become visible
// together or not at all.
func (r *vendorRepository) Create(ctx context.Context, profile models.VendorProfile, planType string) (*CreateResult, error) {
	vendor, err := models.NewVendor(profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	tier := plans.Normalize(planType)
	plan := models.NewActivePlan(vendor.VendorID, tier, plans.PricingFor(tier).MonthlyPrice)

	defaults := plans.DefaultSettings(tier)
	settings := make([]*models.VendorSetting, 0, len(defaults))
	for _, d := range defaults {
		settings = append(settings, models.NewVendorSetting(vendor.VendorID, d.Key, d.Value, d.Type, d.IsPublic))
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vendor).Error; err != nil {
			return err
		}
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		for _, s := range settings {
			if err := tx.Create(s).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapStorageErr(err, ErrCreationFailed)
	}

	return &CreateResult{VendorID: vendor.VendorID, PlanID: plan.PlanID}, nil
}

// GetByID returns the vendor joined with its active plan, or nil when no
// vendor or no active plan row exists. A miss is a nil result, not an error.
func (r *vendorRepository) GetByID(ctx context.Context, vendorID string) (*VendorWithPlan, error) {
	return r.getJoined(ctx, "vendors.vendor_id = ?", vendorID)
}

// GetByEmail is GetByID keyed by the unique business email.
func (r *vendorRepository) GetByEmail(ctx context.Context, email string) (*VendorWithPlan, error) {
	return r.getJoined(ctx, "vendors.email = ?", email)
}

func (r *vendorRepository) getJoined(ctx context.Context, cond string, arg interface{}) (*VendorWithPlan, error) {
	var row VendorWithPlan
	err := r.db.WithContext(ctx).
		Table("vendors").
		Select("vendors.vendor_id, vendors.company_name, vendors.contact_name, vendors.billing_address, vendors.email, vendors.phone, vendors.country, vendors.status, vendors.created_at, "+
			"vendor_plans.plan_id, vendor_plans.plan_type, vendor_plans.plan_status, vendor_plans.start_date, vendor_plans.renewal_date, vendor_plans.monthly_price, vendor_plans.billing_cycle").
		Joins("JOIN vendor_plans ON vendor_plans.vendor_id = vendors.vendor_id AND vendor_plans.plan_status = ?", models.PLAN_STATUS_ACTIVE).
		Where(cond, arg).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapStorageErr(err, ErrTransaction)
	}

	var settings []models.VendorSetting
	if err := r.db.WithContext(ctx).Where("vendor_id = ?", row.VendorID).Find(&settings).Error; err != nil {
		return nil, wrapStorageErr(err, ErrTransaction)
	}
	row.Settings = models.FormatSettings(settings)
	return &row, nil
}

// UpdatePlan atomically cancels the current active plan row, inserts a new
// active row for the target tier and replaces the settings with the tier
// defaults. A partial apply would leave the vendor with zero active plans, so
// the whole change is one unit of work.
func (r *vendorRepository) UpdatePlan(ctx context.Context, vendorID, newPlanType string) (string, error) {
	tier := plans.Normalize(newPlanType)
	newPlan := models.NewActivePlan(vendorID, tier, plans.PricingFor(tier).MonthlyPrice)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.VendorPlan
		err := tx.Where("vendor_id = ? AND plan_status = ?", vendorID, models.PLAN_STATUS_ACTIVE).
			First(&current).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoActivePlan
		}
		if err != nil {
			return err
		}

		// Cancel first so the unique active_key index frees up for the insert.
		err = tx.Model(&models.VendorPlan{}).
			Where("plan_id = ?", current.PlanID).
			Updates(map[string]interface{}{
				"plan_status": models.PLAN_STATUS_CANCELLED,
				"active_key":  nil,
				"updated_at":  time.Now(),
			}).Error
		if err != nil {
			return err
		}

		if err := tx.Create(newPlan).Error; err != nil {
			return err
		}

		// Bulk replace, not merge: individual overrides do not survive a
		// plan change.
		if err := tx.Where("vendor_id = ?", vendorID).Delete(&models.VendorSetting{}).Error; err != nil {
			return err
		}
		for _, d := range plans.DefaultSettings(tier) {
			if err := tx.Create(models.NewVendorSetting(vendorID, d.Key, d.Value, d.Type, d.IsPublic)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoActivePlan) {
			return "", ErrNoActivePlan
		}
		return "", wrapStorageErr(err, ErrTransaction)
	}

	return newPlan.PlanID, nil
}

// UpsertSetting inserts one setting row or, on key conflict, overwrites the
// value and bumps the timestamp. Values arrive pre-serialized and are always
// stored as type string.
func (r *vendorRepository) UpsertSetting(ctx context.Context, vendorID, key, value string) error {
	setting := models.NewVendorSetting(vendorID, key, value, models.SETTING_TYPE_STRING, true)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "vendor_id"},
			{Name: "setting_key"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"setting_value",
			"updated_at",
		}),
	}).Create(setting).Error
	if err != nil {
		return wrapStorageErr(err, ErrTransaction)
	}
	return nil
}

// Dashboard aggregates the vendor profile, the 10 most recent audit entries
// and plan counts.
func (r *vendorRepository) Dashboard(ctx context.Context, vendorID string) (*VendorDashboard, error) {
	vendor, err := r.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, nil
	}

	var logs []models.VendorAccessLog
	err = r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Limit(10).
		Find(&logs).Error
	if err != nil {
		return nil, wrapStorageErr(err, ErrTransaction)
	}

	var stats PlanStatistics
	if err := r.db.WithContext(ctx).Model(&models.VendorPlan{}).
		Where("vendor_id = ?", vendorID).
		Count(&stats.TotalPlans).Error; err != nil {
		return nil, wrapStorageErr(err, ErrTransaction)
	}
	if err := r.db.WithContext(ctx).Model(&models.VendorPlan{}).
		Where("vendor_id = ? AND plan_status = ?", vendorID, models.PLAN_STATUS_ACTIVE).
		Count(&stats.ActivePlans).Error; err != nil {
		return nil, wrapStorageErr(err, ErrTransaction)
	}

	return &VendorDashboard{
		Vendor:         vendor,
		RecentActivity: logs,
		PlanStatistics: stats,
	}, nil
}

// Ping checks storage reachability for the readiness probe.
func (r *vendorRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return wrapStorageErr(err, ErrTransaction)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return wrapStorageErr(err, ErrTransaction)
	}
	return nil
}
