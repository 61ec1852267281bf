package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PLAN_STATUS_ACTIVE    = "active"
	PLAN_STATUS_CANCELLED = "cancelled"

	BILLING_CYCLE_MONTHLY = "monthly"
)

// VendorPlan is one subscription row for a vendor. Plan changes never update
// a row in place: the current active row flips to cancelled and a new active
// row is inserted.
//
// ActiveKey holds the vendor ID while the row is active and NULL once
// cancelled. Its unique index makes "at most one active plan per vendor" a
// storage-level constraint instead of an application-level convention, so two
// racing plan changes cannot both commit an active row.
type VendorPlan struct {
	PlanID       string     `gorm:"primaryKey;type:char(36)" json:"plan_id"`
	VendorID     string     `gorm:"type:char(36);not null;index" json:"vendor_id"`
	PlanType     string     `gorm:"type:varchar(50);not null" json:"plan_type"`
	PlanStatus   string     `gorm:"type:varchar(20);not null;default:'active';index" json:"plan_status"`
	ActiveKey    *string    `gorm:"type:char(36);uniqueIndex" json:"-"`
	StartDate    time.Time  `gorm:"not null" json:"start_date"`
	RenewalDate  time.Time  `gorm:"not null" json:"renewal_date"`
	MonthlyPrice float64    `gorm:"type:decimal(10,2);not null" json:"monthly_price"`
	BillingCycle string     `gorm:"type:varchar(20);not null;default:'monthly'" json:"billing_cycle"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewActivePlan builds a fresh active plan row starting now with the renewal
// date one month out.
func NewActivePlan(vendorID, planType string, monthlyPrice float64) *VendorPlan {
	start := time.Now()
	key := vendorID
	return &VendorPlan{
		PlanID:       uuid.NewString(),
		VendorID:     vendorID,
		PlanType:     planType,
		PlanStatus:   PLAN_STATUS_ACTIVE,
		ActiveKey:    &key,
		StartDate:    start,
		RenewalDate:  start.AddDate(0, 1, 0),
		MonthlyPrice: monthlyPrice,
		BillingCycle: BILLING_CYCLE_MONTHLY,
	}
}

// Cancel transitions the row to cancelled and releases the active key.
func (p *VendorPlan) Cancel() {
	p.PlanStatus = PLAN_STATUS_CANCELLED
	p.ActiveKey = nil
}

// IsActive reports whether this is the vendor's current plan row.
func (p *VendorPlan) IsActive() bool {
	return p.PlanStatus == PLAN_STATUS_ACTIVE
}
