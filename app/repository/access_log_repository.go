package repository

import (
	"context"
	"log"

	"github.com/sustentus/vendor-portal/app/models"
	"gorm.io/gorm"
)

// accessLogRepository implements the AccessLogRepository interface
type accessLogRepository struct {
	db *gorm.DB
}

// NewAccessLogRepository creates a new access log repository instance
func NewAccessLogRepository(db *gorm.DB) AccessLogRepository {
	return &accessLogRepository{db: db}
}

// Record appends one audit row. Auditing is a best-effort side channel: a
// failed write is logged locally and dropped so it can never fail the
// primary vendor operation.
func (r *accessLogRepository) Record(ctx context.Context, vendorID, accessType string, success bool, details map[string]interface{}) {
	entry := models.NewAccessLogEntry(vendorID, accessType, success, details)
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		log.Printf("access log write failed for vendor %s (%s): %v", vendorID, accessType, err)
	}
}

// RecentByVendor returns the newest entries for a vendor, newest first.
func (r *accessLogRepository) RecentByVendor(ctx context.Context, vendorID string, limit int) ([]models.VendorAccessLog, error) {
	var logs []models.VendorAccessLog
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, wrapStorageErr(err, ErrTransaction)
	}
	return logs, nil
}
