package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	VENDOR_STATUS_TRIAL    = "trial"
	VENDOR_STATUS_ACTIVE   = "active"
	VENDOR_STATUS_DISABLED = "disabled"
)

// Vendor is a tenant account of the platform. Created once at signup and
// never deleted; the profile has no direct edit path in this core.
type Vendor struct {
	VendorID       string    `gorm:"primaryKey;type:char(36)" json:"vendor_id"`
	CompanyName    string    `gorm:"type:varchar(200);not null" json:"company_name" validate:"required,min=1,max=200"`
	ContactName    string    `gorm:"type:varchar(150);not null" json:"contact_name" validate:"required,min=1,max=150"`
	BillingAddress string    `gorm:"type:varchar(500)" json:"billing_address" validate:"max=500"`
	Email          string    `gorm:"uniqueIndex;type:varchar(200) CHARACTER SET utf8 COLLATE utf8_bin;not null" json:"email" validate:"required,email,min=5,max=200"`
	Phone          string    `gorm:"type:varchar(50)" json:"phone" validate:"max=50"`
	Country        string    `gorm:"type:varchar(100)" json:"country" validate:"max=100"`
	Status         string    `gorm:"type:varchar(50);default:'trial'" json:"status" validate:"oneof=trial active disabled"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (v *Vendor) Validate() error {
	return validator.New().Struct(v)
}

// VendorProfile carries the registration data supplied at signup.
type VendorProfile struct {
	CompanyName    string `json:"companyName" validate:"required,min=1,max=200"`
	ContactName    string `json:"contactName" validate:"required,min=1,max=150"`
	BillingAddress string `json:"billingAddress" validate:"max=500"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"max=50"`
	Country        string `json:"country" validate:"max=100"`
}

func (p *VendorProfile) Validate() error {
	return validator.New().Struct(p)
}

// NewVendor builds a vendor row with a freshly generated identifier.
func NewVendor(profile VendorProfile) (*Vendor, error) {
	v := &Vendor{
		VendorID:       uuid.NewString(),
		CompanyName:    profile.CompanyName,
		ContactName:    profile.ContactName,
		BillingAddress: profile.BillingAddress,
		Email:          profile.Email,
		Phone:          profile.Phone,
		Country:        profile.Country,
		Status:         VENDOR_STATUS_TRIAL,
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}
