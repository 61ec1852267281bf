package apiv1

import (
	"github.com/go-playground/validator/v10"

	"github.com/sustentus/vendor-portal/app/models"
)

// SendMagicLinkRequest is the signup request body.
type SendMagicLinkRequest struct {
	Email            string               `json:"email" validate:"required,email"`
	Plan             string               `json:"plan" validate:"required"`
	RegistrationData models.VendorProfile `json:"registrationData" validate:"required"`
}

func (r *SendMagicLinkRequest) Validate() error {
	v := validator.New()
	if err := v.Struct(r); err != nil {
		return err
	}
	return v.Struct(&r.RegistrationData)
}

// SendEmailRequest is the body shared by the welcome and payment
// confirmation endpoints.
type SendEmailRequest struct {
	Email            string               `json:"email" validate:"required,email"`
	Plan             string               `json:"plan" validate:"required"`
	RegistrationData models.VendorProfile `json:"registrationData"`
}

func (r *SendEmailRequest) Validate() error {
	return validator.New().Struct(r)
}

// CompleteSignupRequest consumes a magic-link token.
type CompleteSignupRequest struct {
	Token string `json:"token" validate:"required"`
}

// UpdateSettingRequest upserts one vendor setting.
type UpdateSettingRequest struct {
	SettingKey   string `json:"settingKey" validate:"required,min=1,max=100"`
	SettingValue string `json:"settingValue" validate:"required"`
}

// UpdatePlanRequest switches the vendor's active plan.
type UpdatePlanRequest struct {
	NewPlanType string `json:"newPlanType" validate:"required"`
}
