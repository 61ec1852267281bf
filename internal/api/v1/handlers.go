package apiv1

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sustentus/vendor-portal/app/models"
	"github.com/sustentus/vendor-portal/app/repository"
	"github.com/sustentus/vendor-portal/internal/pkg/security"
	"github.com/sustentus/vendor-portal/internal/pkg/vendor"
)

// VendorService is the slice of the vendor facade the API layer consumes.
type VendorService interface {
	SendMagicLink(ctx context.Context, email, plan string, profile models.VendorProfile) (*vendor.MagicLinkResult, error)
	CompleteSignup(ctx context.Context, token string) (*repository.VendorWithPlan, error)
	GetVendor(ctx context.Context, urlID string) (*repository.VendorWithPlan, error)
	GetDashboard(ctx context.Context, urlID string) (*repository.VendorDashboard, error)
	UpdateSetting(ctx context.Context, urlID, key, value string) error
	UpdatePlan(ctx context.Context, urlID, newPlanType string) error
	SendWelcomeEmail(ctx context.Context, email, plan string, profile models.VendorProfile) error
	SendPaymentConfirmation(ctx context.Context, email, plan string, profile models.VendorProfile) error
	Ping(ctx context.Context) error
}

// APIServer implements the vendor API surface.
type APIServer struct {
	svc VendorService
}

// NewAPIServer creates a new API server instance
func NewAPIServer(svc VendorService) *APIServer {
	return &APIServer{svc: svc}
}

// RegisterHandlers attaches every route to the given router group.
func RegisterHandlers(router fiber.Router, s *APIServer) {
	router.Post("/send-magic-link", s.PostSendMagicLink)
	router.Post("/complete-signup", s.PostCompleteSignup)
	router.Post("/send-welcome-email", s.PostSendWelcomeEmail)
	router.Post("/send-payment-confirmation", s.PostSendPaymentConfirmation)
	router.Get("/vendor/:encryptedVendorId", s.GetVendor)
	router.Get("/vendor/:encryptedVendorId/dashboard", s.GetVendorDashboard)
	router.Put("/vendor/:encryptedVendorId/settings", s.PutVendorSettings)
	router.Put("/vendor/:encryptedVendorId/plan", s.PutVendorPlan)
	router.Get("/health", s.GetHealth)
	router.Get("/test-db", s.GetTestDB)
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
}

// failFromError maps the service error taxonomy onto HTTP statuses. Expired
// and invalid magic-link tokens are deliberately indistinguishable to the
// client.
func failFromError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, security.ErrInvalidIdentifier):
		return fail(c, fiber.StatusBadRequest, "Invalid vendor identifier")
	case errors.Is(err, security.ErrTokenExpired), errors.Is(err, security.ErrTokenInvalid):
		return fail(c, fiber.StatusBadRequest, "Invalid or expired link")
	case errors.Is(err, repository.ErrNoActivePlan):
		return fail(c, fiber.StatusBadRequest, "No active plan found for vendor")
	case errors.Is(err, vendor.ErrThrottled):
		return fail(c, fiber.StatusTooManyRequests, "Magic link already sent, please wait before retrying")
	case errors.Is(err, repository.ErrTransient):
		return fail(c, fiber.StatusServiceUnavailable, "Storage temporarily unavailable, please retry")
	default:
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// PostSendMagicLink creates the vendor if absent, issues a magic-link token
// and triggers the signup email.
func (s *APIServer) PostSendMagicLink(c *fiber.Ctx) error {
	var req SendMagicLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Malformed request body")
	}
	if err := req.Validate(); err != nil {
		return fail(c, fiber.StatusBadRequest, "Email, plan, and registration data are required")
	}

	result, err := s.svc.SendMagicLink(c.Context(), req.Email, req.Plan, req.RegistrationData)
	if err != nil {
		return failFromError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"message":           "Magic link sent successfully",
		"vendorId":          result.VendorID,
		"encryptedVendorId": result.EncryptedVendorID,
	})
}

// PostCompleteSignup consumes a magic-link token and activates the signup.
func (s *APIServer) PostCompleteSignup(c *fiber.Ctx) error {
	var req CompleteSignupRequest
	if err := c.BodyParser(&req); err != nil || req.Token == "" {
		return fail(c, fiber.StatusBadRequest, "Token is required")
	}

	v, err := s.svc.CompleteSignup(c.Context(), req.Token)
	if err != nil {
		return failFromError(c, err)
	}
	if v == nil {
		return fail(c, fiber.StatusNotFound, "Vendor not found")
	}

	return c.JSON(fiber.Map{"success": true, "vendor": v})
}

// PostSendWelcomeEmail triggers the account-active email.
func (s *APIServer) PostSendWelcomeEmail(c *fiber.Ctx) error {
	var req SendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Malformed request body")
	}
	if err := req.Validate(); err != nil {
		return fail(c, fiber.StatusBadRequest, "Email, plan, and registration data are required")
	}

	if err := s.svc.SendWelcomeEmail(c.Context(), req.Email, req.Plan, req.RegistrationData); err != nil {
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Welcome email sent successfully"})
}

// PostSendPaymentConfirmation triggers the payment-processed email.
func (s *APIServer) PostSendPaymentConfirmation(c *fiber.Ctx) error {
	var req SendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Malformed request body")
	}
	if err := req.Validate(); err != nil {
		return fail(c, fiber.StatusBadRequest, "Email, plan, and registration data are required")
	}

	if err := s.svc.SendPaymentConfirmation(c.Context(), req.Email, req.Plan, req.RegistrationData); err != nil {
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Payment confirmation email sent successfully"})
}

// GetVendor returns the vendor profile behind an opaque URL identifier.
func (s *APIServer) GetVendor(c *fiber.Ctx) error {
	v, err := s.svc.GetVendor(c.Context(), c.Params("encryptedVendorId"))
	if err != nil {
		return failFromError(c, err)
	}
	if v == nil {
		return fail(c, fiber.StatusNotFound, "Vendor not found")
	}
	return c.JSON(fiber.Map{"success": true, "vendor": v})
}

// GetVendorDashboard returns the dashboard aggregate.
func (s *APIServer) GetVendorDashboard(c *fiber.Ctx) error {
	dash, err := s.svc.GetDashboard(c.Context(), c.Params("encryptedVendorId"))
	if err != nil {
		return failFromError(c, err)
	}
	if dash == nil {
		return fail(c, fiber.StatusNotFound, "Vendor not found")
	}
	return c.JSON(fiber.Map{"success": true, "dashboard": dash})
}

// PutVendorSettings upserts one vendor setting.
func (s *APIServer) PutVendorSettings(c *fiber.Ctx) error {
	var req UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil || req.SettingKey == "" {
		return fail(c, fiber.StatusBadRequest, "settingKey and settingValue are required")
	}

	if err := s.svc.UpdateSetting(c.Context(), c.Params("encryptedVendorId"), req.SettingKey, req.SettingValue); err != nil {
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Setting updated successfully"})
}

// PutVendorPlan switches the vendor's active plan.
func (s *APIServer) PutVendorPlan(c *fiber.Ctx) error {
	var req UpdatePlanRequest
	if err := c.BodyParser(&req); err != nil || req.NewPlanType == "" {
		return fail(c, fiber.StatusBadRequest, "newPlanType is required")
	}

	if err := s.svc.UpdatePlan(c.Context(), c.Params("encryptedVendorId"), req.NewPlanType); err != nil {
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Vendor plan updated successfully"})
}

// GetHealth is the liveness probe.
func (s *APIServer) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "OK", "message": "Vendor portal server is running"})
}

// GetTestDB is the readiness probe: a bounded storage ping.
func (s *APIServer) GetTestDB(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := s.svc.Ping(ctx); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":    "Error",
			"message":   "Database connection failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(fiber.Map{
		"status":    "OK",
		"message":   "Database connection test",
		"database":  "Connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
