package apiv1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sustentus/vendor-portal/app/models"
	"github.com/sustentus/vendor-portal/app/repository"
	"github.com/sustentus/vendor-portal/internal/pkg/security"
	"github.com/sustentus/vendor-portal/internal/pkg/vendor"
)

// stubService returns canned results per method.
type stubService struct {
	magicLinkResult *vendor.MagicLinkResult
	magicLinkErr    error
	vendorResult    *repository.VendorWithPlan
	vendorErr       error
	dashboard       *repository.VendorDashboard
	dashboardErr    error
	updateErr       error
	pingErr         error
}

func (s *stubService) SendMagicLink(context.Context, string, string, models.VendorProfile) (*vendor.MagicLinkResult, error) {
	return s.magicLinkResult, s.magicLinkErr
}

func (s *stubService) CompleteSignup(context.Context, string) (*repository.VendorWithPlan, error) {
	return s.vendorResult, s.vendorErr
}

func (s *stubService) GetVendor(context.Context, string) (*repository.VendorWithPlan, error) {
	return s.vendorResult, s.vendorErr
}

func (s *stubService) GetDashboard(context.Context, string) (*repository.VendorDashboard, error) {
	return s.dashboard, s.dashboardErr
}

func (s *stubService) UpdateSetting(context.Context, string, string, string) error {
	return s.updateErr
}

func (s *stubService) UpdatePlan(context.Context, string, string) error {
	return s.updateErr
}

func (s *stubService) SendWelcomeEmail(context.Context, string, string, models.VendorProfile) error {
	return s.updateErr
}

func (s *stubService) SendPaymentConfirmation(context.Context, string, string, models.VendorProfile) error {
	return s.updateErr
}

func (s *stubService) Ping(context.Context) error {
	return s.pingErr
}

func newTestApp(svc VendorService) *fiber.App {
	app := fiber.New()
	RegisterHandlers(app.Group("/api"), NewAPIServer(svc))
	return app
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestPostSendMagicLink(t *testing.T) {
	svc := &stubService{
		magicLinkResult: &vendor.MagicLinkResult{
			VendorID:          "vendor-1",
			EncryptedVendorID: "v_abc",
			Created:           true,
		},
	}
	app := newTestApp(svc)

	req := jsonRequest(t, http.MethodPost, "/api/send-magic-link", fiber.Map{
		"email": "jo@acme.test",
		"plan":  "Starter",
		"registrationData": fiber.Map{
			"companyName": "Acme",
			"contactName": "Jo",
			"email":       "jo@acme.test",
		},
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "vendor-1", body["vendorId"])
	assert.Equal(t, "v_abc", body["encryptedVendorId"])
}

func TestPostSendMagicLinkRejectsIncompleteBody(t *testing.T) {
	app := newTestApp(&stubService{})

	req := jsonRequest(t, http.MethodPost, "/api/send-magic-link", fiber.Map{
		"email": "jo@acme.test",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
}

func TestPostSendMagicLinkThrottled(t *testing.T) {
	app := newTestApp(&stubService{magicLinkErr: vendor.ErrThrottled})

	req := jsonRequest(t, http.MethodPost, "/api/send-magic-link", fiber.Map{
		"email": "jo@acme.test",
		"plan":  "Starter",
		"registrationData": fiber.Map{
			"companyName": "Acme",
			"contactName": "Jo",
			"email":       "jo@acme.test",
		},
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestGetVendor(t *testing.T) {
	svc := &stubService{
		vendorResult: &repository.VendorWithPlan{VendorID: "vendor-1", PlanType: "Starter", MonthlyPrice: 29.00},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/vendor/v_abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	v, ok := body["vendor"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Starter", v["plan_type"])
}

func TestGetVendorNotFound(t *testing.T) {
	app := newTestApp(&stubService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/vendor/v_abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetVendorInvalidIdentifier(t *testing.T) {
	app := newTestApp(&stubService{vendorErr: security.ErrInvalidIdentifier})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/vendor/nonsense", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid vendor identifier", body["error"])
}

func TestGetVendorDashboard(t *testing.T) {
	svc := &stubService{
		dashboard: &repository.VendorDashboard{
			Vendor:         &repository.VendorWithPlan{VendorID: "vendor-1"},
			PlanStatistics: repository.PlanStatistics{TotalPlans: 3, ActivePlans: 1},
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/vendor/v_abc/dashboard", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPutVendorPlan(t *testing.T) {
	app := newTestApp(&stubService{})

	req := jsonRequest(t, http.MethodPut, "/api/vendor/v_abc/plan", fiber.Map{"newPlanType": "Standard"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPutVendorPlanNoActivePlan(t *testing.T) {
	app := newTestApp(&stubService{updateErr: repository.ErrNoActivePlan})

	req := jsonRequest(t, http.MethodPut, "/api/vendor/v_abc/plan", fiber.Map{"newPlanType": "Standard"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPutVendorPlanMissingBody(t *testing.T) {
	app := newTestApp(&stubService{})

	req := jsonRequest(t, http.MethodPut, "/api/vendor/v_abc/plan", fiber.Map{})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPutVendorSettings(t *testing.T) {
	app := newTestApp(&stubService{})

	req := jsonRequest(t, http.MethodPut, "/api/vendor/v_abc/settings", fiber.Map{
		"settingKey":   "custom_branding",
		"settingValue": "true",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPostCompleteSignupExpiredToken(t *testing.T) {
	app := newTestApp(&stubService{vendorErr: security.ErrTokenExpired})

	req := jsonRequest(t, http.MethodPost, "/api/complete-signup", fiber.Map{"token": "old"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Expired and invalid tokens are presented identically.
	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid or expired link", body["error"])
}

func TestTransientErrorsAreRetryable(t *testing.T) {
	app := newTestApp(&stubService{updateErr: repository.ErrTransient})

	req := jsonRequest(t, http.MethodPut, "/api/vendor/v_abc/plan", fiber.Map{"newPlanType": "Standard"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHealthProbes(t *testing.T) {
	app := newTestApp(&stubService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/test-db", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTestDBReportsFailure(t *testing.T) {
	app := newTestApp(&stubService{pingErr: repository.ErrTransient})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/test-db", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
