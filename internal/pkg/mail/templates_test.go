package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sustentus/vendor-portal/app/models"
)

func testProfile() models.VendorProfile {
	return models.VendorProfile{
		CompanyName:    "Acme",
		ContactName:    "Jo",
		BillingAddress: "1 Rd",
		Email:          "jo@acme.test",
		Phone:          "123",
		Country:        "US",
	}
}

func TestMagicLinkEmail(t *testing.T) {
	msg := MagicLinkEmail("Starter", "tok123")

	assert.Contains(t, msg.Subject, "Starter")
	assert.Contains(t, msg.HTML, "token=tok123")
	assert.Contains(t, msg.HTML, "plan=Starter")
	assert.Contains(t, msg.HTML, "expire in 24 hours")
}

func TestWelcomeEmail(t *testing.T) {
	msg := WelcomeEmail("jo@acme.test", "Standard", testProfile())

	assert.Contains(t, msg.Subject, "Standard")
	assert.Contains(t, msg.HTML, "Acme")
	assert.Contains(t, msg.HTML, "jo@acme.test")
}

func TestPaymentConfirmationEmailUsesTierPricing(t *testing.T) {
	msg := PaymentConfirmationEmail("Premier", testProfile())

	assert.Contains(t, msg.Subject, "Premier")
	assert.Contains(t, msg.HTML, "299.00")

	trial := PaymentConfirmationEmail("Bogus", testProfile())
	assert.Contains(t, trial.HTML, "0.00")
}
